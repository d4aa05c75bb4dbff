// Package vmath provides the small float32 vector and matrix algebra used by the
// raycaster.
//
// Vectors and matrices are value types. Every function is pure; none of them
// allocate.
//
// Matrices are 3x3, column-major (m[col*3+row]), with the same memory layout as
// mgl32.Mat3 so the two convert freely. They only ever hold rotations built from
// RotationX and RotationY.
package vmath
