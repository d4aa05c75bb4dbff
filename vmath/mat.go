package vmath

import "github.com/go-gl/mathgl/mgl32"

// Mat3 is a column-major 3x3 rotation matrix.
type Mat3 [9]float32

func Identity() Mat3 {
	return Mat3(mgl32.Ident3())
}

// RotationX returns a rotation of rad about the X axis.
//
// Positive angles tilt +Z toward +Y, so a positive pitch looks up.
func RotationX(rad float32) Mat3 {
	return Mat3(mgl32.Rotate3DX(-rad))
}

// RotationY returns a rotation of rad about the Y axis.
//
// Positive angles turn +Z toward +X.
func RotationY(rad float32) Mat3 {
	return Mat3(mgl32.Rotate3DY(rad))
}

// Mat3Mul returns a × b.
func Mat3Mul(a, b Mat3) Mat3 {
	return Mat3(mgl32.Mat3(a).Mul3(mgl32.Mat3(b)))
}

// MulVec3 returns m × v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	r := mgl32.Mat3(m).Mul3x1(mgl32.Vec3{v.X, v.Y, v.Z})
	return Vec3{X: r[0], Y: r[1], Z: r[2]}
}
