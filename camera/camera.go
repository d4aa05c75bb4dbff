// Package camera holds the viewer position and orientation and turns raw input
// into camera motion.
//
// Ray directions use the full yaw+pitch basis. Translation uses a flattened,
// yaw-only basis so moving forward never climbs or sinks.
package camera

import (
	"github.com/chewxy/math32"

	"raycast/vmath"
)

// MaxPitch bounds |pitch| so the basis never flips at the poles.
const MaxPitch = math32.Pi / 2

// Camera is the viewer pose. Rotation.X is pitch and Rotation.Y is yaw, both in
// radians; Rotation.Z (roll) is unused.
type Camera struct {
	Position vmath.Vec3
	Rotation vmath.Vec3
}

func (c Camera) Pitch() float32 { return c.Rotation.X }
func (c Camera) Yaw() float32   { return c.Rotation.Y }

// Orientation returns RotationY(yaw) · RotationX(pitch).
func (c Camera) Orientation() vmath.Mat3 {
	return vmath.Mat3Mul(vmath.RotationY(c.Rotation.Y), vmath.RotationX(c.Rotation.X))
}

// Basis returns the orthonormal view frame used to build primary rays.
func (c Camera) Basis() (forward, right, up vmath.Vec3) {
	m := c.Orientation()
	forward = m.MulVec3(vmath.V3(0, 0, 1))
	right = m.MulVec3(vmath.V3(1, 0, 0))
	up = m.MulVec3(vmath.V3(0, 1, 0))
	return forward, right, up
}

// FlatBasis returns forward and right projected onto the ground plane.
func (c Camera) FlatBasis() (forward, right vmath.Vec3) {
	sin, cos := math32.Sin(c.Rotation.Y), math32.Cos(c.Rotation.Y)
	forward = vmath.V3(sin, 0, cos)
	right = vmath.V3(cos, 0, -sin)
	return forward, right
}

// ClampPitch restores the pitch invariant.
func (c *Camera) ClampPitch() {
	c.Rotation.X = vmath.Clamp(c.Rotation.X, -MaxPitch, MaxPitch)
}
