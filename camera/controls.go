package camera

import "raycast/vmath"

// KeySet is the set of held control keys for one frame.
type KeySet uint16

const (
	KeyForward KeySet = 1 << iota
	KeyBack
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyLookLeft
	KeyLookRight
	KeyLookUp
	KeyLookDown
)

func (s KeySet) Has(k KeySet) bool { return s&k != 0 }

// Input is the per-frame snapshot consumed by Integrate.
type Input struct {
	Keys KeySet

	// Relative mouse motion since the previous frame, in window pixels.
	// Positive DY is downward.
	MouseDX float32
	MouseDY float32
}

// Controls are the tuning constants for Integrate.
type Controls struct {
	MoveSpeed     float32 // world units per second
	RotationSpeed float32 // radians per mouse pixel
	LookSpeed     float32 // radians per second for the look keys

	// InvertY makes moving the mouse up look down.
	InvertY bool
}

// DefaultControls matches the values in config.Default.
func DefaultControls() Controls {
	return Controls{
		MoveSpeed:     2.5,
		RotationSpeed: 0.003,
		LookSpeed:     1.8,
	}
}

// Integrate applies one frame of input to cam. dt is in seconds.
func Integrate(cam *Camera, in Input, dt float32, ctl Controls) {
	if cam == nil {
		return
	}

	dy := in.MouseDY
	if ctl.InvertY {
		dy = -dy
	}
	cam.Rotation.Y += in.MouseDX * ctl.RotationSpeed
	cam.Rotation.X -= dy * ctl.RotationSpeed

	look := ctl.LookSpeed * dt
	if in.Keys.Has(KeyLookLeft) {
		cam.Rotation.Y -= look
	}
	if in.Keys.Has(KeyLookRight) {
		cam.Rotation.Y += look
	}
	if in.Keys.Has(KeyLookUp) {
		cam.Rotation.X += look
	}
	if in.Keys.Has(KeyLookDown) {
		cam.Rotation.X -= look
	}
	cam.ClampPitch()

	forward, right := cam.FlatBasis()
	step := ctl.MoveSpeed * dt
	var d vmath.Vec3
	if in.Keys.Has(KeyForward) {
		d = d.Add(forward)
	}
	if in.Keys.Has(KeyBack) {
		d = d.Sub(forward)
	}
	if in.Keys.Has(KeyRight) {
		d = d.Add(right)
	}
	if in.Keys.Has(KeyLeft) {
		d = d.Sub(right)
	}
	if in.Keys.Has(KeyUp) {
		d.Y++
	}
	if in.Keys.Has(KeyDown) {
		d.Y--
	}
	cam.Position = cam.Position.Add(d.Scale(step))
}
