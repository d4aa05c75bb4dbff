package hal

import (
	"errors"
	"log/slog"
	"time"
)

var (
	ErrNotImplemented = errors.New("not implemented")
	// ErrExit is returned by a step function to end the host loop cleanly.
	ErrExit = errors.New("hal: exit requested")
)

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatXRGB8888 is one uint32 per pixel: 0xXXRRGGBB.
	PixelFormatXRGB8888 PixelFormat = iota + 1
)

// Framebuffer is a back buffer plus a "present" hook that publishes it.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	// Stride is the row pitch in pixels, not bytes.
	Stride() int
	Pixels() []uint32
	Present() error
}

// KeyCode identifies a key the raycaster reacts to.
type KeyCode uint8

const (
	KeyUnknown KeyCode = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeySpace
	KeyShift
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyR
	KeyF3
	KeyF12
	KeyEscape

	keyCount
)

// KeyMask is a set of KeyCodes.
type KeyMask uint32

func (m KeyMask) Has(k KeyCode) bool { return k < keyCount && m&(1<<k) != 0 }

// With returns m with k added.
func (m KeyMask) With(k KeyCode) KeyMask {
	if k >= keyCount {
		return m
	}
	return m | 1<<k
}

// InputState is one frame's input snapshot.
type InputState struct {
	Held    KeyMask // down this frame
	Pressed KeyMask // went down this frame

	// Mouse motion since the previous poll, in window pixels. Zero unless the
	// cursor is captured.
	MouseDX, MouseDY float32
	Captured         bool
}

// Display provides access to the framebuffer.
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides the per-frame input snapshot.
type Input interface {
	Poll() InputState
}

// Clock reports the time covered by the current frame.
type Clock interface {
	Delta() time.Duration
	Frame() uint64
}

// HAL provides the only contact point between the raycaster and the outside world.
type HAL interface {
	Logger() *slog.Logger
	Display() Display
	Input() Input
	Clock() Clock
}
