package render

import "github.com/chewxy/math32"

// Color holds unnarrowed channel values. Shading may leave them outside 0..255;
// Pack decides what happens then.
type Color struct {
	R, G, B int32
}

// Background is the miss color, a dark navy distinct from black.
var Background = Color{R: 13, G: 13, B: 27}

// Overflow selects how Pack narrows out-of-range channels.
type Overflow uint8

const (
	// OverflowClamp saturates channels to [0,255].
	OverflowClamp Overflow = iota
	// OverflowWrap keeps the low 8 bits, like a C int-to-uint8 store.
	OverflowWrap
)

func (o Overflow) String() string {
	switch o {
	case OverflowClamp:
		return "clamp"
	case OverflowWrap:
		return "wrap"
	default:
		return "unknown"
	}
}

func (o Overflow) narrow(v int32) uint8 {
	if o == OverflowWrap {
		return uint8(v)
	}
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Pack narrows c and packs it as 0xFFRRGGBB.
func (c Color) Pack(o Overflow) uint32 {
	return PackRGB(o.narrow(c.R), o.narrow(c.G), o.narrow(c.B))
}

func PackRGB(r, g, b uint8) uint32 {
	return 0xFF000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

func UnpackRGB(p uint32) (r, g, b uint8) {
	return uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// channel converts a 0..255-scaled float to an int32 channel without relying on
// out-of-range float conversion.
func channel(f float32) int32 {
	const lim = 1 << 24
	switch {
	case math32.IsNaN(f):
		return 0
	case f > lim:
		return lim
	case f < -lim:
		return -lim
	}
	return int32(f)
}
