// Package hud draws a small text overlay into a render buffer.
//
// The overlay is drawn after the frame's workers have been joined, on the host
// goroutine, so it needs no synchronisation with the renderer.
package hud

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"raycast/render"
)

// Overlay renders lines of text in the top-left corner of a frame.
type Overlay struct {
	font       tinyfont.Fonter
	lineHeight int16
	margin     int16

	Color  color.RGBA
	Shadow color.RGBA
}

func New() *Overlay {
	f := &proggy.TinySZ8pt7b
	return &Overlay{
		font:       f,
		lineHeight: int16(f.GetYAdvance()),
		margin:     2,
		Color:      color.RGBA{R: 0xE8, G: 0xE8, B: 0xF0, A: 0xFF},
		Shadow:     color.RGBA{R: 0, G: 0, B: 0, A: 0xFF},
	}
}

// LineHeight is the vertical advance between lines, in pixels.
func (o *Overlay) LineHeight() int { return int(o.lineHeight) }

// TextWidth returns the pixel width of s.
func (o *Overlay) TextWidth(s string) int {
	_, w := tinyfont.LineWidth(o.font, s)
	return int(w)
}

// Draw writes lines into dst. Text outside dst is clipped.
func (o *Overlay) Draw(dst render.PixelBuffer, lines []string) {
	d := &bufferDisplayer{buf: dst}
	for i, s := range lines {
		// tinyfont positions text by its baseline.
		x := o.margin
		y := o.margin + int16(i+1)*o.lineHeight - 1
		tinyfont.WriteLine(d, o.font, x+1, y+1, s, o.Shadow)
		tinyfont.WriteLine(d, o.font, x, y, s, o.Color)
	}
}

// bufferDisplayer adapts a render.PixelBuffer to drivers.Displayer.
type bufferDisplayer struct {
	buf render.PixelBuffer
}

var _ drivers.Displayer = (*bufferDisplayer)(nil)

func (d *bufferDisplayer) Size() (x, y int16) {
	return int16(d.buf.Width), int16(d.buf.Height)
}

func (d *bufferDisplayer) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || iy < 0 || ix >= d.buf.Width || iy >= d.buf.Height {
		return
	}
	d.buf.Set(ix, iy, render.PackRGB(c.R, c.G, c.B))
}

func (d *bufferDisplayer) Display() error { return nil }
