package render

import (
	"errors"
	"fmt"
)

// ErrInvalidBuffer reports a PixelBuffer whose slice cannot hold its rows.
var ErrInvalidBuffer = errors.New("render: invalid pixel buffer")

// PixelBuffer is a row-major view of packed 0xFFRRGGBB pixels.
//
// Stride is in pixels and may exceed Width; pixels between Width and Stride are
// never written.
type PixelBuffer struct {
	Pix    []uint32
	Width  int
	Height int
	Stride int
}

// NewPixelBuffer allocates a buffer. A stride below width is raised to width.
func NewPixelBuffer(width, height, stride int) PixelBuffer {
	if stride < width {
		stride = width
	}
	return PixelBuffer{
		Pix:    make([]uint32, stride*height),
		Width:  width,
		Height: height,
		Stride: stride,
	}
}

func (b PixelBuffer) Validate() error {
	if b.Width < 0 || b.Height < 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidBuffer, b.Width, b.Height)
	}
	if b.Width == 0 || b.Height == 0 {
		return nil
	}
	if b.Stride < b.Width {
		return fmt.Errorf("%w: stride %d < width %d", ErrInvalidBuffer, b.Stride, b.Width)
	}
	if need := (b.Height-1)*b.Stride + b.Width; len(b.Pix) < need {
		return fmt.Errorf("%w: %d pixels, need %d", ErrInvalidBuffer, len(b.Pix), need)
	}
	return nil
}

func (b PixelBuffer) At(x, y int) uint32 { return b.Pix[y*b.Stride+x] }

func (b PixelBuffer) Set(x, y int, p uint32) { b.Pix[y*b.Stride+x] = p }

// Fill writes p to every visible pixel.
func (b PixelBuffer) Fill(p uint32) {
	for y := 0; y < b.Height; y++ {
		row := b.Pix[y*b.Stride : y*b.Stride+b.Width]
		for x := range row {
			row[x] = p
		}
	}
}

// Rows returns the sub-view covering r. Its slice is capped at the last visible
// pixel of r, so writes through it cannot reach other rows.
func (b PixelBuffer) Rows(r RowRange) PixelBuffer {
	if r.Len() <= 0 {
		return PixelBuffer{Width: b.Width, Stride: b.Stride}
	}
	lo := r.Start * b.Stride
	hi := (r.End-1)*b.Stride + b.Width
	return PixelBuffer{
		Pix:    b.Pix[lo:hi:hi],
		Width:  b.Width,
		Height: r.Len(),
		Stride: b.Stride,
	}
}
