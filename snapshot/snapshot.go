// Package snapshot saves render buffers as image files.
//
// The encoder is chosen from the file extension: .png, .webp (lossless), .tga or
// .bmp. A snapshot can be upscaled on the way out so it matches what the window
// shows.
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"raycast/render"
)

var ErrUnknownFormat = errors.New("snapshot: unknown image format")

// Format is an output encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
	FormatTGA  Format = "tga"
	FormatBMP  Format = "bmp"
)

// FormatFromPath picks the Format from path's extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch f := Format(ext); f {
	case FormatPNG, FormatWebP, FormatTGA, FormatBMP:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Options control WriteFile.
type Options struct {
	// Width and Height are the output size. Zero keeps the buffer size.
	Width  int
	Height int
	// Smooth scales with bilinear filtering instead of nearest neighbour.
	Smooth bool
}

// Image copies the visible part of src into an opaque RGBA image.
func Image(src render.PixelBuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, src.Width, src.Height))
	for y := 0; y < src.Height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+src.Width*4]
		for x := 0; x < src.Width; x++ {
			r, g, b := render.UnpackRGB(src.At(x, y))
			j := x * 4
			row[j+0] = r
			row[j+1] = g
			row[j+2] = b
			row[j+3] = 0xFF
		}
	}
	return img
}

// Scale resizes img to w×h.
func Scale(img image.Image, w, h int, smooth bool) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	var s draw.Scaler = draw.NearestNeighbor
	if smooth {
		s = draw.ApproxBiLinear
	}
	s.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatWebP:
		err = nativewebp.Encode(w, img, nil)
	case FormatTGA:
		err = tga.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("snapshot: encode %s: %w", f, err)
	}
	return nil
}

// WriteFile saves src to path, scaled per opts.
func WriteFile(path string, src render.PixelBuffer, opts Options) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if src.Width <= 0 || src.Height <= 0 {
		return fmt.Errorf("snapshot: empty buffer %dx%d", src.Width, src.Height)
	}

	var img image.Image = Image(src)
	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = src.Width
	}
	if h <= 0 {
		h = src.Height
	}
	if w != src.Width || h != src.Height {
		img = Scale(img, w, h, opts.Smooth)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("snapshot: mkdir %s: %w", dir, err)
		}
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: create %s: %w", path, err)
	}
	if err := Encode(out, img, f); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("snapshot: close %s: %w", path, err)
	}
	return nil
}
