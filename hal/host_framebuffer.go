package hal

import "sync"

// hostFramebuffer is double buffered: the app draws into back and Present
// copies it to front, which the window reads from Draw.
type hostFramebuffer struct {
	mu       sync.Mutex
	width    int
	height   int
	stride   int
	back     []uint32
	front    []uint32
	presents uint64
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := (width + 7) &^ 7
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		back:   make([]uint32, stride*height),
		front:  make([]uint32, stride*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatXRGB8888 }
func (f *hostFramebuffer) Stride() int         { return f.stride }
func (f *hostFramebuffer) Pixels() []uint32    { return f.back }

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.front, f.back)
	f.presents++
	return nil
}

// snapshotRGBA converts the last presented frame into dst, which must hold
// width*height*4 bytes.
func (f *hostFramebuffer) snapshotRGBA(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	xrgbToRGBA(dst, f.front, f.width, f.height, f.stride)
}

func (f *hostFramebuffer) presentCount() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.presents
}
