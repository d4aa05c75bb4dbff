package render

import (
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"raycast/camera"
)

// DefaultMaxWorkers caps the worker count when Options.MaxWorkers is zero.
const DefaultMaxWorkers = 16

// RowRange is the half-open row interval [Start, End).
type RowRange struct {
	Start, End int
}

func (r RowRange) Len() int { return r.End - r.Start }

// Partition splits height rows into workers contiguous ranges of height/workers
// rows each; the last range absorbs the remainder. workers is clamped to
// [1, height] so no range is empty.
func Partition(height, workers int) []RowRange {
	if height <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > height {
		workers = height
	}
	per := height / workers
	out := make([]RowRange, workers)
	for i := range out {
		out[i] = RowRange{Start: i * per, End: (i + 1) * per}
	}
	out[workers-1].End = height
	return out
}

// Options configure a Renderer.
type Options struct {
	// Workers is the number of goroutines per frame. Zero means runtime.NumCPU().
	// One renders synchronously on the calling goroutine.
	Workers int
	// MaxWorkers caps Workers. Zero means DefaultMaxWorkers.
	MaxWorkers int

	Overflow Overflow
}

// FrameStats describes the last rendered frame.
type FrameStats struct {
	Frame    uint64
	Workers  int
	Pixels   int
	Duration time.Duration
}

// Renderer dispatches a Shader over a frame. It is not safe for concurrent use;
// call RenderFrame from one goroutine.
type Renderer struct {
	shader  Shader
	opts    Options
	workers int

	frame uint64
	stats FrameStats
}

func New(shader Shader, opts Options) *Renderer {
	if opts.MaxWorkers <= 0 {
		opts.MaxWorkers = DefaultMaxWorkers
	}
	n := opts.Workers
	if n <= 0 {
		n = runtime.NumCPU()
	}
	n = min(max(n, 1), opts.MaxWorkers)
	return &Renderer{shader: shader, opts: opts, workers: n}
}

// Workers returns the configured worker count. A frame shorter than that uses one
// worker per row.
func (r *Renderer) Workers() int { return r.workers }

func (r *Renderer) Shader() Shader { return r.shader }

func (r *Renderer) LastStats() FrameStats { return r.stats }

type job struct {
	rows     RowRange
	view     *View
	dst      PixelBuffer
	shader   Shader
	overflow Overflow
}

func (j job) run() {
	for y := 0; y < j.rows.Len(); y++ {
		gy := j.rows.Start + y
		row := j.dst.Pix[y*j.dst.Stride : y*j.dst.Stride+j.dst.Width]
		for x := range row {
			row[x] = j.shader.Shade(x, gy, j.view).Pack(j.overflow)
		}
	}
}

// RenderFrame shades every pixel of dst as seen from cam. cam is copied; dst is
// written only inside its Width×Height area.
func (r *Renderer) RenderFrame(cam camera.Camera, dst PixelBuffer) error {
	if err := dst.Validate(); err != nil {
		return err
	}
	if dst.Width == 0 || dst.Height == 0 {
		return nil
	}
	if r.shader == nil {
		return fmt.Errorf("render: nil shader")
	}

	start := time.Now()
	view := NewView(cam, dst.Width, dst.Height)
	ranges := Partition(dst.Height, r.workers)

	jobs := make([]job, len(ranges))
	for i, rr := range ranges {
		jobs[i] = job{
			rows:     rr,
			view:     &view,
			dst:      dst.Rows(rr),
			shader:   r.shader,
			overflow: r.opts.Overflow,
		}
	}

	if len(jobs) == 1 {
		jobs[0].run()
	} else {
		var g errgroup.Group
		for _, j := range jobs {
			g.Go(func() error {
				j.run()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return fmt.Errorf("render: frame %d: %w", r.frame, err)
		}
	}

	r.frame++
	r.stats = FrameStats{
		Frame:    r.frame,
		Workers:  len(jobs),
		Pixels:   dst.Width * dst.Height,
		Duration: time.Since(start),
	}
	Logger().Debug("frame rendered",
		"frame", r.stats.Frame,
		"workers", r.stats.Workers,
		"duration", r.stats.Duration)
	return nil
}
