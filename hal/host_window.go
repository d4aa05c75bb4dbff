//go:build cgo

package hal

import (
	"errors"
	"log/slog"

	"raycast/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig controls the desktop window host.
type WindowConfig struct {
	Title string
	// Width and Height are the framebuffer size. The window scales it to
	// WindowWidth x WindowHeight.
	Width, Height             int
	WindowWidth, WindowHeight int
	TPS                       int
	Logger                    *slog.Logger
}

// RunWindow starts a desktop window that displays the framebuffer and forwards
// keyboard and mouse input. It blocks until the window closes or a step
// returns ErrExit.
func RunWindow(cfg WindowConfig, newApp func(HAL) (StepFunc, error)) error {
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 {
		cfg.WindowWidth, cfg.WindowHeight = cfg.Width*2, cfg.Height*2
	}
	if cfg.Title == "" {
		cfg.Title = "raycast"
	}

	in := newEbitenInput()
	h := newHost(cfg.Logger, cfg.Width, cfg.Height, in, newMeasuredClock(cfg.TPS))
	step, err := newApp(h)
	if err != nil {
		return err
	}

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle(cfg.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)
	h.logger.Info("window open", "render", [2]int{cfg.Width, cfg.Height},
		"window", [2]int{cfg.WindowWidth, cfg.WindowHeight}, "tps", cfg.TPS)

	err = ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type hostGame struct {
	h     *hostHAL
	pix   []byte
	fbImg *ebiten.Image
	step  StepFunc
}

func (g *hostGame) Update() error {
	g.h.clk.step()
	g.h.in.poll()
	if g.step == nil {
		return nil
	}
	if err := g.step(); err != nil {
		if errors.Is(err, ErrExit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.fbImg == nil {
		g.pix = make([]byte, fb.width*fb.height*4)
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}
	fb.snapshotRGBA(g.pix)
	g.fbImg.WritePixels(g.pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
