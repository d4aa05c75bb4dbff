// Package app is the per-frame loop of the raycaster: poll input, move the
// camera, render, draw the HUD and present.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"raycast/camera"
	"raycast/hal"
	"raycast/hud"
	"raycast/internal/config"
	"raycast/render"
	"raycast/scene"
	"raycast/snapshot"
)

// App owns the camera and renderer for one HAL.
type App struct {
	h   hal.HAL
	log *slog.Logger
	cfg config.Config

	kind     scene.Kind
	cam      camera.Camera
	controls camera.Controls
	renderer *render.Renderer

	overlay *hud.Overlay
	showHUD bool

	fps   float64 // smoothed frames per second
	shots int
}

// New validates cfg and builds the scene for h's framebuffer.
func New(h hal.HAL, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	fb := h.Display().Framebuffer()
	if fb == nil {
		return nil, fmt.Errorf("app: no framebuffer: %w", hal.ErrNotImplemented)
	}
	if fb.Format() != hal.PixelFormatXRGB8888 {
		return nil, fmt.Errorf("app: pixel format %d: %w", fb.Format(), hal.ErrNotImplemented)
	}

	kind := cfg.Kind()
	shader, err := render.NewShader(kind, cfg.MarchParams())
	if err != nil {
		return nil, err
	}
	a := &App{
		h:        h,
		log:      h.Logger(),
		cfg:      cfg,
		kind:     kind,
		cam:      scene.DefaultCamera(kind),
		controls: cfg.Controls(),
		renderer: render.New(shader, cfg.RenderOptions()),
		overlay:  hud.New(),
		showHUD:  cfg.HUD,
	}
	a.log.Info("scene ready",
		"scene", kind,
		"size", fmt.Sprintf("%dx%d", fb.Width(), fb.Height()),
		"workers", a.renderer.Workers(),
		"overflow", cfg.RenderOptions().Overflow)
	return a, nil
}

// StepFunc adapts a for the hal runners.
func (a *App) StepFunc() hal.StepFunc { return a.Step }

func (a *App) Camera() camera.Camera { return a.cam }

func (a *App) SetCamera(c camera.Camera) {
	c.ClampPitch()
	a.cam = c
}

func (a *App) HUDVisible() bool { return a.showHUD }

func (a *App) Stats() render.FrameStats { return a.renderer.LastStats() }

// Step runs one frame. It returns hal.ErrExit when the user asks to quit.
func (a *App) Step() error {
	in := a.h.Input().Poll()
	dt := a.h.Clock().Delta()

	if in.Pressed.Has(hal.KeyEscape) && !in.Captured {
		return hal.ErrExit
	}
	if in.Pressed.Has(hal.KeyF3) {
		a.showHUD = !a.showHUD
	}
	if in.Pressed.Has(hal.KeyR) {
		a.cam = scene.DefaultCamera(a.kind)
	}
	camera.Integrate(&a.cam, controlInput(in), float32(dt.Seconds()), a.controls)
	a.trackFPS(dt)

	buf := a.buffer()
	if err := a.renderer.RenderFrame(a.cam, buf); err != nil {
		return err
	}
	if a.showHUD {
		a.overlay.Draw(buf, a.hudLines(in.Captured))
	}
	if err := a.h.Display().Framebuffer().Present(); err != nil {
		return fmt.Errorf("app: present: %w", err)
	}

	if in.Pressed.Has(hal.KeyF12) {
		if err := a.screenshot(); err != nil {
			// A failed screenshot should not end the session.
			a.log.Error("screenshot failed", "err", err)
		}
	}
	return nil
}

// Snapshot writes the last rendered frame to path, upscaled to the configured
// window size. The format follows the file extension.
func (a *App) Snapshot(path string) error {
	buf := a.buffer()
	err := snapshot.WriteFile(path, buf, snapshot.Options{
		Width:  a.cfg.WindowWidth,
		Height: a.cfg.WindowHeight,
	})
	if err != nil {
		return err
	}
	a.log.Info("snapshot saved", "path", path)
	return nil
}

func (a *App) screenshot() error {
	a.shots++
	name := fmt.Sprintf("raycast-%s-%03d.png", time.Now().Format("20060102-150405"), a.shots)
	return a.Snapshot(filepath.Join(a.cfg.ScreenshotDir, name))
}

func (a *App) buffer() render.PixelBuffer {
	fb := a.h.Display().Framebuffer()
	return render.PixelBuffer{
		Pix:    fb.Pixels(),
		Width:  fb.Width(),
		Height: fb.Height(),
		Stride: fb.Stride(),
	}
}

func (a *App) trackFPS(dt time.Duration) {
	if dt <= 0 {
		return
	}
	inst := 1 / dt.Seconds()
	if a.fps == 0 {
		a.fps = inst
		return
	}
	a.fps += (inst - a.fps) * 0.1
}

// controlInput maps the HAL key set onto camera controls.
func controlInput(in hal.InputState) camera.Input {
	bindings := [...]struct {
		key hal.KeyCode
		set camera.KeySet
	}{
		{hal.KeyW, camera.KeyForward},
		{hal.KeyS, camera.KeyBack},
		{hal.KeyA, camera.KeyLeft},
		{hal.KeyD, camera.KeyRight},
		{hal.KeySpace, camera.KeyUp},
		{hal.KeyShift, camera.KeyDown},
		{hal.KeyLeft, camera.KeyLookLeft},
		{hal.KeyRight, camera.KeyLookRight},
		{hal.KeyUp, camera.KeyLookUp},
		{hal.KeyDown, camera.KeyLookDown},
	}
	out := camera.Input{MouseDX: in.MouseDX, MouseDY: in.MouseDY}
	for _, b := range bindings {
		if in.Held.Has(b.key) {
			out.Keys |= b.set
		}
	}
	return out
}

// IsExit reports whether err is a clean quit request.
func IsExit(err error) bool { return errors.Is(err, hal.ErrExit) }
