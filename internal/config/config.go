// Package config holds the runtime settings of the raycaster: scene choice,
// resolutions, camera tuning and raymarch limits.
//
// Settings come from Default, optionally overlaid by a JSON file (Load), then by
// command-line flags (Resolve).
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"raycast/camera"
	"raycast/render"
	"raycast/scene"
)

var ErrInvalid = errors.New("config: invalid")

// Config is the full runtime configuration.
type Config struct {
	Scene string `json:"scene"`

	// Render resolution. The render buffer is upscaled to the window by the host.
	RenderWidth  int `json:"render_width"`
	RenderHeight int `json:"render_height"`
	WindowWidth  int `json:"window_width"`
	WindowHeight int `json:"window_height"`
	TPS          int `json:"tps"`

	Workers    int `json:"workers"`
	MaxWorkers int `json:"max_workers"`

	MoveSpeed     float32 `json:"move_speed"`
	RotationSpeed float32 `json:"rotation_speed"`
	LookSpeed     float32 `json:"look_speed"`
	InvertMouseY  bool    `json:"invert_mouse_y"`

	MarchSteps       int     `json:"march_steps"`
	MarchEpsilon     float32 `json:"march_epsilon"`
	MarchMaxDistance float32 `json:"march_max_distance"`
	SphereRadius     float32 `json:"sphere_radius"`

	// WrapColors narrows overflowing channels by truncation instead of clamping.
	WrapColors bool `json:"wrap_colors"`

	HUD           bool   `json:"hud"`
	ScreenshotDir string `json:"screenshot_dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	ctl := camera.DefaultControls()
	mp := scene.DefaultMarchParams()
	return Config{
		Scene:            string(scene.KindCube),
		RenderWidth:      320,
		RenderHeight:     180,
		WindowWidth:      1280,
		WindowHeight:     720,
		TPS:              60,
		MaxWorkers:       render.DefaultMaxWorkers,
		MoveSpeed:        ctl.MoveSpeed,
		RotationSpeed:    ctl.RotationSpeed,
		LookSpeed:        ctl.LookSpeed,
		MarchSteps:       mp.MaxSteps,
		MarchEpsilon:     mp.Epsilon,
		MarchMaxDistance: mp.MaxDistance,
		SphereRadius:     mp.Radius,
		HUD:              true,
		ScreenshotDir:    ".",
	}
}

// Load overlays the JSON file at path onto Default. Keys missing from the file
// keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags are command-line overrides. Zero values mean "not set".
type Flags struct {
	Scene      string
	Render     string // WxH
	Window     string // WxH
	Workers    int
	TPS        int
	WrapColors bool
	NoHUD      bool
}

// Resolve applies non-zero flags on top of c.
func (c *Config) Resolve(f Flags) error {
	if f.Scene != "" {
		c.Scene = f.Scene
	}
	if f.Render != "" {
		w, h, err := ParseSize(f.Render)
		if err != nil {
			return err
		}
		c.RenderWidth, c.RenderHeight = w, h
	}
	if f.Window != "" {
		w, h, err := ParseSize(f.Window)
		if err != nil {
			return err
		}
		c.WindowWidth, c.WindowHeight = w, h
	}
	if f.Workers > 0 {
		c.Workers = f.Workers
	}
	if f.TPS > 0 {
		c.TPS = f.TPS
	}
	if f.WrapColors {
		c.WrapColors = true
	}
	if f.NoHUD {
		c.HUD = false
	}
	return nil
}

// ParseSize parses "WxH".
func ParseSize(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: size %q, want WxH", ErrInvalid, s)
	}
	w, errW := strconv.Atoi(ws)
	h, errH := strconv.Atoi(hs)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%w: size %q, want WxH", ErrInvalid, s)
	}
	return w, h, nil
}

// Validate reports the first setting that cannot work.
func (c Config) Validate() error {
	if _, err := scene.ParseKind(c.Scene); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch {
	case c.RenderWidth <= 0 || c.RenderHeight <= 0:
		return fmt.Errorf("%w: render size %dx%d", ErrInvalid, c.RenderWidth, c.RenderHeight)
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.WindowWidth, c.WindowHeight)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalid, c.TPS)
	case c.Workers < 0 || c.MaxWorkers < 0:
		return fmt.Errorf("%w: workers %d max %d", ErrInvalid, c.Workers, c.MaxWorkers)
	case c.MarchSteps <= 0:
		return fmt.Errorf("%w: march steps %d", ErrInvalid, c.MarchSteps)
	case c.MarchEpsilon <= 0 || c.MarchMaxDistance <= 0 || c.SphereRadius <= 0:
		return fmt.Errorf("%w: march epsilon %v max distance %v radius %v",
			ErrInvalid, c.MarchEpsilon, c.MarchMaxDistance, c.SphereRadius)
	case c.MoveSpeed < 0 || c.RotationSpeed < 0 || c.LookSpeed < 0:
		return fmt.Errorf("%w: negative speed", ErrInvalid)
	}
	return nil
}

// Kind returns the parsed scene kind. Call Validate first.
func (c Config) Kind() scene.Kind {
	k, _ := scene.ParseKind(c.Scene)
	return k
}

func (c Config) Controls() camera.Controls {
	return camera.Controls{
		MoveSpeed:     c.MoveSpeed,
		RotationSpeed: c.RotationSpeed,
		LookSpeed:     c.LookSpeed,
		InvertY:       c.InvertMouseY,
	}
}

func (c Config) MarchParams() scene.MarchParams {
	return scene.MarchParams{
		MaxSteps:    c.MarchSteps,
		Epsilon:     c.MarchEpsilon,
		MaxDistance: c.MarchMaxDistance,
		Radius:      c.SphereRadius,
	}
}

func (c Config) RenderOptions() render.Options {
	o := render.Options{Workers: c.Workers, MaxWorkers: c.MaxWorkers}
	if c.WrapColors {
		o.Overflow = render.OverflowWrap
	}
	return o
}
