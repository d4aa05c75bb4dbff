package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"raycast/app"
	"raycast/hal"
	"raycast/internal/buildinfo"
	"raycast/internal/config"
	"raycast/render"
)

func main() {
	var (
		configPath   string
		headless     bool
		ticks        uint64
		snapshotPath string
		showHUD      bool
		verbose      bool
		version      bool
		flags        config.Flags
	)
	flag.StringVar(&configPath, "config", "", "JSON config file.")
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.IntVar(&flags.TPS, "hz", 0, "Frames per second, window and headless (0 = config value, default 60).")
	flag.Uint64Var(&ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run until interrupted).")
	flag.StringVar(&snapshotPath, "snapshot", "", "Headless: write the last frame to this file (.png, .webp, .tga, .bmp).")
	flag.StringVar(&flags.Scene, "scene", "", "Scene: cube, sphere or gradient.")
	flag.IntVar(&flags.Workers, "workers", 0, "Render goroutines per frame (0 = NumCPU).")
	flag.StringVar(&flags.Render, "render", "", "Render resolution WxH.")
	flag.StringVar(&flags.Window, "window", "", "Window size WxH.")
	flag.BoolVar(&showHUD, "hud", true, "Draw the stats overlay.")
	flag.BoolVar(&flags.WrapColors, "wrap-colors", false, "Wrap overflowing color channels instead of clamping.")
	flag.BoolVar(&verbose, "v", false, "Debug logging (one line per frame).")
	flag.BoolVar(&version, "version", false, "Print version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	render.SetLogger(logger)

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			fatal(logger, err)
		}
	}
	flags.NoHUD = !showHUD
	if err := cfg.Resolve(flags); err != nil {
		fatal(logger, err)
	}
	if err := cfg.Validate(); err != nil {
		fatal(logger, err)
	}
	logger.Info("starting", "build", buildinfo.Short(), "scene", cfg.Scene, "headless", headless)

	var a *app.App
	newApp := func(h hal.HAL) (hal.StepFunc, error) {
		var err error
		if a, err = app.New(h, cfg); err != nil {
			return nil, err
		}
		return a.StepFunc(), nil
	}

	if headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := hal.RunHeadless(ctx, hal.HeadlessConfig{
			Width:  cfg.RenderWidth,
			Height: cfg.RenderHeight,
			Hz:     cfg.TPS,
			Ticks:  ticks,
			// With a tick budget the run is a batch job; skip the pacing.
			Unpaced: ticks > 0,
			Logger:  logger,
		}, newApp)
		if err != nil && !errors.Is(err, context.Canceled) {
			fatal(logger, err)
		}
		if snapshotPath != "" && a != nil {
			if err := a.Snapshot(snapshotPath); err != nil {
				fatal(logger, err)
			}
		}
		return
	}

	err := hal.RunWindow(hal.WindowConfig{
		Title:        "raycast " + cfg.Scene,
		Width:        cfg.RenderWidth,
		Height:       cfg.RenderHeight,
		WindowWidth:  cfg.WindowWidth,
		WindowHeight: cfg.WindowHeight,
		TPS:          cfg.TPS,
		Logger:       logger,
	}, newApp)
	if err != nil {
		fatal(logger, err)
	}
}

func fatal(logger *slog.Logger, err error) {
	logger.Error("raycast failed", "err", err)
	os.Exit(1)
}
