package hal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Width, Height int
	Hz            int
	// Ticks stops the run after that many frames. Zero runs until ctx ends.
	Ticks uint64
	// Unpaced runs frames back to back instead of on a Hz ticker. Delta is
	// still 1/Hz.
	Unpaced bool
	// Script supplies the input for each frame. Nil means no input.
	Script func(frame uint64) InputState
	Logger *slog.Logger
}

// StepFunc advances the app by one frame.
type StepFunc func() error

// RunHeadless runs the app without opening a window. A step returning ErrExit
// ends the run with a nil error.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, newApp func(HAL) (StepFunc, error)) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("invalid headless size: %dx%d", cfg.Width, cfg.Height)
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	clk := newFixedClock(d)
	in := &scriptInput{fn: cfg.Script, clk: clk}
	h := newHost(cfg.Logger, cfg.Width, cfg.Height, in, clk)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	var tick <-chan time.Time
	if !cfg.Unpaced {
		t := time.NewTicker(d)
		defer t.Stop()
		tick = t.C
	}

	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		clk.step()
		in.poll()
		if step != nil {
			if err := step(); err != nil {
				if errors.Is(err, ErrExit) {
					return nil
				}
				return err
			}
		}
		if cfg.Ticks > 0 && clk.Frame() >= cfg.Ticks {
			h.logger.Debug("headless run finished", "frames", clk.Frame(), "presents", h.fb.presentCount())
			return nil
		}
	}
}
