//go:build !cgo

package hal

import (
	"errors"
	"log/slog"
)

// WindowConfig controls the desktop window host.
type WindowConfig struct {
	Title                     string
	Width, Height             int
	WindowWidth, WindowHeight int
	TPS                       int
	Logger                    *slog.Logger
}

func RunWindow(_ WindowConfig, _ func(HAL) (StepFunc, error)) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
