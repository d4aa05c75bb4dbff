package hal

import (
	"log/slog"
)

type hostHAL struct {
	logger *slog.Logger
	fb     *hostFramebuffer
	in     inputSource
	clk    *hostClock
}

type inputSource interface {
	Input
	poll()
}

func newHost(logger *slog.Logger, width, height int, in inputSource, clk *hostClock) *hostHAL {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &hostHAL{
		logger: logger,
		fb:     newHostFramebuffer(width, height),
		in:     in,
		clk:    clk,
	}
}

func (h *hostHAL) Logger() *slog.Logger { return h.logger }
func (h *hostHAL) Display() Display     { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input         { return h.in }
func (h *hostHAL) Clock() Clock         { return h.clk }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

// scriptInput replays InputStates from a function of the frame number.
type scriptInput struct {
	fn    func(frame uint64) InputState
	clk   *hostClock
	state InputState
}

func (s *scriptInput) poll() {
	if s.fn == nil {
		s.state = InputState{}
		return
	}
	s.state = s.fn(s.clk.Frame())
}

func (s *scriptInput) Poll() InputState { return s.state }
