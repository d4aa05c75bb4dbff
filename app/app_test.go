package app

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"raycast/camera"
	"raycast/hal"
	"raycast/internal/config"
	"raycast/render"
	"raycast/scene"
)

type fakeFB struct {
	w, h, stride int
	pix          []uint32
	presents     int
	format       hal.PixelFormat
}

func (f *fakeFB) Width() int              { return f.w }
func (f *fakeFB) Height() int             { return f.h }
func (f *fakeFB) Format() hal.PixelFormat { return f.format }
func (f *fakeFB) Stride() int             { return f.stride }
func (f *fakeFB) Pixels() []uint32        { return f.pix }
func (f *fakeFB) Present() error          { f.presents++; return nil }

type fakeHAL struct {
	fb    *fakeFB
	input hal.InputState
	delta time.Duration
	frame uint64
}

func newFakeHAL(w, h int) *fakeHAL {
	return &fakeHAL{
		fb:    &fakeFB{w: w, h: h, stride: w + 3, pix: make([]uint32, (w+3)*h), format: hal.PixelFormatXRGB8888},
		delta: 100 * time.Millisecond,
	}
}

func (h *fakeHAL) Logger() *slog.Logger         { return slog.New(slog.DiscardHandler) }
func (h *fakeHAL) Display() hal.Display         { return h }
func (h *fakeHAL) Framebuffer() hal.Framebuffer { return h.fb }
func (h *fakeHAL) Input() hal.Input             { return h }
func (h *fakeHAL) Poll() hal.InputState         { return h.input }
func (h *fakeHAL) Clock() hal.Clock             { return h }
func (h *fakeHAL) Delta() time.Duration         { return h.delta }
func (h *fakeHAL) Frame() uint64                { return h.frame }

func press(keys ...hal.KeyCode) hal.InputState {
	var st hal.InputState
	for _, k := range keys {
		st.Held = st.Held.With(k)
		st.Pressed = st.Pressed.With(k)
	}
	return st
}

func testConfig(kind scene.Kind) config.Config {
	cfg := config.Default()
	cfg.Scene = string(kind)
	cfg.HUD = false
	cfg.Workers = 2
	cfg.WindowWidth, cfg.WindowHeight = 64, 48
	return cfg
}

func newTestApp(t *testing.T, h *fakeHAL, cfg config.Config) *App {
	t.Helper()
	a, err := New(h, cfg)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Scene = "torus"
	if _, err := New(newFakeHAL(8, 8), cfg); !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}

	h := newFakeHAL(8, 8)
	h.fb.format = 0
	if _, err := New(h, config.Default()); !errors.Is(err, hal.ErrNotImplemented) {
		t.Fatalf("err = %v, want ErrNotImplemented", err)
	}
}

func TestStepRendersAndPresents(t *testing.T) {
	h := newFakeHAL(33, 21)
	a := newTestApp(t, h, testConfig(scene.KindCube))
	if err := a.Step(); err != nil {
		t.Fatal(err)
	}
	if h.fb.presents != 1 {
		t.Fatalf("presents = %d", h.fb.presents)
	}
	center := h.fb.pix[10*h.fb.stride+16]
	if center == render.Background.Pack(render.OverflowClamp) {
		t.Fatalf("cube not visible from the start pose")
	}
	corner := h.fb.pix[0]
	if corner != render.Background.Pack(render.OverflowClamp) {
		t.Fatalf("corner = %#x, want background", corner)
	}
	// Stride padding is never written.
	if h.fb.pix[33] != 0 {
		t.Fatalf("padding written: %#x", h.fb.pix[33])
	}
	if a.Stats().Workers != 2 || a.Stats().Pixels != 33*21 {
		t.Fatalf("stats = %+v", a.Stats())
	}
}

func TestStepMovesCamera(t *testing.T) {
	h := newFakeHAL(4, 4)
	a := newTestApp(t, h, testConfig(scene.KindSphere))
	start := a.Camera().Position

	h.input = press(hal.KeyW)
	if err := a.Step(); err != nil {
		t.Fatal(err)
	}
	got := a.Camera().Position
	want := start.Z + config.Default().MoveSpeed*0.1
	if d := got.Z - want; d > 1e-5 || d < -1e-5 || got.X != start.X || got.Y != start.Y {
		t.Fatalf("position = %+v, want z=%v", got, want)
	}

	h.input = hal.InputState{MouseDX: 100, Captured: true}
	if err := a.Step(); err != nil {
		t.Fatal(err)
	}
	if a.Camera().Yaw() <= 0 {
		t.Fatalf("mouse right did not turn right: yaw = %v", a.Camera().Yaw())
	}

	h.input = press(hal.KeyR)
	if err := a.Step(); err != nil {
		t.Fatal(err)
	}
	if a.Camera() != scene.DefaultCamera(scene.KindSphere) {
		t.Fatalf("reset camera = %+v", a.Camera())
	}
}

func TestEscapeQuitsOnlyWhenReleased(t *testing.T) {
	h := newFakeHAL(4, 4)
	a := newTestApp(t, h, testConfig(scene.KindGradient))

	h.input = press(hal.KeyEscape)
	h.input.Captured = true
	if err := a.Step(); err != nil {
		t.Fatalf("captured escape: %v", err)
	}

	h.input.Captured = false
	err := a.Step()
	if !errors.Is(err, hal.ErrExit) || !IsExit(err) {
		t.Fatalf("err = %v, want ErrExit", err)
	}
}

func TestHUDToggle(t *testing.T) {
	h := newFakeHAL(64, 32)
	cfg := testConfig(scene.KindGradient)
	cfg.HUD = true
	a := newTestApp(t, h, cfg)

	if err := a.Step(); err != nil {
		t.Fatal(err)
	}
	withHUD := append([]uint32(nil), h.fb.pix...)

	h.input = press(hal.KeyF3)
	if err := a.Step(); err != nil {
		t.Fatal(err)
	}
	if a.HUDVisible() {
		t.Fatalf("F3 did not hide the HUD")
	}
	differs := false
	for i := range withHUD {
		if withHUD[i] != h.fb.pix[i] {
			differs = true
			break
		}
	}
	if !differs {
		t.Fatalf("HUD drew nothing")
	}
}

func TestScreenshotKey(t *testing.T) {
	dir := t.TempDir()
	h := newFakeHAL(16, 12)
	cfg := testConfig(scene.KindCube)
	cfg.ScreenshotDir = filepath.Join(dir, "shots")
	a := newTestApp(t, h, cfg)

	h.input = press(hal.KeyF12)
	if err := a.Step(); err != nil {
		t.Fatal(err)
	}
	matches, err := filepath.Glob(filepath.Join(dir, "shots", "raycast-*.png"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("screenshots = %v (%v)", matches, err)
	}
}

func TestSnapshot(t *testing.T) {
	h := newFakeHAL(16, 12)
	a := newTestApp(t, h, testConfig(scene.KindCube))
	if err := a.Step(); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "frame.bmp")
	if err := a.Snapshot(path); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Fatalf("snapshot file: %v", err)
	}
	if err := a.Snapshot(filepath.Join(t.TempDir(), "frame.jpg")); err == nil {
		t.Fatalf("expected unknown format error")
	}
}

func TestControlInputMapping(t *testing.T) {
	in := controlInput(hal.InputState{Held: press(hal.KeyA, hal.KeyUp).Held, MouseDX: 3, MouseDY: -2})
	if in.MouseDX != 3 || in.MouseDY != -2 {
		t.Fatalf("mouse = %v %v", in.MouseDX, in.MouseDY)
	}
	if !in.Keys.Has(camera.KeyLeft) || !in.Keys.Has(camera.KeyLookUp) || in.Keys.Has(camera.KeyForward) {
		t.Fatalf("keys = %b", in.Keys)
	}
}
