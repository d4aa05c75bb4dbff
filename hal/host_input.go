//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyBindings = []struct {
	code KeyCode
	keys []ebiten.Key
}{
	{KeyW, []ebiten.Key{ebiten.KeyW}},
	{KeyA, []ebiten.Key{ebiten.KeyA}},
	{KeyS, []ebiten.Key{ebiten.KeyS}},
	{KeyD, []ebiten.Key{ebiten.KeyD}},
	{KeySpace, []ebiten.Key{ebiten.KeySpace}},
	{KeyShift, []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight}},
	{KeyUp, []ebiten.Key{ebiten.KeyArrowUp}},
	{KeyDown, []ebiten.Key{ebiten.KeyArrowDown}},
	{KeyLeft, []ebiten.Key{ebiten.KeyArrowLeft}},
	{KeyRight, []ebiten.Key{ebiten.KeyArrowRight}},
	{KeyR, []ebiten.Key{ebiten.KeyR}},
	{KeyF3, []ebiten.Key{ebiten.KeyF3}},
	{KeyF12, []ebiten.Key{ebiten.KeyF12}},
	{KeyEscape, []ebiten.Key{ebiten.KeyEscape}},
}

// ebitenInput polls ebiten once per Update. Clicking the window captures the
// cursor; Escape releases it. Escape while released is left to the app.
type ebitenInput struct {
	state    InputState
	captured bool
	havePrev bool
	prevX    int
	prevY    int
}

func newEbitenInput() *ebitenInput { return &ebitenInput{} }

func (in *ebitenInput) Poll() InputState { return in.state }

func (in *ebitenInput) poll() {
	var st InputState
	for _, b := range keyBindings {
		for _, k := range b.keys {
			if ebiten.IsKeyPressed(k) {
				st.Held = st.Held.With(b.code)
			}
			if inpututil.IsKeyJustPressed(k) {
				st.Pressed = st.Pressed.With(b.code)
			}
		}
	}

	switch {
	case !in.captured && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		in.captured = true
		in.havePrev = false
	case in.captured && st.Pressed.Has(KeyEscape):
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		in.captured = false
		// Consumed by the release.
		st.Pressed &^= 1 << KeyEscape
	}

	if in.captured {
		x, y := ebiten.CursorPosition()
		if in.havePrev {
			st.MouseDX = float32(x - in.prevX)
			st.MouseDY = float32(y - in.prevY)
		}
		in.prevX, in.prevY = x, y
		in.havePrev = true
	}
	st.Captured = in.captured
	in.state = st
}
