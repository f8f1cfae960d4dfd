package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "heightmap/pkg/engine/input"
	"heightmap/pkg/game/renderer"
)

// keyCodes maps Ebiten keys to the raw codes understood by the input bindings
var keyCodes = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyEqual, "="},
	{ebiten.KeyNumpadAdd, "+"},
	{ebiten.KeyMinus, "-"},
	{ebiten.KeyNumpadSubtract, "-"},
	{ebiten.KeyBracketRight, "]"},
	{ebiten.KeyBracketLeft, "["},
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyP, "p"},
	{ebiten.KeyC, "c"},
	{ebiten.KeyG, "g"},
	{ebiten.KeyR, "r"},
	{ebiten.KeySpace, " "},
	{ebiten.KeyEnter, "enter"},
	{ebiten.KeyS, "s"},
	{ebiten.Key0, "0"},
	{ebiten.KeyNumpad0, "0"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyEscape, "escape"},
}

// Update handles input once per tick (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	e.mu.RLock()
	s := e.session
	e.mu.RUnlock()
	if s == nil {
		return nil
	}

	in := e.pollIntent()
	if in.Action == engineinput.ActionNone {
		return nil
	}
	if renderer.HandleIntent(s, in, e.export) {
		return ebiten.Termination
	}
	return nil
}

// pollIntent returns the intent for the first key pressed this tick
func (e *EbitenRenderer) pollIntent() engineinput.Intent {
	for _, kc := range keyCodes {
		if inpututil.IsKeyJustPressed(kc.key) {
			return engineinput.MapToIntent(engineinput.RawInput{
				Device: engineinput.DeviceKeyboard,
				Code:   kc.code,
			})
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.windowWidth = outsideWidth
	e.windowHeight = outsideHeight
	return outsideWidth, outsideHeight
}
