package state

import (
	"heightmap/pkg/engine/input"
	"heightmap/pkg/game/generator"
)

// Apply performs the settings change an intent asks for. It reports whether
// the intent requests the session to end. ActionExport is left to the caller,
// which knows where output should go.
func Apply(s *Session, in input.Intent) (quit bool) {
	store := s.Store()

	switch in.Action {
	case input.ActionSizeUp:
		store.StepSize(1)
	case input.ActionSizeDown:
		store.StepSize(-1)
	case input.ActionRoughnessUp:
		store.StepRoughness(1)
	case input.ActionRoughnessDown:
		store.StepRoughness(-1)
	case input.ActionCyclePalette:
		store.CyclePalette()
	case input.ActionCycleGenerator:
		store.UpdateGenerator(generator.Next(store.Current().Generator))
	case input.ActionRegenerate:
		s.Regenerate()
	case input.ActionReset:
		s.Reset()
	case input.ActionQuit:
		return true
	}
	return false
}
