package input

import "sort"

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high-level control request.
type Action int

const (
	ActionNone Action = iota

	ActionSizeUp
	ActionSizeDown
	ActionRoughnessUp
	ActionRoughnessDown
	ActionCyclePalette
	ActionCycleGenerator
	ActionRegenerate
	ActionExport
	ActionReset
	ActionQuit
)

// Intent is the top-layer description of what the user wants to do.
type Intent struct {
	Action Action
}

// RawInput is the event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "+", "arrow_up", "KeyP").
type RawInput struct {
	Device Device
	Code   string
}

// bindings maps raw codes to actions. Multiple codes may point to the same Action.
var bindings = map[string]Action{
	"+":           ActionSizeUp,
	"=":           ActionSizeUp,
	"arrow_right": ActionSizeUp,
	"-":           ActionSizeDown,
	"_":           ActionSizeDown,
	"arrow_left":  ActionSizeDown,

	"]":          ActionRoughnessUp,
	"arrow_up":   ActionRoughnessUp,
	"[":          ActionRoughnessDown,
	"arrow_down": ActionRoughnessDown,

	"p": ActionCyclePalette,
	"c": ActionCyclePalette,
	"g": ActionCycleGenerator,

	"r":     ActionRegenerate,
	" ":     ActionRegenerate,
	"enter": ActionRegenerate,

	"s": ActionExport,
	"0": ActionReset,

	"q":      ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,
}

// Actions lists every bindable action in display order
func Actions() []Action {
	acts := make([]Action, 0, int(ActionQuit))
	for a := ActionSizeUp; a <= ActionQuit; a++ {
		acts = append(acts, a)
	}
	return acts
}

// MapToIntent applies the bindings to a raw input and returns an Intent.
func MapToIntent(ev RawInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionSizeUp:
		return "Size Up"
	case ActionSizeDown:
		return "Size Down"
	case ActionRoughnessUp:
		return "Roughness Up"
	case ActionRoughnessDown:
		return "Roughness Down"
	case ActionCyclePalette:
		return "Cycle Palette"
	case ActionCycleGenerator:
		return "Cycle Generator"
	case ActionRegenerate:
		return "Regenerate"
	case ActionExport:
		return "Export"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text doesn't shuffle between frames.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
