package renderer

import (
	"heightmap/pkg/engine/input"
	"heightmap/pkg/game/i18n"
	"heightmap/pkg/game/state"
)

// ExportFunc writes the session's grid somewhere and returns where
type ExportFunc func(s *state.Session) (path string, err error)

// HandleIntent applies one intent to the session, running export for
// ActionExport. It reports whether the user asked to quit.
func HandleIntent(s *state.Session, in input.Intent, export ExportFunc) (quit bool) {
	if in.Action == input.ActionExport {
		if export == nil {
			return false
		}
		path, err := export(s)
		if err != nil {
			s.AddMessage(i18n.Tf("MSG_EXPORT_FAILED", err))
		} else {
			s.AddMessage(i18n.Tf("MSG_EXPORTED", path))
		}
		return false
	}
	return state.Apply(s, in)
}
