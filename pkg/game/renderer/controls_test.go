package renderer

import (
	"errors"
	"testing"

	"heightmap/pkg/engine/input"
	"heightmap/pkg/engine/random"
	"heightmap/pkg/game/generator"
	"heightmap/pkg/game/palette"
	"heightmap/pkg/game/settings"
	"heightmap/pkg/game/state"
)

func newSession(t *testing.T, size int) *state.Session {
	t.Helper()
	store := settings.NewStore(settings.Settings{
		Size:      size,
		Roughness: 0.5,
		Palette:   palette.MustLookup(palette.Default),
		Generator: generator.DefaultGenerator,
	})
	s := state.NewSession(store, random.NewSeeded(3))
	t.Cleanup(s.Close)
	return s
}

func lastMessage(s *state.Session) string {
	msgs := s.Messages()
	if len(msgs) == 0 {
		return ""
	}
	return msgs[len(msgs)-1]
}

func TestHandleIntent_Export(t *testing.T) {
	s := newSession(t, 2)
	exportIntent := input.Intent{Action: input.ActionExport}

	quit := HandleIntent(s, exportIntent, func(*state.Session) (string, error) {
		return "out.png", nil
	})
	if quit {
		t.Error("export reported quit")
	}
	if got := lastMessage(s); got != "Wrote out.png" {
		t.Errorf("last message = %q, want %q", got, "Wrote out.png")
	}

	HandleIntent(s, exportIntent, func(*state.Session) (string, error) {
		return "", errors.New("disk full")
	})
	if got := lastMessage(s); got != "Export failed: disk full" {
		t.Errorf("last message = %q", got)
	}
}

func TestHandleIntent_ExportWithoutExporter(t *testing.T) {
	s := newSession(t, 2)
	before := len(s.Messages())
	if HandleIntent(s, input.Intent{Action: input.ActionExport}, nil) {
		t.Error("export reported quit")
	}
	if len(s.Messages()) != before {
		t.Error("export without exporter added a message")
	}
}

func TestHandleIntent_DelegatesToControls(t *testing.T) {
	s := newSession(t, 3)

	HandleIntent(s, input.Intent{Action: input.ActionSizeUp}, nil)
	if s.Settings().Size != 4 {
		t.Errorf("Size = %d, want 4", s.Settings().Size)
	}
	if !HandleIntent(s, input.Intent{Action: input.ActionQuit}, nil) {
		t.Error("quit intent not reported")
	}
}
