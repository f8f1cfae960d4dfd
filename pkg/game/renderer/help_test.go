package renderer

import (
	"strings"
	"testing"

	"heightmap/pkg/engine/input"
)

func TestHelpEntries_FollowBindings(t *testing.T) {
	entries := HelpEntries()
	if len(entries) != len(input.Actions()) {
		t.Fatalf("HelpEntries() has %d entries, want %d", len(entries), len(input.Actions()))
	}

	want := map[string]bool{
		"KEY{^C/esc/q} Quit":            true,
		"KEY{space/enter/r} Regenerate": true,
		"KEY{0} Reset":                  true,
		"KEY{]/up} Roughness Up":        true,
	}
	for _, e := range entries {
		delete(want, e)
	}
	for e := range want {
		t.Errorf("HelpEntries() is missing %q (got %v)", e, entries)
	}
}

func TestHelpLines_FitWidth(t *testing.T) {
	lines := HelpLines(HelpWidth)
	if len(lines) < 2 {
		t.Fatalf("HelpLines(%d) = %d lines, want the entries wrapped", HelpWidth, len(lines))
	}

	joined := PlainText(strings.Join(lines, "  "))
	for _, line := range lines {
		if n := len(PlainText(line)); n > HelpWidth {
			t.Errorf("line %q is %d wide, want <= %d", PlainText(line), n, HelpWidth)
		}
	}
	for _, e := range HelpEntries() {
		if !strings.Contains(joined, PlainText(e)) {
			t.Errorf("HelpLines() dropped %q", PlainText(e))
		}
	}
}
