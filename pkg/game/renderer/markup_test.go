package renderer

import (
	"strings"
	"testing"
)

func TestExpandMarkup(t *testing.T) {
	got := ExpandMarkup("KEY{+/-} GT{LABEL_SIZE}", func(function, operand string) string {
		return "<" + strings.ToLower(function) + ":" + operand + ">"
	})
	if want := "<key:+/-> Size"; got != want {
		t.Errorf("ExpandMarkup() = %q, want %q", got, want)
	}
}

func TestPlainText_HelpLine(t *testing.T) {
	got := PlainText("KEY{[/]} GT{LABEL_ROUGHNESS}  KEY{+/-} GT{LABEL_SIZE}")
	if want := "[/] Roughness  +/- Size"; got != want {
		t.Errorf("PlainText() = %q, want %q", got, want)
	}
}
