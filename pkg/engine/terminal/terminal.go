package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal reports whether stdout is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// MapViewport returns how many grid columns and rows fit on screen when
// reservedLines are kept for other output. Each text line shows two grid rows.
func MapViewport(reservedLines int) (cols, rows int) {
	width, height := GetSize()
	return FitViewport(width, height, reservedLines)
}

// FitViewport is MapViewport for an explicit terminal size
func FitViewport(width, height, reservedLines int) (cols, rows int) {
	lines := height - reservedLines
	if lines < 1 {
		lines = 1
	}
	if width < 1 {
		width = 1
	}
	return width, lines * 2
}
