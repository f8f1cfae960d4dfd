package renderer

import (
	"heightmap/pkg/game/state"
)

// Renderer defines the interface for display backends
// Implementations include TUI (terminal) and Ebiten (window).
type Renderer interface {
	// Init initializes the renderer (colors, window, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders the current grid, status bar and message log
	RenderFrame(s *state.Session)

	// ShowMessage displays a message to the user
	ShowMessage(msg string)

	// GetViewportSize returns how many grid rows and columns fit on screen
	GetViewportSize() (rows, cols int)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete frame
func RenderFrame(s *state.Session) {
	if Current != nil {
		Current.RenderFrame(s)
	}
}

// ShowMessage displays a message using the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}

// GetViewportSize returns viewport dimensions
func GetViewportSize() (rows, cols int) {
	if Current != nil {
		return Current.GetViewportSize()
	}
	return 33, 33 // a size-5 grid
}
