// Package ebiten shows height grids in a desktop window using Ebiten.
// Ebiten is a 2D game library for Go: https://ebiten.org/
package ebiten

import (
	"errors"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"heightmap/pkg/game/i18n"
	"heightmap/pkg/game/renderer"
	"heightmap/pkg/game/state"
)

// EbitenRenderer is the Ebiten-based graphical renderer. It implements both
// renderer.Renderer and ebiten.Game.
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	session *state.Session
	export  renderer.ExportFunc
	mu      sync.RWMutex

	// mapImage caches the rasterized grid until the generation or palette changes
	mapImage      *ebiten.Image
	mapGeneration int
	mapPalette    string
}

// New creates a new Ebiten renderer with the given window size
func New(width, height int) *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:  width,
		windowHeight: height,
	}
}

// Init configures the window
func (e *EbitenRenderer) Init() {
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(i18n.T("APP_TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

// Clear drops the cached map image so the next frame redraws it
func (e *EbitenRenderer) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.mapImage != nil {
		e.mapImage.Deallocate()
		e.mapImage = nil
	}
}

// RenderFrame sets the session drawn by subsequent frames.
// Drawing itself happens in Draw, driven by Ebiten's loop.
func (e *EbitenRenderer) RenderFrame(s *state.Session) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.session = s
}

// ShowMessage adds a message to the on-screen message log
func (e *EbitenRenderer) ShowMessage(msg string) {
	e.mu.RLock()
	s := e.session
	e.mu.RUnlock()

	if s == nil {
		log.Println(msg)
		return
	}
	s.AddMessage(msg)
}

// GetViewportSize returns the map area in pixels, which is also the largest
// grid that can be shown without dropping cells.
func (e *EbitenRenderer) GetViewportSize() (rows, cols int) {
	rows = e.windowHeight - hudHeight - mapMargin*2
	cols = e.windowWidth - mapMargin*2
	return max(rows, 1), max(cols, 1)
}

// Run opens the window and blocks until it is closed or the user quits
func (e *EbitenRenderer) Run(s *state.Session, export renderer.ExportFunc) error {
	e.RenderFrame(s)
	e.export = export
	e.Init()

	log.Printf("Opening %dx%d window", e.windowWidth, e.windowHeight)

	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
