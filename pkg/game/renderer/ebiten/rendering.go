package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"heightmap/pkg/game/renderer"
	"heightmap/pkg/game/state"
)

// Draw renders the map and the HUD (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	e.mu.RLock()
	s := e.session
	e.mu.RUnlock()
	if s == nil {
		return
	}

	e.drawMap(screen, s)
	e.drawHUD(screen, s)
}

// drawMap draws the grid one texel per cell, scaled up to fill the map area
func (e *EbitenRenderer) drawMap(screen *ebiten.Image, s *state.Session) {
	img := e.mapImageFor(s)
	if img == nil {
		return
	}

	rows, cols := e.GetViewportSize()
	side := img.Bounds().Dx()
	dim := renderer.Fit(side, cols, rows)
	scale := float64(dim) / float64(side)

	x := float64(e.windowWidth-dim) / 2
	y := float64(mapMargin)

	vector.DrawFilledRect(screen, float32(x-1), float32(y-1), float32(dim+2), float32(dim+2), colorMapBorder, false)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(img, op)
}

// mapImageFor returns the cached map texture, rebuilding it when the
// session has a new grid or the palette changed
func (e *EbitenRenderer) mapImageFor(s *state.Session) *ebiten.Image {
	grid := s.Grid()
	if grid == nil {
		return nil
	}
	pal := s.Settings().Palette
	gen := s.Generation()

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.mapImage != nil && e.mapGeneration == gen && e.mapPalette == pal.Name {
		return e.mapImage
	}
	if e.mapImage != nil {
		e.mapImage.Deallocate()
	}

	side := grid.Side()
	raster := renderer.Rasterize(grid, pal, side, side)
	e.mapImage = ebiten.NewImage(side, side)
	e.mapImage.WritePixels(raster.Pix)
	e.mapGeneration = gen
	e.mapPalette = pal.Name
	return e.mapImage
}

// drawHUD draws the status line, key help and message log below the map
func (e *EbitenRenderer) drawHUD(screen *ebiten.Image, s *state.Session) {
	top := e.windowHeight - hudHeight
	vector.DrawFilledRect(screen, 0, float32(top), float32(e.windowWidth), float32(hudHeight), colorPanel, false)

	x := hudPadding
	y := top + hudPadding

	ebitenutil.DebugPrintAt(screen, renderer.StatusLine(s.Settings()), x, y)
	y += debugLineHeight
	for _, line := range renderer.HelpLines(renderer.HelpWidth) {
		ebitenutil.DebugPrintAt(screen, renderer.PlainText(line), x, y)
		y += debugLineHeight
	}
	y += debugLineHeight

	for _, msg := range s.Messages() {
		ebitenutil.DebugPrintAt(screen, msg, x, y)
		y += debugLineHeight
	}
}
