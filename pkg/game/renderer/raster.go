package renderer

import (
	"image"

	"heightmap/pkg/engine/heightfield"
	"heightmap/pkg/game/i18n"
	"heightmap/pkg/game/palette"
	"heightmap/pkg/game/settings"
)

// Rasterize draws grid into a width×height image, one palette colour per
// cell, scaling with nearest-cell sampling. A nil grid yields a transparent image.
func Rasterize(grid *heightfield.Grid, p palette.Palette, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if grid == nil || width <= 0 || height <= 0 {
		return img
	}

	side := grid.Side()
	for y := 0; y < height; y++ {
		row := cellIndex(y, height, side)
		for x := 0; x < width; x++ {
			col := cellIndex(x, width, side)
			img.SetRGBA(x, y, p.Map(grid.Value(row, col)))
		}
	}
	return img
}

// cellIndex maps pixel i of extent onto one of side cells
func cellIndex(i, extent, side int) int {
	c := i * side / extent
	if c > side-1 {
		c = side - 1
	}
	return c
}

// Fit returns the edge length of the largest square that fits in maxW×maxH
// for a grid of the given side. Grids smaller than the space are scaled by a
// whole factor so every cell covers the same number of pixels.
func Fit(side, maxW, maxH int) int {
	dim := min(maxW, maxH)
	if dim < 1 {
		return 1
	}
	if side <= 0 {
		return dim
	}
	if side <= dim {
		return side * (dim / side)
	}
	return dim
}

// StatusLine describes the settings in one translated line
func StatusLine(s settings.Settings) string {
	side := s.Side()
	return i18n.Tf("STATUS_LINE",
		i18n.T("LABEL_SIZE"), side, side,
		i18n.T("LABEL_ROUGHNESS"), s.Roughness,
		i18n.T("LABEL_PALETTE"), i18n.T(s.Palette.Label),
		i18n.T("LABEL_GENERATOR"), s.Generator,
	)
}
