// Package export writes rendered height grids to image files.
package export

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	svg "github.com/ajstarks/svgo"

	"heightmap/pkg/engine/heightfield"
	"heightmap/pkg/game/i18n"
	"heightmap/pkg/game/palette"
	"heightmap/pkg/game/renderer"
)

// Supported formats
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

var (
	ErrNoGrid        = errors.New("no grid to export")
	ErrInvalidScale  = errors.New("invalid scale")
	ErrUnknownFormat = errors.New("unknown export format")
)

// WritePNG encodes grid as a PNG with each cell scale×scale pixels
func WritePNG(w io.Writer, grid *heightfield.Grid, p palette.Palette, scale int) error {
	if grid == nil {
		return ErrNoGrid
	}
	if scale < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidScale, scale)
	}

	dim := grid.Side() * scale
	img := renderer.Rasterize(grid, p, dim, dim)
	return png.Encode(w, img)
}

// WriteSVG writes grid as an SVG document with each cell cellPx×cellPx.
// Runs of equal colour within a row share one rectangle.
func WriteSVG(w io.Writer, grid *heightfield.Grid, p palette.Palette, cellPx int) error {
	if grid == nil {
		return ErrNoGrid
	}
	if cellPx < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidScale, cellPx)
	}

	side := grid.Side()
	canvas := svg.New(w)
	canvas.Start(side*cellPx, side*cellPx)
	canvas.Title(i18n.T("APP_TITLE"))
	canvas.Gstyle("shape-rendering:crispEdges")

	for row := 0; row < side; row++ {
		start := 0
		for col := 1; col <= side; col++ {
			c := p.Map(grid.Value(row, start))
			if col < side && p.Map(grid.Value(row, col)) == c {
				continue
			}
			canvas.Rect(start*cellPx, row*cellPx, (col-start)*cellPx, cellPx,
				canvas.RGB(int(c.R), int(c.G), int(c.B)))
			start = col
		}
	}

	canvas.Gend()
	canvas.End()
	return nil
}

// FormatFor picks the export format from a file extension
func FormatFor(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case FormatPNG, FormatSVG, FormatText:
		return ext, nil
	default:
		return "", fmt.Errorf("%w %q (want .png, .svg or .txt)", ErrUnknownFormat, filepath.Ext(path))
	}
}

// SaveFile writes grid to path in the format its extension names.
// scale is pixels per cell for PNG and user units per cell for SVG; text ignores it.
func SaveFile(path string, grid *heightfield.Grid, p palette.Palette, scale int) (err error) {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	if grid == nil {
		return ErrNoGrid
	}
	if format != FormatText && scale < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidScale, scale)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	switch format {
	case FormatSVG:
		return WriteSVG(f, grid, p, scale)
	case FormatText:
		return WriteText(f, grid)
	default:
		return WritePNG(f, grid, p, scale)
	}
}
