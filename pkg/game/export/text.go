package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"heightmap/pkg/engine/heightfield"
)

// FormatText is a plain-text dump for debugging
const FormatText = "txt"

// shades maps heights to symbols, lowest first
const shades = " .:-=+*#%@"

// shadeSymbol returns the symbol for a normalized height
func shadeSymbol(v float64) byte {
	i := int(v * float64(len(shades)))
	if i < 0 {
		i = 0
	}
	if i >= len(shades) {
		i = len(shades) - 1
	}
	return shades[i]
}

// WriteText writes a human-readable dump of grid: metadata, a legend, a
// shaded map and every cell value.
func WriteText(w io.Writer, grid *heightfield.Grid) error {
	if grid == nil {
		return ErrNoGrid
	}

	bw := bufio.NewWriter(w)
	side := grid.Side()
	lo, hi := grid.MinMax()

	// --- Metadata ---
	fmt.Fprintln(bw, "=== HEIGHT GRID DUMP ===")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Metadata ---")
	fmt.Fprintf(bw, "side: %d\n", side)
	fmt.Fprintf(bw, "cells: %d\n", grid.Len())
	fmt.Fprintf(bw, "min: %.6f\n", lo)
	fmt.Fprintf(bw, "max: %.6f\n", hi)
	fmt.Fprintln(bw, "coordinate_system: row,col (0-based, row=vertical, col=horizontal)")
	fmt.Fprintln(bw, "")

	// --- Legend ---
	fmt.Fprintln(bw, "--- Legend (lowest to highest) ---")
	fmt.Fprintf(bw, "%q\n", shades)
	fmt.Fprintln(bw, "")

	// --- Map ---
	fmt.Fprintln(bw, "--- Map ---")
	line := make([]byte, side)
	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			line[col] = shadeSymbol(grid.Value(row, col))
		}
		bw.Write(line)
		bw.WriteByte('\n')
	}
	fmt.Fprintln(bw, "")

	// --- Values ---
	fmt.Fprintln(bw, "--- Values ---")
	vals := make([]string, side)
	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			vals[col] = fmt.Sprintf("%.4f", grid.Value(row, col))
		}
		fmt.Fprintln(bw, strings.Join(vals, " "))
	}

	return bw.Flush()
}
