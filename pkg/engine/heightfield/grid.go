// Package heightfield holds the square height grid produced by the generators.
package heightfield

import (
	"fmt"
	"math"
)

// Grid is a square height-field stored row-major in a single buffer.
// A zero Grid is empty; use New to allocate one.
type Grid struct {
	cells []float64
	side  int
}

// New creates a side×side grid of zeros
func New(side int) *Grid {
	if side <= 0 {
		panic("heightfield: grid side must be positive")
	}
	return &Grid{
		cells: make([]float64, side*side),
		side:  side,
	}
}

// SideForSize returns the grid side length 2^size + 1 for a subdivision depth.
func SideForSize(size int) int {
	return (1 << size) + 1
}

// IsValidSide reports whether side has the form 2^k + 1 with k >= 1.
func IsValidSide(side int) bool {
	n := side - 1
	return n >= 2 && n&(n-1) == 0
}

// Side returns the number of rows (and columns) in the grid
func (g *Grid) Side() int {
	return g.side
}

// Len returns the number of cells in the grid
func (g *Grid) Len() int {
	return len(g.cells)
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.side && col >= 0 && col < g.side
}

// At returns the value at the given position. ok is false when out of bounds.
func (g *Grid) At(row, col int) (v float64, ok bool) {
	if !g.IsValidPosition(row, col) {
		return 0, false
	}
	return g.cells[row*g.side+col], true
}

// Value returns the value at the given position, or 0 if out of bounds
func (g *Grid) Value(row, col int) float64 {
	v, _ := g.At(row, col)
	return v
}

// Set writes v at the given position. Returns false if out of bounds.
func (g *Grid) Set(row, col int, v float64) bool {
	if !g.IsValidPosition(row, col) {
		return false
	}
	g.cells[row*g.side+col] = v
	return true
}

// Row returns a copy of the given row, or nil if out of bounds
func (g *Grid) Row(row int) []float64 {
	if row < 0 || row >= g.side {
		return nil
	}
	out := make([]float64, g.side)
	copy(out, g.cells[row*g.side:(row+1)*g.side])
	return out
}

// Rows returns the grid as a fresh slice of rows
func (g *Grid) Rows() [][]float64 {
	out := make([][]float64, g.side)
	for r := range out {
		out[r] = g.Row(r)
	}
	return out
}

// ForEachCell calls fn for every cell in row-major order
func (g *Grid) ForEachCell(fn func(row, col int, v float64)) {
	for i, v := range g.cells {
		fn(i/g.side, i%g.side, v)
	}
}

// Map returns a new grid with fn applied to every cell
func (g *Grid) Map(fn func(v float64) float64) *Grid {
	out := &Grid{cells: make([]float64, len(g.cells)), side: g.side}
	for i, v := range g.cells {
		out.cells[i] = fn(v)
	}
	return out
}

// Fill sets every cell to v
func (g *Grid) Fill(v float64) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	out := &Grid{cells: make([]float64, len(g.cells)), side: g.side}
	copy(out.cells, g.cells)
	return out
}

// MinMax returns the global minimum and maximum. Each row is reduced
// first and the row extremes are then reduced across rows.
func (g *Grid) MinMax() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for r := 0; r < g.side; r++ {
		rowLo, rowHi := math.Inf(1), math.Inf(-1)
		for _, v := range g.cells[r*g.side : (r+1)*g.side] {
			rowLo = math.Min(rowLo, v)
			rowHi = math.Max(rowHi, v)
		}
		lo = math.Min(lo, rowLo)
		hi = math.Max(hi, rowHi)
	}
	return lo, hi
}

// Equal reports whether both grids have the same side and identical values
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.side != other.side {
		return false
	}
	for i, v := range g.cells {
		if math.Float64bits(v) != math.Float64bits(other.cells[i]) {
			return false
		}
	}
	return true
}

// Validate checks the grid shape and returns an error if it is unusable
func (g *Grid) Validate() error {
	if g == nil || g.side == 0 {
		return fmt.Errorf("heightfield: empty grid")
	}
	if len(g.cells) != g.side*g.side {
		return fmt.Errorf("heightfield: buffer holds %d cells, want %d", len(g.cells), g.side*g.side)
	}
	if !IsValidSide(g.side) {
		return fmt.Errorf("heightfield: side %d is not 2^k+1", g.side)
	}
	return nil
}

// FromRows builds a grid from a square slice of rows
func FromRows(rows [][]float64) (*Grid, error) {
	side := len(rows)
	if side == 0 {
		return nil, fmt.Errorf("heightfield: no rows")
	}
	g := New(side)
	for r, row := range rows {
		if len(row) != side {
			return nil, fmt.Errorf("heightfield: row %d has %d values, want %d", r, len(row), side)
		}
		copy(g.cells[r*side:], row)
	}
	return g, nil
}
