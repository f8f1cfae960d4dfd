package generator

import (
	"math/bits"

	"heightmap/pkg/engine/heightfield"
	"heightmap/pkg/engine/random"
)

// DiamondSquareGenerator generates height-fields by midpoint displacement,
// alternating diamond and square passes at halving step sizes.
type DiamondSquareGenerator struct {
	src random.Source
}

// NewDiamondSquare creates a diamond-square generator drawing noise from src
func NewDiamondSquare(src random.Source) *DiamondSquareGenerator {
	return &DiamondSquareGenerator{src: src}
}

// Name returns the name of this generator
func (g *DiamondSquareGenerator) Name() string {
	return "Diamond-Square"
}

// Generate creates a normalized grid of side 2^size + 1
func (g *DiamondSquareGenerator) Generate(size int, roughness float64) (*heightfield.Grid, error) {
	if err := Validate(size, roughness); err != nil {
		return nil, err
	}
	return finish(g.displace(size, roughness))
}

// displace builds the raw, unnormalized grid.
func (g *DiamondSquareGenerator) displace(size int, roughness float64) *heightfield.Grid {
	n := heightfield.SideForSize(size)
	grid := heightfield.New(n)

	// Corners get full-amplitude noise and are never revisited
	grid.Set(0, 0, random.Noise(g.src, roughness, 0))
	grid.Set(n-1, 0, random.Noise(g.src, roughness, 0))
	grid.Set(0, n-1, random.Noise(g.src, roughness, 0))
	grid.Set(n-1, n-1, random.Noise(g.src, roughness, 0))

	for s := n; s > 2; s = (s-1)/2 + 1 {
		g.diamond(grid, s, roughness)
		g.square(grid, s, roughness)
	}
	return grid
}

// depth returns log2((n-1)/step) + 1, the iteration used to scale noise for
// sub-squares of the given step.
func depth(n, step int) int {
	return bits.TrailingZeros(uint((n-1)/step)) + 1
}

// diamond fills the centre of every sub-square of side s from its four corners.
func (g *DiamondSquareGenerator) diamond(grid *heightfield.Grid, s int, roughness float64) {
	n := grid.Side()
	step := s - 1
	hs := step / 2
	power := depth(n, step)

	for i := hs; i < n; i += step {
		for j := hs; j < n; j += step {
			tl := grid.Value(i-hs, j-hs)
			tr := grid.Value(i+hs, j-hs)
			bl := grid.Value(i-hs, j+hs)
			br := grid.Value(i+hs, j+hs)

			avg := (tl + tr + bl + br) / 4
			grid.Set(i, j, avg+random.Noise(g.src, roughness, power))
		}
	}
}

// square fills every edge midpoint from its in-bounds orthogonal neighbours.
// Rows alternate their starting column so only the diamond-offset lattice is visited.
func (g *DiamondSquareGenerator) square(grid *heightfield.Grid, s int, roughness float64) {
	n := grid.Side()
	step := s - 1
	hs := step / 2
	power := depth(n, step)

	for i := 0; i < n; i += hs {
		jStart := hs
		if (i/hs)%2 == 1 {
			jStart = 0
		}
		for j := jStart; j < n; j += step {
			sum, count := 0.0, 0
			for _, p := range [4][2]int{{i + hs, j}, {i - hs, j}, {i, j + hs}, {i, j - hs}} {
				if v, ok := grid.At(p[0], p[1]); ok {
					sum += v
					count++
				}
			}
			grid.Set(i, j, sum/float64(count)+random.Noise(g.src, roughness, power))
		}
	}
}
