package generator

import (
	"math"

	"github.com/aquilax/go-perlin"

	"heightmap/pkg/engine/heightfield"
	"heightmap/pkg/engine/random"
)

// Perlin sampling parameters
const (
	perlinBeta      = 2.0 // frequency multiplier between octaves
	perlinFrequency = 4.0 // lattice cells across the whole grid
	// perlinOffset keeps samples off the integer lattice at every octave,
	// where gradient noise is always zero.
	perlinOffset   = 0.37
	minPersistence = 0.01
)

// PerlinGenerator fills the grid with summed-octave Perlin noise.
// Roughness acts as persistence: the weight of each octave relative to the previous one.
type PerlinGenerator struct {
	src random.Source
}

// NewPerlin creates a Perlin generator. The noise seed is drawn from src.
func NewPerlin(src random.Source) *PerlinGenerator {
	return &PerlinGenerator{src: src}
}

// Name returns the name of this generator
func (g *PerlinGenerator) Name() string {
	return "Perlin Noise"
}

// Generate creates a normalized grid of side 2^size + 1
func (g *PerlinGenerator) Generate(size int, roughness float64) (*heightfield.Grid, error) {
	if err := Validate(size, roughness); err != nil {
		return nil, err
	}

	n := heightfield.SideForSize(size)
	seed := int64(g.src.Float64() * math.MaxInt32)
	p := perlin.NewPerlin(alphaFor(roughness), perlinBeta, octavesFor(size), seed)

	grid := heightfield.New(n)
	scale := perlinFrequency / float64(n-1)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			x := float64(col)*scale + perlinOffset
			y := float64(row)*scale + perlinOffset
			grid.Set(row, col, p.Noise2D(x, y))
		}
	}
	return finish(grid)
}

// alphaFor converts roughness into go-perlin's alpha, the divisor applied per octave.
func alphaFor(roughness float64) float64 {
	persistence := math.Abs(roughness)
	if persistence < minPersistence {
		persistence = minPersistence
	}
	return 1 / persistence
}

// octavesFor uses one octave per subdivision level, never fewer than three.
func octavesFor(size int) int32 {
	if size < 3 {
		return 3
	}
	return int32(size)
}
