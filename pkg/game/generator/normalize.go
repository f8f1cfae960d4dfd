package generator

import (
	"heightmap/pkg/engine/heightfield"
)

// DegenerateValue is written to every cell when a grid has no height range.
const DegenerateValue = 0.5

// Normalize returns a new grid rescaled to [0,1] by the global min and max.
// A flat grid maps to DegenerateValue everywhere instead of dividing by zero.
func Normalize(g *heightfield.Grid) *heightfield.Grid {
	lo, hi := g.MinMax()
	span := hi - lo
	if span == 0 {
		out := heightfield.New(g.Side())
		out.Fill(DegenerateValue)
		return out
	}
	return g.Map(func(v float64) float64 {
		return (v - lo) / span
	})
}
