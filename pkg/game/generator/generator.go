package generator

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"heightmap/pkg/engine/fuzzy"
	"heightmap/pkg/engine/heightfield"
	"heightmap/pkg/engine/random"
)

// GridGenerator is an interface for height-field generation algorithms
type GridGenerator interface {
	// Generate returns a normalized grid of side 2^size + 1
	Generate(size int, roughness float64) (*heightfield.Grid, error)
	Name() string
}

// Factory builds a generator drawing from src. Generators keep a reference to
// their source, so each goroutine needs its own generator.
type Factory func(src random.Source) GridGenerator

// MaxSize bounds the subdivision depth; 2^12+1 = 4097 cells per side.
const MaxSize = 12

var (
	ErrInvalidSize      = errors.New("invalid size")
	ErrInvalidRoughness = errors.New("invalid roughness")
	ErrNonFinite        = errors.New("height range is not finite")
	ErrUnknown          = errors.New("unknown generator")
)

// Generator names
const (
	DiamondSquareName = "diamond-square"
	PerlinName        = "perlin"
)

// DefaultGenerator is the name of the default generator
const DefaultGenerator = DiamondSquareName

var factories = map[string]Factory{
	DiamondSquareName: func(src random.Source) GridGenerator { return NewDiamondSquare(src) },
	PerlinName:        func(src random.Source) GridGenerator { return NewPerlin(src) },
}

// Names returns the registered generator names in sorted order
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the factory registered under name. Unknown names produce an
// ErrUnknown error that suggests the closest registered name.
func Lookup(name string) (Factory, error) {
	if f, ok := factories[fuzzy.Normalize(name)]; ok {
		return f, nil
	}
	if s, ok := fuzzy.Suggest(name, Names()); ok {
		return nil, fmt.Errorf("%w %q, did you mean %q?", ErrUnknown, name, s)
	}
	return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknown, name, strings.Join(Names(), ", "))
}

// Next returns the registered name following name, wrapping around.
// Unknown names yield the first registered name.
func Next(name string) string {
	names := Names()
	key := fuzzy.Normalize(name)
	for i, n := range names {
		if n == key {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

// New builds the named generator over src
func New(name string, src random.Source) (GridGenerator, error) {
	f, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return f(src), nil
}

// Validate checks the generation inputs shared by every generator.
func Validate(size int, roughness float64) error {
	if size < 1 || size > MaxSize {
		return fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidSize, size, MaxSize)
	}
	if math.IsNaN(roughness) || math.IsInf(roughness, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidRoughness, roughness)
	}
	return nil
}

// finish normalizes a raw grid, rejecting ranges that overflowed.
func finish(raw *heightfield.Grid) (*heightfield.Grid, error) {
	lo, hi := raw.MinMax()
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || math.IsInf(hi-lo, 0) {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrNonFinite, lo, hi)
	}
	return Normalize(raw), nil
}
