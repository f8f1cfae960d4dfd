package generator

import (
	"errors"
	"strings"
	"testing"

	"heightmap/pkg/engine/random"
)

func TestNames_Sorted(t *testing.T) {
	names := Names()
	if len(names) != 2 || names[0] != DiamondSquareName || names[1] != PerlinName {
		t.Errorf("Names() = %v, want [%s %s]", names, DiamondSquareName, PerlinName)
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"diamond-square", "Diamond Square", "PERLIN"} {
		if _, err := Lookup(name); err != nil {
			t.Errorf("Lookup(%q) error: %v", name, err)
		}
	}
}

func TestLookup_Suggests(t *testing.T) {
	_, err := Lookup("perlni")
	if !errors.Is(err, ErrUnknown) {
		t.Fatalf("Lookup(perlni) error = %v, want ErrUnknown", err)
	}
	if !strings.Contains(err.Error(), `did you mean "perlin"`) {
		t.Errorf("error %q does not suggest perlin", err)
	}

	_, err = Lookup("voronoi")
	if !errors.Is(err, ErrUnknown) || !strings.Contains(err.Error(), "available") {
		t.Errorf("Lookup(voronoi) error = %v, want list of available generators", err)
	}
}

func TestNew_BuildsNamedGenerator(t *testing.T) {
	gen, err := New(DefaultGenerator, random.NewSeeded(1))
	if err != nil {
		t.Fatalf("New(default) error: %v", err)
	}
	if gen.Name() != "Diamond-Square" {
		t.Errorf("Name() = %q, want Diamond-Square", gen.Name())
	}
}

func TestPerlin_ShapeAndRange(t *testing.T) {
	gen := NewPerlin(random.NewSeeded(5))
	for size := 1; size <= 6; size++ {
		grid, err := gen.Generate(size, 0.5)
		if err != nil {
			t.Fatalf("Generate(%d) error: %v", size, err)
		}
		if want := (1 << size) + 1; grid.Side() != want {
			t.Errorf("Generate(%d) side = %d, want %d", size, grid.Side(), want)
		}
		assertUnitRange(t, grid)
	}
}

func TestPerlin_DeterministicForSource(t *testing.T) {
	a, _ := NewPerlin(random.NewSequence(0.25)).Generate(5, 0.6)
	b, _ := NewPerlin(random.NewSequence(0.25)).Generate(5, 0.6)
	if !a.Equal(b) {
		t.Error("Perlin grids differ for identical sources")
	}
}

func TestPerlin_InvalidSize(t *testing.T) {
	if _, err := NewPerlin(random.NewSeeded(1)).Generate(0, 0.5); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Generate(0) error = %v, want ErrInvalidSize", err)
	}
}

func TestAlphaFor(t *testing.T) {
	if got := alphaFor(0.5); got != 2 {
		t.Errorf("alphaFor(0.5) = %v, want 2", got)
	}
	if got := alphaFor(0); got != 1/minPersistence {
		t.Errorf("alphaFor(0) = %v, want %v", got, 1/minPersistence)
	}
}

func TestNext_Wraps(t *testing.T) {
	if got := Next(DiamondSquareName); got != PerlinName {
		t.Errorf("Next(%q) = %q, want %q", DiamondSquareName, got, PerlinName)
	}
	if got := Next(PerlinName); got != DiamondSquareName {
		t.Errorf("Next(%q) = %q, want %q", PerlinName, got, DiamondSquareName)
	}
	if got := Next("bogus"); got != DiamondSquareName {
		t.Errorf("Next(bogus) = %q, want %q", got, DiamondSquareName)
	}
}

func TestPerlin_SmallSizesNotFlat(t *testing.T) {
	for _, size := range []int{1, 2} {
		grid, err := NewPerlin(random.NewSeeded(7)).Generate(size, 0.75)
		if err != nil {
			t.Fatalf("Generate(%d) error: %v", size, err)
		}
		if lo, hi := grid.MinMax(); lo != 0 || hi != 1 {
			t.Errorf("size %d: MinMax() = %v, %v, want 0, 1", size, lo, hi)
		}
	}
}
