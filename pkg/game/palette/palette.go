// Package palette maps normalized heights to display colours.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"heightmap/pkg/engine/fuzzy"
)

// Mapping converts a normalized height in [0,1] to a colour
type Mapping func(v float64) color.RGBA

// Palette is a named colour mapping
type Palette struct {
	Name  string // lookup name, e.g. "color"
	Label string // translation key for menus and the status bar
	Map   Mapping
}

// Palette names
const (
	BinaryName    = "binary"
	GrayscaleName = "grayscale"
	ColorName     = "color"
)

// Default is the palette used when none is configured
const Default = ColorName

var ErrUnknown = errors.New("unknown palette")

// Terrain bands, lowest first
var (
	colorWater = color.RGBA{44, 44, 226, 255}
	colorSand  = color.RGBA{255, 255, 0, 255}
	colorGrass = color.RGBA{0, 128, 0, 255}
	colorRock  = color.RGBA{128, 128, 128, 255}
	colorSnow  = color.RGBA{255, 255, 255, 255}
	colorBlack = color.RGBA{0, 0, 0, 255}
	colorWhite = color.RGBA{255, 255, 255, 255}
)

// ordered is the cycling order used by control surfaces
var ordered = []Palette{
	{Name: BinaryName, Label: "PALETTE_BINARY", Map: Binary},
	{Name: GrayscaleName, Label: "PALETTE_GRAYSCALE", Map: Grayscale},
	{Name: ColorName, Label: "PALETTE_COLOR", Map: Terrain},
}

// Terrain colours heights as water, sand, grass, rock and snow
func Terrain(v float64) color.RGBA {
	switch {
	case v < 0.4:
		return colorWater
	case v < 0.5:
		return colorSand
	case v < 0.8:
		return colorGrass
	case v < 0.9:
		return colorRock
	default:
		return colorSnow
	}
}

// Binary maps the upper half to black and the lower half to white
func Binary(v float64) color.RGBA {
	if v >= 0.5 {
		return colorBlack
	}
	return colorWhite
}

// Grayscale maps 0 to black and 1 to white
func Grayscale(v float64) color.RGBA {
	c := math.Floor(256 * v)
	if c > 255 {
		c = 255
	}
	if c < 0 || math.IsNaN(c) {
		c = 0
	}
	g := uint8(c)
	return color.RGBA{g, g, g, 255}
}

// All returns the registered palettes in cycling order
func All() []Palette {
	out := make([]Palette, len(ordered))
	copy(out, ordered)
	return out
}

// Names returns the registered palette names in cycling order
func Names() []string {
	names := make([]string, len(ordered))
	for i, p := range ordered {
		names[i] = p.Name
	}
	return names
}

// Lookup returns the palette registered under name
func Lookup(name string) (Palette, error) {
	key := fuzzy.Normalize(name)
	if alias, ok := canonical[key]; ok {
		key = alias
	}
	for _, p := range ordered {
		if p.Name == key {
			return p, nil
		}
	}
	if s, ok := fuzzy.Suggest(name, Names()); ok {
		return Palette{}, fmt.Errorf("%w %q, did you mean %q?", ErrUnknown, name, s)
	}
	return Palette{}, fmt.Errorf("%w %q (available: %s)", ErrUnknown, name, strings.Join(Names(), ", "))
}

// canonical holds accepted spellings that are not registered names
var canonical = map[string]string{
	"colour":    ColorName,
	"gray":      GrayscaleName,
	"greyscale": GrayscaleName,
}

// MustLookup is Lookup for names known at compile time
func MustLookup(name string) Palette {
	p, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return p
}

// Next returns the palette after name in cycling order, wrapping around.
// Unknown names yield the first palette.
func Next(name string) Palette {
	for i, p := range ordered {
		if p.Name == name {
			return ordered[(i+1)%len(ordered)]
		}
	}
	return ordered[0]
}
