package renderer

import (
	"image/color"
	"strings"
	"testing"

	"heightmap/pkg/engine/heightfield"
	"heightmap/pkg/game/palette"
	"heightmap/pkg/game/settings"
)

func TestRasterize_NearestCell(t *testing.T) {
	grid, err := heightfield.FromRows([][]float64{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	})
	if err != nil {
		t.Fatal(err)
	}
	bin := palette.MustLookup(palette.BinaryName)

	img := Rasterize(grid, bin, 6, 6)
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 6 {
		t.Fatalf("bounds = %v, want 6x6", b)
	}

	black := color.RGBA{0, 0, 0, 255}
	white := color.RGBA{255, 255, 255, 255}
	checks := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, white},
		{1, 1, white},
		{2, 0, black},
		{3, 1, black},
		{2, 2, white},
		{5, 5, white},
		{5, 3, black},
	}
	for _, c := range checks {
		if got := img.RGBAAt(c.x, c.y); got != c.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestRasterize_Downsample(t *testing.T) {
	grid := heightfield.New(9)
	grid.Set(8, 8, 1)
	img := Rasterize(grid, palette.MustLookup(palette.GrayscaleName), 2, 2)

	if got := img.RGBAAt(1, 1); got.R != 0 {
		t.Errorf("pixel (1,1) = %v, want black sample from cell (4,4)", got)
	}
	img = Rasterize(grid, palette.MustLookup(palette.GrayscaleName), 9, 9)
	if got := img.RGBAAt(8, 8); got.R != 255 {
		t.Errorf("pixel (8,8) = %v, want white", got)
	}
}

func TestRasterize_NilGrid(t *testing.T) {
	img := Rasterize(nil, palette.MustLookup(palette.Default), 4, 3)
	if got := img.RGBAAt(0, 0); got.A != 0 {
		t.Errorf("nil grid pixel = %v, want transparent", got)
	}
}

func TestFit(t *testing.T) {
	cases := []struct {
		side, w, h, want int
	}{
		{9, 80, 40, 36},
		{9, 9, 100, 9},
		{257, 80, 40, 40},
		{33, 0, 10, 1},
	}
	for _, c := range cases {
		if got := Fit(c.side, c.w, c.h); got != c.want {
			t.Errorf("Fit(%d, %d, %d) = %d, want %d", c.side, c.w, c.h, got, c.want)
		}
	}
}

func TestStatusLine(t *testing.T) {
	line := StatusLine(settings.Settings{
		Size:      2,
		Roughness: 0.75,
		Palette:   palette.MustLookup(palette.GrayscaleName),
		Generator: "diamond-square",
	})
	for _, want := range []string{"Size 5x5", "Roughness 0.75", "Palette Grayscale", "Generator diamond-square"} {
		if !strings.Contains(line, want) {
			t.Errorf("StatusLine() = %q, missing %q", line, want)
		}
	}
}
