package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"heightmap/pkg/game/generator"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v, want nil", err)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load(missing) error: %v", err)
	}
	if cfg.Size != 6 || cfg.Roughness != 0.75 || cfg.Palette != "color" {
		t.Errorf("Load(missing) = %+v, want defaults", cfg)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heightmap.json")
	body := `{"size": 8, "roughness": 0.4, "palette": "grayscale", "server": {"listen": ":9000", "maxSize": 9}}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Size != 8 || cfg.Roughness != 0.4 || cfg.Palette != "grayscale" {
		t.Errorf("Load = %+v, want size 8, roughness 0.4, grayscale", cfg)
	}
	if cfg.Server.Listen != ":9000" || cfg.Server.MaxSize != 9 {
		t.Errorf("Server = %+v, want :9000 / 9", cfg.Server)
	}
	// Untouched sections keep their defaults
	if cfg.Export.Scale != 4 || cfg.Window.Width != 800 {
		t.Errorf("defaults lost: export %+v window %+v", cfg.Export, cfg.Window)
	}
}

func TestLoad_RejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"sise": 4}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load(unknown field) = nil error, want error")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"mode", func(c *Config) { c.Mode = "vr" }, "invalid mode"},
		{"palette", func(c *Config) { c.Palette = "colr" }, "did you mean"},
		{"generator", func(c *Config) { c.Generator = "voronoi" }, "unknown generator"},
		{"window", func(c *Config) { c.Window.Width = 0 }, "window size"},
		{"server", func(c *Config) { c.Server.MaxSize = 40 }, "server max size"},
		{"scale", func(c *Config) { c.Export.Scale = 0 }, "export scale"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() = %v, want error containing %q", err, tc.want)
			}
		})
	}
}

func TestValidate_Size(t *testing.T) {
	cfg := Default()
	cfg.Size = 0
	if err := cfg.Validate(); !errors.Is(err, generator.ErrInvalidSize) {
		t.Errorf("Validate() = %v, want ErrInvalidSize", err)
	}
}

func TestSettings(t *testing.T) {
	cfg := Default()
	cfg.Palette = "Grayscale"
	s, err := cfg.Settings()
	if err != nil {
		t.Fatalf("Settings() error: %v", err)
	}
	if s.Size != cfg.Size || s.Palette.Name != "grayscale" || s.Generator != generator.DefaultGenerator {
		t.Errorf("Settings() = %+v", s)
	}
}

func TestCheckTerminal(t *testing.T) {
	cfg := Default()
	if err := cfg.CheckTerminal(false); !errors.Is(err, ErrNoTerminal) {
		t.Errorf("tui without terminal: error = %v, want ErrNoTerminal", err)
	}
	if err := cfg.CheckTerminal(true); err != nil {
		t.Errorf("tui with terminal: error = %v, want nil", err)
	}
	for _, m := range []Mode{ModeWindow, ModeServe, ModeExport} {
		cfg.Mode = m
		if err := cfg.CheckTerminal(false); err != nil {
			t.Errorf("%s without terminal: error = %v, want nil", m, err)
		}
	}
}
