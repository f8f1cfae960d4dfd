// Package config loads startup configuration from an optional JSON file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"heightmap/pkg/engine/fuzzy"
	"heightmap/pkg/game/generator"
	"heightmap/pkg/game/palette"
	"heightmap/pkg/game/settings"
)

// Mode selects how the program presents the generated grid
type Mode string

const (
	ModeTUI    Mode = "tui"
	ModeWindow Mode = "window"
	ModeServe  Mode = "serve"
	ModeExport Mode = "export"
)

// Config is the full startup configuration
type Config struct {
	Size      int          `json:"size"`
	Roughness float64      `json:"roughness"`
	Palette   string       `json:"palette"`
	Generator string       `json:"generator"`
	Seed      int64        `json:"seed"`
	Mode      Mode         `json:"mode"`
	Window    WindowConfig `json:"window"`
	Server    ServerConfig `json:"server"`
	Export    ExportConfig `json:"export"`
}

// WindowConfig configures the graphical window
type WindowConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ServerConfig configures the WebSocket control surface
type ServerConfig struct {
	Listen  string `json:"listen"`
	MaxSize int    `json:"maxSize"`
}

// ExportConfig configures file export
type ExportConfig struct {
	Path  string `json:"path"`
	Scale int    `json:"scale"`
}

// Default returns the built-in configuration: a 65x65 terrain-coloured grid.
func Default() Config {
	return Config{
		Size:      6,
		Roughness: 0.75,
		Palette:   palette.Default,
		Generator: generator.DefaultGenerator,
		Mode:      ModeTUI,
		Window: WindowConfig{
			Width:  800,
			Height: 800,
		},
		Server: ServerConfig{
			Listen:  "localhost:8080",
			MaxSize: 10,
		},
		Export: ExportConfig{
			Path:  "heightmap.png",
			Scale: 4,
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values no component can use
func (c Config) Validate() error {
	switch c.Mode {
	case ModeTUI, ModeWindow, ModeServe, ModeExport:
	default:
		return fmt.Errorf("invalid mode: %s", c.Mode)
	}

	if err := generator.Validate(c.Size, c.Roughness); err != nil {
		return err
	}
	if _, err := palette.Lookup(c.Palette); err != nil {
		return err
	}
	if _, err := generator.Lookup(c.Generator); err != nil {
		return err
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Server.MaxSize < 1 || c.Server.MaxSize > generator.MaxSize {
		return fmt.Errorf("server max size must be between 1 and %d, got %d", generator.MaxSize, c.Server.MaxSize)
	}
	if c.Export.Scale < 1 {
		return fmt.Errorf("export scale must be at least 1, got %d", c.Export.Scale)
	}
	return nil
}

// ErrNoTerminal is returned when TUI mode is requested without a terminal
var ErrNoTerminal = errors.New("tui mode needs a terminal on stdout; use -mode window, serve or export")

// CheckTerminal rejects TUI mode when stdout is not a terminal
func (c Config) CheckTerminal(isTerminal bool) error {
	if c.Mode == ModeTUI && !isTerminal {
		return ErrNoTerminal
	}
	return nil
}

// Settings converts the configuration into the initial settings snapshot
func (c Config) Settings() (settings.Settings, error) {
	p, err := palette.Lookup(c.Palette)
	if err != nil {
		return settings.Settings{}, err
	}
	if _, err := generator.Lookup(c.Generator); err != nil {
		return settings.Settings{}, err
	}
	return settings.Settings{
		Size:      c.Size,
		Roughness: c.Roughness,
		Palette:   p,
		Generator: fuzzy.Normalize(c.Generator),
	}, nil
}
