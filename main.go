package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"heightmap/pkg/engine/random"
	"heightmap/pkg/engine/terminal"
	"heightmap/pkg/game/config"
	"heightmap/pkg/game/export"
	"heightmap/pkg/game/generator"
	"heightmap/pkg/game/i18n"
	"heightmap/pkg/game/renderer"
	ebitenrenderer "heightmap/pkg/game/renderer/ebiten"
	"heightmap/pkg/game/renderer/tui"
	"heightmap/pkg/game/server"
	"heightmap/pkg/game/settings"
	"heightmap/pkg/game/state"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a JSON config file")
	size := flag.Int("size", 0, "subdivision depth; the grid is 2^size+1 cells wide")
	roughness := flag.Float64("roughness", 0, "noise decay per iteration, usually 0..1")
	paletteName := flag.String("palette", "", "colour palette: binary, grayscale or color")
	generatorName := flag.String("generator", "", "generator: diamond-square or perlin")
	seed := flag.Int64("seed", 0, "random seed; 0 picks one at startup")
	mode := flag.String("mode", "", "tui, window, serve or export")
	out := flag.String("out", "", "export path (.png, .svg or .txt)")
	listen := flag.String("listen", "", "address for serve mode")
	scale := flag.Int("scale", 0, "export pixels per cell")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	// Flags given on the command line override the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			cfg.Size = *size
		case "roughness":
			cfg.Roughness = *roughness
		case "palette":
			cfg.Palette = *paletteName
		case "generator":
			cfg.Generator = *generatorName
		case "seed":
			cfg.Seed = *seed
		case "mode":
			cfg.Mode = config.Mode(*mode)
		case "out":
			cfg.Export.Path = *out
		case "listen":
			cfg.Server.Listen = *listen
		case "scale":
			cfg.Export.Scale = *scale
		}
	})

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.CheckTerminal(terminal.IsTerminal()); err != nil {
		return err
	}
	initial, err := cfg.Settings()
	if err != nil {
		return err
	}

	i18n.Init()

	log.Printf("Starting in %s mode: size %d, roughness %.2f, palette %s, generator %s",
		cfg.Mode, cfg.Size, cfg.Roughness, cfg.Palette, cfg.Generator)

	switch cfg.Mode {
	case config.ModeExport:
		return runExport(cfg, initial)
	case config.ModeServe:
		return runServe(cfg, initial)
	default:
		return runInteractive(cfg, initial)
	}
}

func runExport(cfg config.Config, initial settings.Settings) error {
	gen, err := generator.New(initial.Generator, random.ForSeed(cfg.Seed))
	if err != nil {
		return err
	}
	grid, err := gen.Generate(initial.Size, initial.Roughness)
	if err != nil {
		return err
	}
	if err := export.SaveFile(cfg.Export.Path, grid, initial.Palette, cfg.Export.Scale); err != nil {
		return err
	}
	log.Print(i18n.Tf("MSG_EXPORTED", cfg.Export.Path))
	return nil
}

func runServe(cfg config.Config, initial settings.Settings) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Options{
		Listen:   cfg.Server.Listen,
		MaxSize:  cfg.Server.MaxSize,
		Defaults: initial,
	})
	return srv.Serve(ctx)
}

func runInteractive(cfg config.Config, initial settings.Settings) error {
	if clamped := settings.ClampSize(initial.Size); clamped != initial.Size {
		log.Printf("Size %d is outside the interactive range, using %d", initial.Size, clamped)
		initial.Size = clamped
	}

	store := settings.NewStore(initial)
	session := state.NewSession(store, random.ForSeed(cfg.Seed))
	defer session.Close()

	exporter := func(s *state.Session) (string, error) {
		err := export.SaveFile(cfg.Export.Path, s.Grid(), s.Settings().Palette, cfg.Export.Scale)
		return cfg.Export.Path, err
	}

	if cfg.Mode == config.ModeWindow {
		win := ebitenrenderer.New(cfg.Window.Width, cfg.Window.Height)
		renderer.SetRenderer(win)
		return win.Run(session, exporter)
	}

	term := tui.New()
	renderer.SetRenderer(term)
	if err := term.Run(session, exporter); err != nil {
		return err
	}
	renderer.ShowMessage("\n" + i18n.T("GOODBYE"))
	return nil
}
