package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/celestial-scene/internal/ambience"
	"github.com/iburimskiy/celestial-scene/internal/config"
	"github.com/iburimskiy/celestial-scene/internal/game"
	"github.com/iburimskiy/celestial-scene/internal/injector"
	"github.com/iburimskiy/celestial-scene/internal/log"
	"github.com/iburimskiy/celestial-scene/internal/scene"
	"github.com/iburimskiy/celestial-scene/internal/term"
)

// terminalLog is where the terminal host logs when settings point at a console stream
const terminalLog = "celestial-scene.log"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "celestial-scene: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath = flag.String("config", "", "settings file (YAML)")
		width      = flag.Int("width", 0, "window width")
		height     = flag.Int("height", 0, "window height")
		seed       = flag.String("seed", "", "star field seed; empty draws a fresh sky")
		workers    = flag.Int("workers", 0, "parallel entity update workers")
		tui        = flag.Bool("tui", false, "run in the terminal instead of a window")
		drone      = flag.Bool("drone", false, "play the ambient drone")
		level      = flag.String("log-level", "", "debug | info | warn | error")
		layoutFile = flag.String("layout", "", "layout table overrides (YAML)")
	)
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			settings.Window.Width = *width
		case "height":
			settings.Window.Height = *height
		case "seed":
			settings.Scene.Seed = *seed
		case "workers":
			settings.Scene.Workers = *workers
		case "tui":
			if *tui {
				settings.Host = "terminal"
			}
		case "drone":
			settings.Audio.Drone = *drone
		case "log-level":
			settings.Log.Level = *level
		case "layout":
			settings.Scene.LayoutFile = *layoutFile
		}
	})
	if settings.Host == "terminal" && (settings.Log.Output == "stderr" || settings.Log.Output == "stdout") {
		settings.Log.Output = terminalLog
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	var nav scene.NavigateFunc
	if settings.Host == "window" {
		nav = func(target string) {
			ebiten.SetWindowTitle(settings.Window.Title + " -> " + target)
		}
	}

	app, err := injector.InitializeApp(settings, nav)
	if err != nil {
		return err
	}
	logger := app.Log
	defer func() { _ = logger.Sync() }()
	defer func() { _ = app.Scene.Close() }()

	var audio *ambience.Player
	if settings.Audio.Drone {
		// non-fatal, the scene runs silent
		if audio, err = ambience.Start(logger, app.Scene.Store().Snapshot()); err != nil {
			logger.Warn("audio unavailable", log.Error(err))
			audio = nil
		} else {
			defer audio.Close()
		}
	}

	if settings.Host == "terminal" {
		return runTerminal(app, audio)
	}
	return runWindow(app, audio)
}

func runWindow(app *injector.App, audio *ambience.Player) error {
	s := app.Settings
	ebiten.SetWindowSize(s.Window.Width, s.Window.Height)
	ebiten.SetWindowTitle(s.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TPS)

	g := game.New(app.Scene, app.Log, game.Options{
		Width:   s.Window.Width,
		Height:  s.Window.Height,
		Sprites: s.Assets.Sprites,
		Audio:   audio,
	})
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func runTerminal(app *injector.App, audio *ambience.Player) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return term.New(screen, app.Scene, app.Log, audio).Run(ctx)
}
