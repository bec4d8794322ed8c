package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/solar-orbits/internal/config"
	"github.com/iburimskiy/solar-orbits/internal/game"
	"github.com/iburimskiy/solar-orbits/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "settings YAML file (default "+config.DefaultPath+" if present)")
	flag.Parse()

	var (
		settings *config.Settings
		err      error
	)
	if *configPath == "" {
		settings, err = config.LoadOrDefault(config.DefaultPath)
	} else {
		settings, err = config.Load(*configPath)
	}
	if err != nil {
		fatal(logging.New(logging.LevelInfo), err)
	}

	log := logging.New(logging.ParseLevel(settings.LogLevel))

	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(settings.Window.Title)
	if settings.Resizable() {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g, err := game.NewGame(settings, log)
	if err != nil {
		fatal(log, err)
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(log, err)
	}
}

// fatal reports err in the log and in a dialog, then exits.
func fatal(log *logging.Logger, err error) {
	log.Error("%v", err)
	_ = zenity.Error(err.Error(), zenity.Title("Solar Orbits"))
	os.Exit(1)
}
