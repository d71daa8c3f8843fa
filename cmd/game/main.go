package main

import (
	"fmt"
	"os"

	"github.com/tomz197/spacerocks/internal/config"
	"github.com/tomz197/spacerocks/internal/logging"
	"github.com/tomz197/spacerocks/internal/loop"
	"github.com/tomz197/spacerocks/internal/window"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "spacerocks: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.Load(config.GetEnv("SPACEROCKS_CONFIG", ""))
	if err != nil {
		return err
	}

	logger, err := logging.New(os.Stderr, settings.LogLevel)
	if err != nil {
		return err
	}

	screen := window.Screen()
	sprites, geom, err := window.LoadSprites(settings.AssetsDir, screen, logger)
	if err != nil {
		return err
	}
	face, err := window.NewMessageFace()
	if err != nil {
		return err
	}

	world, err := loop.NewWorld(loop.Options{
		Screen:   screen,
		Geometry: geom,
		Rand:     settings.NewRand(),
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	logger.Info("game started", "seed", settings.Seed, "assets", settings.AssetsDir)
	return window.Run(window.NewGame(world, sprites, face, logger))
}
