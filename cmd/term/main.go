package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/tomz197/spacerocks/internal/config"
	"github.com/tomz197/spacerocks/internal/draw"
	"github.com/tomz197/spacerocks/internal/input"
	"github.com/tomz197/spacerocks/internal/logging"
	"github.com/tomz197/spacerocks/internal/loop"
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

	logger, closeLog, err := logging.NewFile(settings.LogFile, settings.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	world, err := loop.NewWorld(loop.Options{Rand: settings.NewRand(), Logger: logger})
	if err != nil {
		return err
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer := draw.NewTerminal(os.Stdout, draw.DefaultTermSizeFunc, world.Screen())
	if err := renderer.Begin(); err != nil {
		return err
	}
	defer renderer.End()

	logger.Info("game started", "seed", settings.Seed)
	stream := input.StartStream(bufio.NewReader(os.Stdin))
	defer stream.Close()

	err = loop.Run(ctx, world, stream, renderer)
	logger.Info("game ended", "frame", world.Frame(), "status", world.Status())
	return err
}
