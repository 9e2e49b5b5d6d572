package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/tomz197/warpteroids/internal/config"
	"github.com/tomz197/warpteroids/internal/game"
	"github.com/tomz197/warpteroids/internal/loop"
	"github.com/tomz197/warpteroids/internal/sound"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}
	settings := config.Load()

	var logOut io.Writer = io.Discard
	if settings.LogFile != "" {
		f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := settings.NewLogger(logOut, "game")

	player := sound.NewPlayer(sound.Config{
		Enabled: settings.Sound,
		Logger:  logger.WithPrefix("sound"),
	})
	if err := player.Init(); err != nil && !errors.Is(err, sound.ErrDisabled) {
		logger.Warn("playing without sound", "err", err)
	}
	defer player.Close()

	world := game.New(
		game.WithSeed(settings.RandSeed()),
		game.WithLogger(logger),
		game.WithListener(player),
	)

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = loop.Run(ctx, os.Stdin, os.Stdout, loop.Options{
		World:  world,
		Logger: logger,
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
