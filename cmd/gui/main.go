// Command gui plays the game in a window. Built with GOOS=js GOARCH=wasm it
// runs in the browser page served by cmd/web.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/tomz197/warpteroids/internal/config"
	"github.com/tomz197/warpteroids/internal/game"
	"github.com/tomz197/warpteroids/internal/gfx"
	"github.com/tomz197/warpteroids/internal/sound"
)

func main() {
	envErr := config.LoadDotEnv()
	settings := config.Load()
	logger := settings.NewLogger(os.Stderr, "gui")
	if envErr != nil {
		logger.Warn("ignoring .env", "err", envErr)
	}

	window := func(w *game.World) error {
		return gfx.Run(w, "Warpteroids", logger)
	}
	if err := run(settings, logger, window); err != nil {
		logger.Error("game stopped", "err", err)
		os.Exit(1)
	}
}

// run plays one game through play. The speaker is released before it
// returns.
func run(settings config.Settings, logger *log.Logger, play func(*game.World) error) error {
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
	if err := play(world); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
