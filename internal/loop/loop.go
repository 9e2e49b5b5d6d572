// Package loop drives a game.World in a terminal: it decodes key presses,
// steps the world at a fixed rate and renders each frame as colored
// half-block characters.
package loop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/tomz197/warpteroids/internal/config"
	"github.com/tomz197/warpteroids/internal/draw"
	"github.com/tomz197/warpteroids/internal/game"
	"github.com/tomz197/warpteroids/internal/input"
)

// ErrIdle is returned by Run when the session timed out for inactivity.
var ErrIdle = errors.New("loop: session idle")

// Options configures a terminal session. Zero values get defaults.
type Options struct {
	// World is the game to drive. Defaults to game.New().
	World *game.World
	// TermSize reports the terminal size. Defaults to the size of stdout.
	TermSize draw.TermSizeFunc
	// Styles renders text colors for the output terminal.
	Styles *lipgloss.Renderer
	Logger *log.Logger
	// IdleTimeout disconnects a session without input for that long; zero
	// disables it. The warning shows from IdleWarn on.
	IdleWarn    time.Duration
	IdleTimeout time.Duration
	// FrameTime is the tick interval. Defaults to config.TargetFrameTime.
	FrameTime time.Duration
}

func (o Options) withDefaults(w io.Writer) Options {
	if o.World == nil {
		o.World = game.New()
	}
	if o.TermSize == nil {
		o.TermSize = draw.DefaultTermSizeFunc
	}
	if o.Styles == nil {
		o.Styles = lipgloss.NewRenderer(w, termenv.WithProfile(termenv.TrueColor))
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.IdleTimeout > 0 && o.IdleWarn <= 0 {
		o.IdleWarn = o.IdleTimeout * 3 / 4
	}
	if o.FrameTime <= 0 {
		o.FrameTime = config.TargetFrameTime
	}
	return o
}

// Run plays the world until the player quits, r is closed, the context is
// cancelled or the session goes idle. Each tick runs Input -> Frame -> Draw.
func Run(ctx context.Context, r io.Reader, w io.Writer, opts Options) error {
	opts = opts.withDefaults(w)
	world := opts.World
	stream := input.StartStream(r)
	scr := newScreen(w, world.Board(), opts)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	ticker := time.NewTicker(opts.FrameTime)
	defer ticker.Stop()

	for {
		var now time.Time
		select {
		case <-ctx.Done():
			draw.ClearScreen(w)
			return ctx.Err()
		case now = <-ticker.C:
		}

		// ===== INPUT =====
		cmds := stream.Read(now)
		if cmds.Quit {
			draw.ClearScreen(w)
			return nil
		}
		if scr.idle(now, cmds) {
			draw.ClearScreen(w)
			return ErrIdle
		}
		world.SetInput(cmds)

		// ===== UPDATE =====
		scr.resize()
		scr.canvas.Clear()
		if err := world.Frame(scr.surface); err != nil {
			return fmt.Errorf("game loop: %w", err)
		}

		// ===== DRAW =====
		scr.warning(now)
		if err := scr.flush(); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}
	}
}
