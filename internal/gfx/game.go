// Package gfx runs a game.World in an ebiten window, or in the browser when
// built for js/wasm.
package gfx

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/warpteroids/internal/game"
)

// Game adapts a World to ebiten.Game. Ebiten calls Update at 60 ticks per
// second, which matches the world's frame rate.
type Game struct {
	world   *game.World
	log     *log.Logger
	surface *surface
}

func NewGame(world *game.World, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		world:   world,
		log:     logger,
		surface: newSurface(),
	}
}

func (g *Game) Update() error {
	cmds := readKeys(ebiten.IsKeyPressed)
	if cmds.Quit {
		return ebiten.Termination
	}
	g.world.SetInput(cmds)
	if err := g.world.Step(); err != nil {
		g.log.Error("frame failed", "err", err)
		return err
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.dst = screen
	g.world.Render(g.surface)
}

// Layout keeps the logical board size; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	b := g.world.Board()
	return int(b.Width), int(b.Height)
}

// Run opens a window and plays until it is closed or quit is pressed.
func Run(world *game.World, title string, logger *log.Logger) error {
	b := world.Board()
	ebiten.SetWindowSize(int(b.Width), int(b.Height))
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(ebiten.DefaultTPS)

	err := ebiten.RunGame(NewGame(world, logger))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
