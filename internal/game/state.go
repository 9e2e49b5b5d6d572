package game

import (
	"github.com/tomz197/warpteroids/internal/input"
	"github.com/tomz197/warpteroids/internal/object"
)

// State is a node of the game state machine: *Play, *Preparing, *End or *Menu.
// The world calls, every frame and in this order: act, handleInput, update,
// then handleGameEnd when the ship has been disposed.
type State interface {
	Name() string

	act(w *World)
	handleInput(w *World)
	update(w *World) error
	handleGameEnd(w *World)
	render(w *World, s object.Surface)
}

// pressed reports a fresh press: held now, released in the previous frame.
func (w *World) pressed(key func(input.Commands) bool) bool {
	return key(w.curr) && !key(w.prev)
}

func shootKey(c input.Commands) bool { return c.Shoot }
func menuKey(c input.Commands) bool  { return c.Menu }

// controlShip routes the player commands to the ship. Shooting and the
// menu are edge triggered; steering and warp repeat while held.
func (w *World) controlShip(current State) {
	if w.pressed(shootKey) {
		w.ship.Shoot(w)
	}
	if w.curr.Left {
		w.ship.SteerLeft()
	}
	if w.curr.Right {
		w.ship.SteerRight()
	}
	if w.curr.Warp {
		w.ship.Warp(w)
	}
	if w.pressed(menuKey) {
		w.switchState(&Menu{Prev: current})
	}
}

// Play is regular gameplay.
type Play struct{}

func (*Play) Name() string { return "play" }

func (p *Play) act(w *World) {
	if w.LevelCleared() {
		w.switchState(newPreparing(w))
	}
}

func (p *Play) handleInput(w *World)            { w.controlShip(p) }
func (*Play) update(w *World) error             { return w.updateObjects() }
func (*Play) handleGameEnd(w *World)            { w.switchState(newEnd(w)) }
func (*Play) render(w *World, s object.Surface) { w.renderObjects(s) }
