package game

import (
	"golang.org/x/image/colornames"

	"github.com/tomz197/warpteroids/internal/object"
	"github.com/tomz197/warpteroids/internal/vector"
)

var helpLines = []string{
	"Controls:",
	"    turn left:    A, LEFT",
	"    turn right:   D, RIGHT",
	"    shoot:        S, DOWN, SPACE",
	"    warp:         W, UP",
	"    menu:         ESC",
	"    quit:         Q",
	"",
	"Gameplay:",
	"    do not die (you have 3 lives)",
	"    destroy all enemies (asteroids and UFOs)",
	"    once everything is destroyed, a new level begins",
	"",
	"Mechanics:",
	"    the spaceship flies forwards with constant speed",
	"    warp can only be used when it is ready (indicator)",
	"    if you are hit during warping, it gets cancelled",
	"    if the spaceship is flashing, you are invincible",
}

// Menu is the help overlay. The world is frozen until the menu key is
// pressed again, which returns to Prev.
type Menu struct {
	Prev State
}

func (*Menu) Name() string { return "menu" }

func (*Menu) act(*World) {}

func (m *Menu) handleInput(w *World) {
	if w.pressed(menuKey) {
		w.switchState(m.Prev)
	}
}

func (*Menu) update(*World) error  { return nil }
func (*Menu) handleGameEnd(*World) {}

func (*Menu) render(w *World, s object.Surface) {
	const (
		padding = 50
		lining  = 25
		top     = 150
	)
	s.Text(vector.New(w.board.Width/2, padding+lining), "HELP", object.AlignCenter, colornames.White)
	y := float64(top)
	for _, line := range helpLines {
		s.Text(vector.New(w.board.Width/3, y), line, object.AlignLeft, colornames.White)
		y += lining
	}
}
