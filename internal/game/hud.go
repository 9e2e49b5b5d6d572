package game

import (
	"fmt"

	"golang.org/x/image/colornames"

	"github.com/tomz197/warpteroids/internal/object"
	"github.com/tomz197/warpteroids/internal/vector"
)

// Info bar layout.
const (
	barBorder     = 5
	barPadding    = 35
	barLining     = 25
	warpTextWidth = 60
)

// renderInfoBar draws score, level, lives, enemy counts and the warp
// indicator into the strip below the playable area.
func (w *World) renderInfoBar(s object.Surface) {
	width := w.board.Width
	top := w.board.Height - w.board.InfoBar

	s.Rect(vector.New(0, top), vector.New(width, w.board.Height), colornames.Grey)
	s.Rect(vector.New(0, top), vector.New(width, top+barBorder), colornames.Blue)

	row1 := top + barPadding
	row2 := row1 + barLining
	ink := colornames.Black

	s.Text(vector.New(barPadding, row1), fmt.Sprintf("SCORE: %d", w.score), object.AlignLeft, ink)
	s.Text(vector.New(width/2, row1), fmt.Sprintf("LEVEL %d", w.level), object.AlignCenter, ink)
	s.Text(vector.New(width-barPadding, row1), fmt.Sprintf("LIVES: %d", w.ship.Lives), object.AlignRight, ink)

	s.Text(vector.New(barPadding, row2), fmt.Sprintf("Asteroids: %d", len(w.asteroids)), object.AlignLeft, ink)
	s.Text(vector.New(width-barPadding, row2), fmt.Sprintf("UFOs: %d", len(w.ufos)), object.AlignRight, ink)

	warpInk := ink
	if w.ship.WarpCooldown <= 0 {
		warpInk = colornames.Blue
	}
	s.Text(vector.New(width/2, row2), "WARP", object.AlignCenter, warpInk)

	// grey block covering the part of the label still cooling down
	remaining := warpTextWidth * (1 - w.ship.WarpReadiness())
	if remaining > 0 {
		right := width/2 + warpTextWidth/2
		s.Rect(vector.New(right-remaining, row1+5), vector.New(right, row1+5+barLining), colornames.Grey)
	}
}
