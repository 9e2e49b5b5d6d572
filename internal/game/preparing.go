package game

import (
	"fmt"

	"github.com/tomz197/warpteroids/internal/config"
	"github.com/tomz197/warpteroids/internal/object"
)

const (
	prepareTextDuration = config.PrepareAppearance + config.PrepareDrift + config.PrepareDisappearance
	prepareReadyDelay   = config.PrepareScoreDelay + prepareTextDuration

	// PrepareDuration is the number of frames between levels.
	PrepareDuration = prepareReadyDelay + prepareTextDuration
)

// Preparing counts down to the next level while the level, score and
// "READY" banners slide across the board. The ship can still fly.
type Preparing struct {
	Timer int
	texts []*object.AnimatedText
}

func newPreparing(w *World) *Preparing {
	return &Preparing{
		Timer: PrepareDuration,
		texts: prepareTexts(w),
	}
}

func (*Preparing) Name() string { return "preparing" }

func (p *Preparing) act(w *World) {
	for _, t := range p.texts {
		t.Act()
	}

	p.Timer--
	if p.Timer > 0 {
		return
	}
	w.ship.SetState(object.NewInvincible(), w)
	w.nextLevel()
	w.switchState(&Play{})
}

func (p *Preparing) handleInput(w *World) { w.controlShip(p) }
func (*Preparing) update(w *World) error  { return w.updateObjects() }
func (*Preparing) handleGameEnd(w *World) { w.switchState(newEnd(w)) }

func (p *Preparing) render(w *World, s object.Surface) {
	w.renderObjects(s)
	for _, t := range p.texts {
		t.Render(s)
	}
}

func prepareTexts(w *World) []*object.AnimatedText {
	width := w.board.Width
	var (
		drift       = width * 2 / 21
		offset      = width * 2 / 11
		middleLeft  = width * 8 / 21
		middle      = width * 10 / 21
		middleRight = width * 11 / 21
		headY       = w.board.PlayHeight() / 2
		subY        = headY + 72
	)
	const (
		appear    = config.PrepareAppearance
		drifting  = config.PrepareDrift
		disappear = config.PrepareDisappearance
	)

	level := object.NewAnimatedText(fmt.Sprintf("LEVEL %d", w.level+1), headY,
		object.PathNode{X: -offset},
		object.PathNode{X: middleLeft, Time: appear},
		object.PathNode{X: middleLeft + drift, Time: drifting},
		object.PathNode{X: width + offset, Time: disappear},
	)
	score := object.NewAnimatedText(fmt.Sprintf("SCORE: %d", w.score), subY,
		object.PathNode{X: -offset},
		object.PathNode{X: -offset, Time: config.PrepareScoreDelay},
		object.PathNode{X: middleRight, Time: appear},
		object.PathNode{X: middleRight + drift, Time: drifting},
		object.PathNode{X: width + offset, Time: disappear},
	)
	ready := object.NewAnimatedText("READY", headY,
		object.PathNode{X: -offset},
		object.PathNode{X: -offset, Time: prepareReadyDelay},
		object.PathNode{X: middle, Time: appear},
		object.PathNode{X: middle + drift, Time: drifting},
		object.PathNode{X: width + offset, Time: disappear},
	)
	return []*object.AnimatedText{level, score, ready}
}
