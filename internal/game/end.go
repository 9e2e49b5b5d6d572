package game

import (
	"fmt"

	"github.com/tomz197/warpteroids/internal/config"
	"github.com/tomz197/warpteroids/internal/object"
)

const (
	endLevelDelay   = 60
	endScoreDelay   = endLevelDelay + 20
	endRestartDelay = endScoreDelay + 60
	endFlyOffDelay  = 10
	endFlyOff       = 20
)

// End is the game over screen. The texts slide in, then the timer stops at
// its midpoint until the player holds restart; the texts slide out and the
// game resets when the timer runs out.
type End struct {
	Timer    int
	HalfTime int
	Restart  bool

	pre  []*object.AnimatedText
	post []*object.AnimatedText
}

func newEnd(w *World) *End {
	w.log.Info("game over", "level", w.level, "score", w.score)
	pre, post := endTexts(w)
	return &End{
		Timer:    config.EndAppearance + config.EndDisappearance,
		HalfTime: config.EndDisappearance,
		pre:      pre,
		post:     post,
	}
}

func (*End) Name() string { return "end" }

func (e *End) act(w *World) {
	if e.Timer > e.HalfTime || e.Restart {
		e.Timer--
	}

	switch {
	case e.Timer > e.HalfTime:
		for _, t := range e.pre {
			t.Act()
		}
	case e.Restart:
		for _, t := range e.post {
			t.Act()
		}
	}

	if e.Timer <= 0 {
		w.Reset()
	}
}

func (e *End) handleInput(w *World) {
	if w.pressed(menuKey) {
		w.switchState(&Menu{Prev: e})
	}
	if e.Timer == e.HalfTime && w.curr.Restart {
		e.Restart = true
	}
}

// update keeps the explosion going; entities stay frozen.
func (*End) update(w *World) error {
	w.updateEffects()
	return nil
}

func (*End) handleGameEnd(*World) {}

func (e *End) render(w *World, s object.Surface) {
	for _, p := range w.particles {
		p.Render(s)
	}
	switch {
	case e.Timer >= e.HalfTime:
		for _, t := range e.pre {
			t.Render(s)
		}
	case e.Restart:
		for _, t := range e.post {
			t.Render(s)
		}
	}
}

func endTexts(w *World) (pre, post []*object.AnimatedText) {
	width := w.board.Width
	var (
		offset      = width * 4 / 11
		middle      = width * 10 / 21
		middleRight = width * 11 / 21
		headY       = w.board.PlayHeight() / 4
		levelY      = headY + 150
		scoreY      = levelY + 32
		restartY    = scoreY + 150
		gone        = width + offset
	)
	const appear = 20

	lines := []struct {
		value string
		y     float64
		rest  float64
		in    int
		out   int
	}{
		{"GAME OVER", headY, middle, 0, 0},
		{fmt.Sprintf("LEVEL: %d", w.level), levelY, middleRight, endLevelDelay, endFlyOffDelay},
		{fmt.Sprintf("SCORE: %d", w.score), scoreY, middleRight, endScoreDelay, 2 * endFlyOffDelay},
		{"To restart game press 'R'!", restartY, middleRight, endRestartDelay, 3 * endFlyOffDelay},
	}
	for _, l := range lines {
		in := []object.PathNode{{X: -offset}}
		if l.in > 0 {
			in = append(in, object.PathNode{X: -offset, Time: l.in})
		}
		in = append(in, object.PathNode{X: l.rest, Time: appear})

		out := []object.PathNode{{X: l.rest}}
		if l.out > 0 {
			out = append(out, object.PathNode{X: l.rest, Time: l.out})
		}
		out = append(out, object.PathNode{X: gone, Time: endFlyOff})

		pre = append(pre, object.NewAnimatedText(l.value, l.y, in...))
		post = append(post, object.NewAnimatedText(l.value, l.y, out...))
	}
	return pre, post
}
