package loop

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/image/colornames"

	"github.com/tomz197/warpteroids/internal/config"
	"github.com/tomz197/warpteroids/internal/draw"
	"github.com/tomz197/warpteroids/internal/game"
	"github.com/tomz197/warpteroids/internal/input"
)

// screen is the terminal side of a session: canvas layout, output and the
// inactivity clock.
type screen struct {
	out      io.Writer
	cw       *draw.ChunkWriter
	canvas   *draw.Canvas
	surface  *termSurface
	termSize draw.TermSizeFunc
	log      *log.Logger

	board              game.Board
	termW, termH       int
	idleWarn, idleKill time.Duration
	lastInput          time.Time
	warned             bool
}

func newScreen(w io.Writer, board game.Board, opts Options) *screen {
	canvas := draw.NewScaledCanvas(1, 1, board.Width, board.Height)
	return &screen{
		out:    w,
		cw:     draw.NewChunkWriter(w, 0, 0),
		canvas: canvas,
		surface: &termSurface{
			canvas: canvas,
			styles: opts.Styles,
		},
		termSize:  opts.TermSize,
		log:       opts.Logger,
		board:     board,
		idleWarn:  opts.IdleWarn,
		idleKill:  opts.IdleTimeout,
		lastInput: time.Now(),
	}
}

// layout fits a canvas with the board's aspect ratio into the terminal and
// centers it. A terminal cell holds two square-ish pixels.
func layout(termW, termH int, board game.Board) (w, h, offCol, offRow int) {
	w, h, _, _ = draw.ClampSize(termW, termH, config.MaxTermWidth, config.MaxTermHeight)
	if float64(w)*board.Height > float64(h*2)*board.Width {
		w = int(float64(h*2) * board.Width / board.Height)
	} else {
		h = int(float64(w) * board.Height / board.Width / 2)
	}
	w, h = max(w, 1), max(h, 1)
	return w, h, (termW - w) / 2, (termH - h) / 2
}

// resize follows terminal size changes. The terminal is cleared when the
// layout moves so no stale cells stay behind.
func (s *screen) resize() {
	tw, th, err := s.termSize()
	if err != nil || (tw == s.termW && th == s.termH) {
		return
	}
	s.termW, s.termH = tw, th

	w, h, offCol, offRow := layout(tw, th, s.board)
	s.canvas.Resize(w, h)
	s.canvas.SetOffset(offCol, offRow)
	s.cw.SetOffset(offCol, offRow)

	draw.ClearScreen(s.cw)
	s.canvas.ForceRedraw()
	s.canvas.RenderBorder(s.cw)
	s.log.Debug("terminal resized", "cols", tw, "rows", th, "canvas", fmt.Sprintf("%dx%d", w, h))
}

// idle tracks input activity. It reports whether the session should be
// closed for inactivity.
func (s *screen) idle(now time.Time, cmds input.Commands) (disconnect bool) {
	if s.idleKill <= 0 {
		return false
	}
	if cmds.Pressed() {
		s.lastInput = now
	}
	idle := now.Sub(s.lastInput)
	warned := idle > s.idleWarn
	if warned != s.warned {
		s.warned = warned
		s.canvas.ForceRedraw()
	}
	return idle > s.idleKill
}

// banner writes centered lines over the middle of the canvas.
func (s *screen) banner(lines ...string) {
	style := s.surface.styles.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color(hex(colornames.Darkred)))
	row := s.canvas.TerminalHeight()/2 - len(lines)
	for i, line := range lines {
		width := lipgloss.Width(line)
		col := s.canvas.TerminalWidth()/2 - width/2
		s.canvas.Text(col, row+2*i, style.Render(line), width)
	}
}

// warning draws the inactivity notice while the session is idle.
func (s *screen) warning(now time.Time) {
	if !s.warned {
		return
	}
	left := s.idleKill - now.Sub(s.lastInput)
	s.banner(
		"INACTIVITY WARNING",
		fmt.Sprintf("You will be disconnected in %d seconds.", int(left.Seconds())),
		"Press any key to continue",
	)
}

func (s *screen) flush() error {
	s.canvas.Render(s.cw)
	return s.cw.Flush()
}
