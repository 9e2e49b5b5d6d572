package loop

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/image/colornames"

	"github.com/tomz197/warpteroids/internal/draw"
	"github.com/tomz197/warpteroids/internal/game"
	"github.com/tomz197/warpteroids/internal/object"
	"github.com/tomz197/warpteroids/internal/vector"
)

func fixedSize(w, h int) draw.TermSizeFunc {
	return func() (int, int, error) { return w, h, nil }
}

func testOptions() Options {
	return Options{
		World:     game.New(game.WithSeed(1)),
		TermSize:  fixedSize(80, 24),
		FrameTime: time.Millisecond,
	}
}

func TestLayoutKeepsBoardAspect(t *testing.T) {
	board := game.DefaultBoard()
	tests := []struct {
		name                 string
		termW, termH         int
		w, h, offCol, offRow int
	}{
		{"small", 80, 24, 80, 22, 0, 1},
		{"exact max", 160, 45, 160, 45, 0, 0},
		{"huge", 200, 60, 160, 45, 20, 7},
		{"tall", 60, 50, 60, 16, 0, 17},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, oc, or := layout(tt.termW, tt.termH, board)
			if w != tt.w || h != tt.h || oc != tt.offCol || or != tt.offRow {
				t.Errorf("layout = %d %d %d %d, want %d %d %d %d", w, h, oc, or, tt.w, tt.h, tt.offCol, tt.offRow)
			}
		})
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), strings.NewReader("q"), &out, testOptions())
	if err != nil {
		t.Fatalf("Run = %v", err)
	}
	if !strings.HasSuffix(out.String(), "\033[?25h") {
		t.Error("cursor not restored")
	}
}

func TestRunRendersFrames(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	var out bytes.Buffer
	opts := testOptions()
	err := Run(ctx, pr, &out, opts)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Run = %v, want deadline exceeded", err)
	}
	if opts.World.Frames() == 0 {
		t.Fatal("no frames ran")
	}
	for _, want := range []string{"SCORE: 0", "LIVES: 3"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output lacks %q", want)
		}
	}
	if !strings.ContainsAny(out.String(), "▀▄█") {
		t.Error("no canvas cells rendered")
	}
}

func TestRunDisconnectsIdleSession(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	opts := testOptions()
	opts.IdleTimeout = 30 * time.Millisecond
	opts.IdleWarn = 10 * time.Millisecond

	var out bytes.Buffer
	if err := Run(context.Background(), pr, &out, opts); !errors.Is(err, ErrIdle) {
		t.Fatalf("Run = %v, want ErrIdle", err)
	}
	if !strings.Contains(out.String(), "INACTIVITY WARNING") {
		t.Error("no inactivity warning before disconnect")
	}
}

func TestResizeClearsOnlyOnChange(t *testing.T) {
	var out bytes.Buffer
	cols, rows := 80, 24
	opts := Options{
		TermSize: func() (int, int, error) { return cols, rows, nil },
	}.withDefaults(&out)
	scr := newScreen(&out, game.DefaultBoard(), opts)

	scr.resize()
	if err := scr.cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "\033[2J") {
		t.Fatalf("first layout did not clear the terminal: %q", out.String())
	}

	out.Reset()
	scr.resize()
	_ = scr.cw.Flush()
	if out.Len() != 0 {
		t.Errorf("unchanged size wrote %q", out.String())
	}

	cols = 100
	scr.resize()
	_ = scr.cw.Flush()
	if !strings.Contains(out.String(), "\033[2J") {
		t.Error("resize did not clear the terminal")
	}
}

func TestSurfaceText(t *testing.T) {
	canvas := draw.NewScaledCanvas(64, 36, 1280, 720)
	s := &termSurface{
		canvas: canvas,
		styles: lipgloss.NewRenderer(io.Discard, termenv.WithProfile(termenv.Ascii)),
	}
	s.Rect(vector.New(0, 0), vector.New(1280, 720), colornames.Black)
	if canvas.At(640, 360) != (color.RGBA{}) {
		t.Error("black background painted")
	}

	s.Text(vector.New(640, 360), "READY", object.AlignCenter, colornames.White)
	s.Text(vector.New(1280, 20), "LIVES: 3", object.AlignRight, colornames.White)

	var out bytes.Buffer
	cw := draw.NewChunkWriter(&out, 0, 0)
	canvas.Render(cw)
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	// centered on column 33, right aligned to end before column 65
	if !strings.Contains(out.String(), "\033[19;31HREADY") {
		t.Errorf("centered text misplaced: %q", out.String())
	}
	if !strings.Contains(out.String(), "\033[2;57HLIVES: 3") {
		t.Errorf("right aligned text misplaced: %q", out.String())
	}
}

func TestSurfaceShapes(t *testing.T) {
	canvas := draw.NewScaledCanvas(64, 36, 1280, 720)
	s := &termSurface{canvas: canvas, styles: lipgloss.NewRenderer(io.Discard)}

	s.Polygon([]vector.Vector{vector.New(100, 100), vector.New(300, 100), vector.New(200, 300)}, colornames.Red)
	if canvas.At(200, 150) != colornames.Red {
		t.Error("polygon not filled")
	}
	s.Dot(vector.New(1000, 500), colornames.Yellow)
	if canvas.At(1000, 500) != colornames.Yellow {
		t.Error("dot missing")
	}
	s.Ring(vector.New(640, 360), 200, 5, colornames.Blue)
	if canvas.At(840, 360) != colornames.Blue || canvas.At(640, 360) == colornames.Blue {
		t.Error("ring drawn wrong")
	}
}
