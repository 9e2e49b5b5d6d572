package draw

import (
	"bytes"
	"image/color"
	"strings"
	"testing"
)

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

func render(c *Canvas) string {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 0, 0)
	c.Render(cw)
	if err := cw.Flush(); err != nil {
		panic(err)
	}
	return out.String()
}

func TestScaledCanvasMapsLogicalSpace(t *testing.T) {
	// 1280x720 logical onto 64 columns and 36 rows (72 pixel rows)
	c := NewScaledCanvas(64, 36, 1280, 720)
	c.SetFloat(640, 360, red)
	if got := c.Pixel(32, 36); got != red {
		t.Errorf("center pixel = %v, want red", got)
	}
	col, row := c.LogicalToTerminal(640, 360)
	if col != 33 || row != 19 {
		t.Errorf("LogicalToTerminal = (%d, %d), want (33, 19)", col, row)
	}
}

func TestFilledPolygonCoversInterior(t *testing.T) {
	c := NewScaledCanvas(20, 10, 20, 20)
	square := []Point{{X: 2, Y: 2}, {X: 10, Y: 2}, {X: 10, Y: 10}, {X: 2, Y: 10}}
	c.DrawPolygon(square, blue, true)
	for _, p := range [][2]int{{2, 2}, {6, 6}, {9, 9}, {10, 10}} {
		if c.Pixel(p[0], p[1]) != blue {
			t.Errorf("pixel %v not filled", p)
		}
	}
	if c.Pixel(12, 6) != (color.RGBA{}) {
		t.Error("fill leaked outside the polygon")
	}

	c.Clear()
	c.DrawPolygon(square, blue, false)
	if c.Pixel(6, 6) != (color.RGBA{}) {
		t.Error("outline filled the interior")
	}
	if c.Pixel(2, 6) != blue {
		t.Error("outline missing")
	}
}

func TestFillRectAndCircle(t *testing.T) {
	c := NewScaledCanvas(40, 20, 40, 40)
	c.FillRect(Point{X: 0, Y: 0}, Point{X: 4, Y: 2}, red)
	if c.Pixel(3, 1) != red || c.Pixel(4, 1) == red {
		t.Error("rect bounds wrong")
	}

	c.Clear()
	c.DrawCircle(Point{X: 20, Y: 20}, 10, blue)
	for _, p := range [][2]int{{30, 20}, {10, 20}, {20, 10}, {20, 30}} {
		if c.Pixel(p[0], p[1]) != blue {
			t.Errorf("circle misses %v", p)
		}
	}
	if c.Pixel(20, 20) == blue {
		t.Error("circle center drawn")
	}
}

func TestRenderWritesOnlyChanges(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	c.SetFloat(1, 0, red)
	c.SetFloat(1, 1, blue)

	first := render(c)
	if !strings.Contains(first, "\033[1;2H") {
		t.Errorf("cell (2,1) not addressed: %q", first)
	}
	if !strings.Contains(first, "38;2;255;0;0") || !strings.Contains(first, "48;2;0;0;255") {
		t.Errorf("missing truecolor attributes: %q", first)
	}
	if !strings.ContainsRune(first, BlockUpperHalf) {
		t.Errorf("missing half block: %q", first)
	}

	second := render(c)
	if strings.Contains(second, "H") {
		t.Errorf("unchanged frame repainted cells: %q", second)
	}

	c.Clear()
	third := render(c)
	if !strings.Contains(third, "\033[1;2H") || !strings.ContainsRune(third, ' ') {
		t.Errorf("cleared cell not erased: %q", third)
	}
}

func TestSameColorCellUsesFullBlock(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.SetFloat(0, 0, red)
	c.SetFloat(0, 1, red)
	if out := render(c); !strings.ContainsRune(out, BlockFull) {
		t.Errorf("expected full block: %q", out)
	}
}

func TestTextMarksCellsForRepaint(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	c.Text(3, 2, "hi", 2)
	out := render(c)
	if !strings.Contains(out, "\033[2;3Hhi") {
		t.Errorf("text not placed: %q", out)
	}

	// the text is gone next frame, its cells get repainted
	c.Clear()
	out = render(c)
	if !strings.Contains(out, "\033[2;3H") || !strings.Contains(out, "\033[2;4H") {
		t.Errorf("text cells not repainted: %q", out)
	}
}

func TestForceRedraw(t *testing.T) {
	c := NewScaledCanvas(3, 2, 3, 4)
	render(c)
	c.ForceRedraw()
	if n := strings.Count(render(c), "H"); n != 6 {
		t.Errorf("repainted %d cells, want 6", n)
	}
}

func TestRenderBorderUsesOffset(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.SetOffset(2, 1)
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 2, 1)
	c.RenderBorder(cw)
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	if !strings.Contains(s, "\033[1;2H┌────┐") || !strings.Contains(s, "\033[4;2H└────┘") {
		t.Errorf("border misplaced: %q", s)
	}
	if !strings.Contains(s, "\033[2;7H│") {
		t.Errorf("right bar misplaced: %q", s)
	}
}

func TestTextOutsideCanvasIsDropped(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	c.Text(0, 1, "left", 4)
	c.Text(8, 1, "right", 5)
	c.Text(1, 6, "below", 5)
	if out := render(c); strings.Contains(out, "left") || strings.Contains(out, "right") || strings.Contains(out, "below") {
		t.Errorf("clipped text written: %q", out)
	}
}
