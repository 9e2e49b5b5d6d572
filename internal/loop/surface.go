package loop

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomz197/warpteroids/internal/draw"
	"github.com/tomz197/warpteroids/internal/object"
	"github.com/tomz197/warpteroids/internal/vector"
)

// termSurface draws board geometry onto a half-block canvas. Text is laid
// over the canvas as styled terminal text.
type termSurface struct {
	canvas *draw.Canvas
	styles *lipgloss.Renderer
}

func (s *termSurface) points(vs []vector.Vector) []draw.Point {
	pts := s.canvas.BorrowPoints(len(vs))
	for i, v := range vs {
		pts[i] = draw.Point{X: v.X, Y: v.Y}
	}
	return pts
}

func (s *termSurface) Polygon(points []vector.Vector, c color.Color) {
	s.canvas.DrawPolygon(s.points(points), rgba(c), true)
}

// Ring ignores the stroke width; one terminal pixel spans many board units.
func (s *termSurface) Ring(center vector.Vector, radius, _ float64, c color.Color) {
	s.canvas.DrawCircle(draw.Point{X: center.X, Y: center.Y}, radius, rgba(c))
}

func (s *termSurface) Dot(at vector.Vector, c color.Color) {
	s.canvas.SetFloat(at.X, at.Y, rgba(c))
}

// Rect skips opaque black, the terminal background.
func (s *termSurface) Rect(lo, hi vector.Vector, c color.Color) {
	col := rgba(c)
	if col == (color.RGBA{A: 0xff}) {
		return
	}
	s.canvas.FillRect(draw.Point{X: lo.X, Y: lo.Y}, draw.Point{X: hi.X, Y: hi.Y}, col)
}

// Text anchors s at the baseline position and takes its background from
// whatever was drawn underneath.
func (s *termSurface) Text(at vector.Vector, text string, align object.Align, c color.Color) {
	col, row := s.canvas.LogicalToTerminal(at.X, at.Y)
	width := lipgloss.Width(text)
	switch align {
	case object.AlignCenter:
		col -= width / 2
	case object.AlignRight:
		col -= width
	}

	style := s.styles.NewStyle().Foreground(lipgloss.Color(hex(rgba(c))))
	if under := s.canvas.At(at.X, at.Y); under.A != 0 {
		style = style.Background(lipgloss.Color(hex(under)))
	}
	s.canvas.Text(col, row, style.Render(text), width)
}

func rgba(c color.Color) color.RGBA {
	if c, ok := c.(color.RGBA); ok {
		return c
	}
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
