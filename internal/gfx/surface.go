package gfx

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/warpteroids/internal/object"
	vec "github.com/tomz197/warpteroids/internal/vector"
)

// Debug font cell size of ebitenutil.DebugPrintAt.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

// surface draws onto the ebiten screen of the current frame.
type surface struct {
	dst      *ebiten.Image
	white    *ebiten.Image // source texture for solid triangles
	vertices []ebiten.Vertex
	indices  []uint16
}

func newSurface() *surface {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &surface{
		white: img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Polygon fills points as a triangle fan around the first vertex. Every
// shape in the game is star-shaped from its first point.
func (s *surface) Polygon(points []vec.Vector, c color.Color) {
	if len(points) < 3 {
		return
	}
	// vertex colors use straight alpha
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	cr, cg, cb, ca := float32(n.R)/0xff, float32(n.G)/0xff, float32(n.B)/0xff, float32(n.A)/0xff

	s.vertices = s.vertices[:0]
	for _, p := range points {
		s.vertices = append(s.vertices, ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		})
	}
	s.indices = s.indices[:0]
	for i := 1; i+1 < len(points); i++ {
		s.indices = append(s.indices, 0, uint16(i), uint16(i+1))
	}
	s.dst.DrawTriangles(s.vertices, s.indices, s.white, &ebiten.DrawTrianglesOptions{})
}

func (s *surface) Ring(center vec.Vector, radius, width float64, c color.Color) {
	vector.StrokeCircle(s.dst, float32(center.X), float32(center.Y), float32(radius), float32(width), c, true)
}

func (s *surface) Dot(at vec.Vector, c color.Color) {
	vector.DrawFilledCircle(s.dst, float32(at.X), float32(at.Y), 1.5, c, true)
}

func (s *surface) Rect(lo, hi vec.Vector, c color.Color) {
	vector.DrawFilledRect(s.dst, float32(lo.X), float32(lo.Y), float32(hi.X-lo.X), float32(hi.Y-lo.Y), c, false)
}

// Text uses the debug font, which is always white; the color is ignored.
func (s *surface) Text(at vec.Vector, text string, align object.Align, _ color.Color) {
	x := int(at.X)
	switch align {
	case object.AlignCenter:
		x -= len(text) * glyphWidth / 2
	case object.AlignRight:
		x -= len(text) * glyphWidth
	}
	ebitenutil.DebugPrintAt(s.dst, text, x, int(at.Y)-glyphHeight*3/4)
}
