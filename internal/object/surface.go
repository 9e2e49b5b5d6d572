package object

import (
	"image/color"

	"github.com/tomz197/warpteroids/internal/vector"
)

// Align is the horizontal anchor of a text.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Surface is the rendering target. Coordinates are board units.
type Surface interface {
	// Polygon draws a filled closed polygon.
	Polygon(points []vector.Vector, c color.Color)
	// Ring draws a circle outline of the given stroke width.
	Ring(center vector.Vector, radius, width float64, c color.Color)
	// Dot draws a single small point.
	Dot(at vector.Vector, c color.Color)
	// Rect fills an axis-aligned rectangle.
	Rect(min, max vector.Vector, c color.Color)
	// Text draws a single line of text anchored at the given point.
	Text(at vector.Vector, s string, align Align, c color.Color)
}
