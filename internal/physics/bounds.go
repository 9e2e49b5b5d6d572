package physics

import (
	"math/rand"

	"github.com/tomz197/warpteroids/internal/vector"
)

// Bounds is an axis-aligned rectangle on the board.
type Bounds struct {
	Left, Right, Top, Bottom float64
}

// Width returns the horizontal extent of b.
func (b Bounds) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of b.
func (b Bounds) Height() float64 {
	return b.Bottom - b.Top
}

// Center returns the middle point of b.
func (b Bounds) Center() vector.Vector {
	return vector.New((b.Left+b.Right)/2, (b.Top+b.Bottom)/2)
}

// Outside reports whether p lies beyond any of the four edges.
// Points exactly on an edge are inside.
func (b Bounds) Outside(p vector.Vector) bool {
	return p.X < b.Left || b.Right < p.X || p.Y < b.Top || b.Bottom < p.Y
}

// Wrap moves a point that left b to the opposite edge (Asteroids-style).
func (b Bounds) Wrap(p vector.Vector) vector.Vector {
	return vector.New(Warp(b.Left, p.X, b.Right), Warp(b.Top, p.Y, b.Bottom))
}

// RandomPoint returns a uniformly distributed point inside b.
func (b Bounds) RandomPoint(r *rand.Rand) vector.Vector {
	return vector.New(
		b.Left+r.Float64()*b.Width(),
		b.Top+r.Float64()*b.Height(),
	)
}

// Warp wraps a 1D position into [lo, hi]. Positions on the boundary are kept.
func Warp(lo, pos, hi float64) float64 {
	switch {
	case pos < lo:
		return hi - (lo - pos)
	case hi < pos:
		return lo + (pos - hi)
	default:
		return pos
	}
}
