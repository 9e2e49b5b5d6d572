// Package vector provides 2D vector arithmetic used by all game geometry.
//
// Vectors are plain values: every operation returns a new Vector and leaves
// its operands untouched. Translate is the single in-place mutator, used on
// the per-frame movement path.
package vector

import (
	"errors"
	"math"
	"math/rand"
	"strconv"
)

// ErrZeroLength is returned when a zero vector would have to be normalized.
var ErrZeroLength = errors.New("vector: zero length")

// Vector is a 2D vector (or point) in board coordinates.
type Vector struct {
	X, Y float64
}

// New creates a vector from its components.
func New(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vector) Scale(k float64) Vector {
	return Vector{X: v.X * k, Y: v.Y * k}
}

// Dot returns the dot product of v and o.
func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Magnitude returns the Euclidean length of v.
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns v scaled to unit length.
// Returns ErrZeroLength if v has no direction.
func (v Vector) Normalize() (Vector, error) {
	m := v.Magnitude()
	if m == 0 {
		return Vector{}, ErrZeroLength
	}
	return Vector{X: v.X / m, Y: v.Y / m}, nil
}

// Unit is Normalize for callers that accept a zero result for a zero vector.
func (v Vector) Unit() Vector {
	u, err := v.Normalize()
	if err != nil {
		return Vector{}
	}
	return u
}

// Rotate returns v rotated counter-clockwise by angle radians.
func (v Vector) Rotate(angle float64) Vector {
	sin, cos := math.Sincos(angle)
	return Vector{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Perpendicular returns v rotated by 90 degrees: (x, y) -> (-y, x).
func (v Vector) Perpendicular() Vector {
	return Vector{X: -v.Y, Y: v.X}
}

// IsZero reports whether both components are zero.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Translate moves v by d in place.
func (v *Vector) Translate(d Vector) {
	v.X += d.X
	v.Y += d.Y
}

// String formats the vector as [x, y].
func (v Vector) String() string {
	return "[" + strconv.FormatFloat(v.X, 'g', -1, 64) + ", " + strconv.FormatFloat(v.Y, 'g', -1, 64) + "]"
}

// RandomUnit returns a unit vector with a random direction drawn from r.
func RandomUnit(r *rand.Rand) Vector {
	for {
		v := Vector{X: -1 + r.Float64()*2, Y: -1 + r.Float64()*2}
		if u, err := v.Normalize(); err == nil {
			return u
		}
	}
}

// Copy returns a deep copy of a slice of vectors.
func Copy(vs []Vector) []Vector {
	out := make([]Vector, len(vs))
	copy(out, vs)
	return out
}

// RotateAll returns every vector in vs rotated by angle.
func RotateAll(vs []Vector, angle float64) []Vector {
	out := make([]Vector, len(vs))
	for i, v := range vs {
		out[i] = v.Rotate(angle)
	}
	return out
}
