// Package physics provides collision detection and response primitives.
package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/tomz197/warpteroids/internal/vector"
)

var (
	// ErrEmptyShape is returned when a collision test receives a polygon without points.
	ErrEmptyShape = errors.New("physics: empty shape")
	// ErrDegenerateEdge is returned when two consecutive polygon points coincide.
	ErrDegenerateEdge = errors.New("physics: degenerate edge")
)

// Shape is a convex polygon in object-local coordinates.
// Edges connect consecutive points and the last point back to the first.
type Shape []vector.Vector

// Interval is the projection of a shape onto an axis.
type Interval struct {
	Min, Max float64
}

// Disjoint reports whether the two intervals do not overlap.
// Touching intervals (Max == other.Min) are not disjoint.
func (i Interval) Disjoint(o Interval) bool {
	return i.Max < o.Min || o.Max < i.Min
}

// Overlap returns how far the two intervals penetrate each other.
// Returns 0 when they are disjoint.
func (i Interval) Overlap(o Interval) float64 {
	switch {
	case i.Min <= o.Min && o.Min <= i.Max:
		return i.Max - o.Min
	case o.Min <= i.Min && i.Min <= o.Max:
		return o.Max - i.Min
	default:
		return 0
	}
}

// Distance calculates the Euclidean distance between two points.
func Distance(a, b vector.Vector) float64 {
	return b.Sub(a).Magnitude()
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(a, b vector.Vector) float64 {
	d := b.Sub(a)
	return d.Dot(d)
}

// Radius returns the largest distance from the local origin to any point of s.
func (s Shape) Radius() float64 {
	r := 0.0
	for _, p := range s {
		r = math.Max(r, p.Magnitude())
	}
	return r
}

// Axes returns the normalized edge normals of s, one per edge.
func Axes(s Shape) ([]vector.Vector, error) {
	if len(s) == 0 {
		return nil, ErrEmptyShape
	}
	axes := make([]vector.Vector, 0, len(s))
	for i, p := range s {
		next := s[(i+1)%len(s)]
		axis, err := next.Sub(p).Perpendicular().Normalize()
		if err != nil {
			return nil, fmt.Errorf("%w: edge %d", ErrDegenerateEdge, i)
		}
		axes = append(axes, axis)
	}
	return axes, nil
}

// Project projects s, translated to location, onto axis.
// s must not be empty.
func Project(s Shape, location, axis vector.Vector) Interval {
	p := s[0].Add(location).Dot(axis)
	iv := Interval{Min: p, Max: p}
	for _, pt := range s[1:] {
		p = pt.Add(location).Dot(axis)
		if p < iv.Min {
			iv.Min = p
		} else if p > iv.Max {
			iv.Max = p
		}
	}
	return iv
}

// Intersects runs the separating axis test on two convex polygons placed at
// their locations. Touching polygons intersect.
func Intersects(a Shape, aAt vector.Vector, b Shape, bAt vector.Vector) (bool, error) {
	axesA, err := Axes(a)
	if err != nil {
		return false, err
	}
	axesB, err := Axes(b)
	if err != nil {
		return false, err
	}
	for _, axes := range [2][]vector.Vector{axesA, axesB} {
		for _, axis := range axes {
			if Project(a, aAt, axis).Disjoint(Project(b, bAt, axis)) {
				return false, nil
			}
		}
	}
	return true, nil
}

// ElasticVelocities returns the final velocities of two bodies after a 1D
// elastic collision along one axis.
func ElasticVelocities(v1, m1, v2, m2 float64) (v1f, v2f float64) {
	v2f = (2*m1*v1 + m2*v2 - m1*v2) / (m1 + m2)
	v1f = v2 - v1 + v2f
	return v1f, v2f
}
