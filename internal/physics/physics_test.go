package physics

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/tomz197/warpteroids/internal/vector"
)

func square(half float64) Shape {
	return Shape{
		vector.New(half, half),
		vector.New(-half, half),
		vector.New(-half, -half),
		vector.New(half, -half),
	}
}

func TestIntersectsSquaresAcrossContact(t *testing.T) {
	s := square(1) // 2x2 square, touching at center distance 2
	tests := []struct {
		name string
		dx   float64
		want bool
	}{
		{"overlapping", 1.0, true},
		{"nearly touching", 1.999, true},
		{"exact contact", 2.0, true},
		{"just apart", 2.001, false},
		{"far apart", 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Intersects(s, vector.New(0, 0), s, vector.New(tt.dx, 0))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Intersects at dx=%v = %v, want %v", tt.dx, got, tt.want)
			}
		})
	}
}

func TestIntersectsIsSymmetric(t *testing.T) {
	tri := Shape{vector.New(0, 5), vector.New(5, -5), vector.New(-5, -5)}
	sq := square(2)
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		at := vector.New(r.Float64()*20-10, r.Float64()*20-10)
		ab, err := Intersects(tri, vector.Vector{}, sq, at)
		if err != nil {
			t.Fatal(err)
		}
		ba, err := Intersects(sq, at, tri, vector.Vector{})
		if err != nil {
			t.Fatal(err)
		}
		if ab != ba {
			t.Fatalf("asymmetric result at %v: %v vs %v", at, ab, ba)
		}
	}
}

func TestIntersectsDiagonalGap(t *testing.T) {
	// Bounding boxes overlap but the rotated square sits in the triangle's gap.
	tri := Shape{vector.New(0, 0), vector.New(4, 0), vector.New(0, 4)}
	diamond := Shape{vector.New(0, 1), vector.New(1, 0), vector.New(0, -1), vector.New(-1, 0)}
	got, err := Intersects(tri, vector.Vector{}, diamond, vector.New(3.5, 3.5))
	if err != nil {
		t.Fatal(err)
	}
	if got {
		t.Error("expected separation along the hypotenuse normal")
	}
}

func TestIntersectsErrors(t *testing.T) {
	if _, err := Intersects(nil, vector.Vector{}, square(1), vector.Vector{}); !errors.Is(err, ErrEmptyShape) {
		t.Errorf("expected ErrEmptyShape, got %v", err)
	}
	dup := Shape{vector.New(1, 1), vector.New(1, 1), vector.New(0, 0)}
	if _, err := Intersects(square(1), vector.Vector{}, dup, vector.Vector{}); !errors.Is(err, ErrDegenerateEdge) {
		t.Errorf("expected ErrDegenerateEdge, got %v", err)
	}
}

func TestProject(t *testing.T) {
	iv := Project(square(1), vector.New(5, 0), vector.New(1, 0))
	if iv.Min != 4 || iv.Max != 6 {
		t.Errorf("Project = %+v, want {4 6}", iv)
	}
}

func TestIntervalOverlap(t *testing.T) {
	tests := []struct {
		a, b Interval
		want float64
	}{
		{Interval{0, 4}, Interval{3, 8}, 1},
		{Interval{3, 8}, Interval{0, 4}, 1},
		{Interval{0, 10}, Interval{2, 3}, 8},
		{Interval{0, 1}, Interval{2, 3}, 0},
	}
	for _, tt := range tests {
		if got := tt.a.Overlap(tt.b); got != tt.want {
			t.Errorf("%+v.Overlap(%+v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestElasticVelocitiesEqualMassesSwap(t *testing.T) {
	cases := [][2]float64{{3, -1}, {0, 5}, {-2.5, -2.5}, {7, 0}}
	for _, c := range cases {
		v1f, v2f := ElasticVelocities(c[0], 100, c[1], 100)
		if v1f != c[1] || v2f != c[0] {
			t.Errorf("equal masses %v: got (%v, %v), want swap", c, v1f, v2f)
		}
	}
}

func TestElasticVelocitiesConserveMomentumAndEnergy(t *testing.T) {
	m1, m2 := 150.0, 420.0
	v1, v2 := 2.0, -1.25
	v1f, v2f := ElasticVelocities(v1, m1, v2, m2)

	p0, p1 := m1*v1+m2*v2, m1*v1f+m2*v2f
	if math.Abs(p0-p1) > 1e-9 {
		t.Errorf("momentum not conserved: %v -> %v", p0, p1)
	}
	e0 := m1*v1*v1 + m2*v2*v2
	e1 := m1*v1f*v1f + m2*v2f*v2f
	if math.Abs(e0-e1) > 1e-9 {
		t.Errorf("energy not conserved: %v -> %v", e0, e1)
	}
}

func TestWarp(t *testing.T) {
	const left, right = 0.0, 100.0
	tests := []struct {
		name string
		pos  float64
		want float64
	}{
		{"inside", 40, 40},
		{"on right edge", right, right},
		{"on left edge", left, left},
		{"past right", right + 7, left + 7},
		{"past left", left - 3, right - 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Warp(left, tt.pos, right); got != tt.want {
				t.Errorf("Warp(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestWrapTwiceReturnsModuloWidth(t *testing.T) {
	b := Bounds{Left: -10, Right: 90, Top: 0, Bottom: 50}
	start := vector.New(30, 20)
	w := b.Width()

	p := start
	for i := 0; i < 2; i++ {
		p = vector.New(p.X+w/2+1, p.Y)
		if b.Outside(p) {
			p = b.Wrap(p)
		}
	}
	got := math.Mod(p.X-b.Left, w)
	want := math.Mod(start.X+w+2-b.Left, w)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("after two laps x=%v, want %v (mod %v)", got, want, w)
	}
}

func TestBoundsOutside(t *testing.T) {
	b := Bounds{Left: 0, Right: 10, Top: 0, Bottom: 10}
	if b.Outside(vector.New(10, 10)) {
		t.Error("corner should be inside")
	}
	if !b.Outside(vector.New(10.01, 5)) {
		t.Error("expected outside past right edge")
	}
	if !b.Outside(vector.New(5, -0.01)) {
		t.Error("expected outside above top edge")
	}
}

func TestShapeRadius(t *testing.T) {
	if r := square(3).Radius(); math.Abs(r-3*math.Sqrt2) > 1e-9 {
		t.Errorf("Radius = %v", r)
	}
}
