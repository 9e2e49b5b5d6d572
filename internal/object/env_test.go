package object

import (
	"image/color"
	"math/rand"

	"github.com/tomz197/warpteroids/internal/vector"
)

// testEnv records what objects ask of the world.
type testEnv struct {
	rng        *rand.Rand
	spawned    []Object
	events     []Event
	location   vector.Vector
	target     vector.Vector
	hasTarget  bool
	complexity int
}

func newTestEnv() *testEnv {
	return &testEnv{
		rng:        rand.New(rand.NewSource(1)),
		location:   vector.New(500, 300),
		complexity: AsteroidMinNodes,
	}
}

func (e *testEnv) Spawn(obj Object)              { e.spawned = append(e.spawned, obj) }
func (e *testEnv) Emit(ev Event)                 { e.events = append(e.events, ev) }
func (e *testEnv) Rand() *rand.Rand              { return e.rng }
func (e *testEnv) RandomLocation() vector.Vector { return e.location }
func (e *testEnv) Target() (vector.Vector, bool) { return e.target, e.hasTarget }
func (e *testEnv) MaxAsteroidComplexity() int    { return e.complexity }

func (e *testEnv) count(t EventType) int {
	n := 0
	for _, ev := range e.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

// recordSurface counts draw calls.
type recordSurface struct {
	polygons int
	rings    int
	dots     int
	texts    []string
}

func (s *recordSurface) Polygon([]vector.Vector, color.Color)              { s.polygons++ }
func (s *recordSurface) Ring(vector.Vector, float64, float64, color.Color) { s.rings++ }
func (s *recordSurface) Dot(vector.Vector, color.Color)                    { s.dots++ }
func (s *recordSurface) Rect(vector.Vector, vector.Vector, color.Color)    {}
func (s *recordSurface) Text(_ vector.Vector, text string, _ Align, _ color.Color) {
	s.texts = append(s.texts, text)
}
