// Package object implements the game entities: the spaceship, bullets,
// asteroids and UFOs, together with the spaceship's state machine.
package object

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand"

	"github.com/tomz197/warpteroids/internal/physics"
	"github.com/tomz197/warpteroids/internal/vector"
)

// ErrUnknownVariant is returned when an Object or state outside the known set
// reaches code that must handle every variant.
var ErrUnknownVariant = errors.New("object: unknown variant")

// FlickerRate is the number of frames between visibility toggles of a flickering object.
const FlickerRate = 5

// Kind identifies the variant of an Object.
type Kind int

const (
	KindAsteroid Kind = iota
	KindBullet
	KindSpaceShip
	KindUFO
)

func (k Kind) String() string {
	switch k {
	case KindAsteroid:
		return "asteroid"
	case KindBullet:
		return "bullet"
	case KindSpaceShip:
		return "spaceship"
	case KindUFO:
		return "ufo"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Env is what an object may use from the world while acting or colliding.
type Env interface {
	// Spawn queues a new object. It becomes active from the next frame on.
	Spawn(obj Object)
	// Emit records a domain event for listeners (audio, effects).
	Emit(ev Event)
	// Rand is the world's random source.
	Rand() *rand.Rand
	// RandomLocation picks a spawn point inside the playable area.
	RandomLocation() vector.Vector
	// Target returns the spaceship location, if there is a ship.
	Target() (vector.Vector, bool)
	// MaxAsteroidComplexity is the current difficulty knob (max asteroid node count).
	MaxAsteroidComplexity() int
}

// Object is a simulated game entity. The set of variants is closed:
// *Asteroid, *Bullet, *Ship and *UFO.
type Object interface {
	// Kind returns the variant tag.
	Kind() Kind
	// Base returns the shared body state.
	Base() *Body
	// Act simulates one frame of the object's own behavior.
	Act(env Env)
	// HandleBorderCross is called when the object left the warp bounds.
	HandleBorderCross(bounds physics.Bounds)
	// HandleCollision reacts to touching other.
	HandleCollision(other Object, env Env)
	// Render draws the object.
	Render(s Surface)

	sealed()
}

// Body holds the state shared by all objects.
type Body struct {
	Location vector.Vector // board position of the shape origin
	Velocity vector.Vector // units per frame
	Shape    physics.Shape // convex polygon, local coordinates
	Color    color.RGBA
	Score    int // awarded when the object is disposed

	Collidable bool
	Visible    bool
	Flickers   bool
	ToDispose  bool

	flickerCount int
}

func newBody(location, velocity vector.Vector, shape physics.Shape, c color.RGBA, score int) Body {
	return Body{
		Location:     location,
		Velocity:     velocity,
		Shape:        shape,
		Color:        c,
		Score:        score,
		Collidable:   true,
		Visible:      true,
		flickerCount: FlickerRate,
	}
}

// Act moves the body by its velocity and advances the flicker cycle.
func (b *Body) Act() {
	b.Location.Translate(b.Velocity)
	b.flicker()
}

func (b *Body) flicker() {
	if !b.Flickers {
		b.Visible = true
		return
	}
	if b.flickerCount > 0 {
		b.flickerCount--
		return
	}
	b.Visible = !b.Visible
	b.flickerCount = FlickerRate
}

// Rotate turns the shape around the local origin.
func (b *Body) Rotate(angle float64) {
	b.Shape = physics.Shape(vector.RotateAll(b.Shape, angle))
}

// IsOutsideBounds reports whether the location left bounds.
func (b *Body) IsOutsideBounds(bounds physics.Bounds) bool {
	return bounds.Outside(b.Location)
}

// WarpBack wraps the location to the opposite edge of bounds.
func (b *Body) WarpBack(bounds physics.Bounds) {
	b.Location = bounds.Wrap(b.Location)
}

// Points returns the shape translated to the body location.
func (b *Body) Points() []vector.Vector {
	pts := make([]vector.Vector, len(b.Shape))
	for i, p := range b.Shape {
		pts[i] = p.Add(b.Location)
	}
	return pts
}

func (b *Body) render(s Surface) {
	if !b.Visible || len(b.Shape) == 0 {
		return
	}
	s.Polygon(b.Points(), b.Color)
}

// CollidesWith runs the separating axis test between a and b.
// Non-collidable objects never collide.
func CollidesWith(a, b Object) (bool, error) {
	ab, bb := a.Base(), b.Base()
	if !ab.Collidable || !bb.Collidable {
		return false, nil
	}
	hit, err := physics.Intersects(ab.Shape, ab.Location, bb.Shape, bb.Location)
	if err != nil {
		return false, fmt.Errorf("%s vs %s: %w", a.Kind(), b.Kind(), err)
	}
	return hit, nil
}

// Validate checks that obj is one of the known variants.
func Validate(obj Object) error {
	switch obj.(type) {
	case *Asteroid, *Bullet, *Ship, *UFO:
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnknownVariant, obj)
	}
}
