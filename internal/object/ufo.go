package object

import (
	"golang.org/x/image/colornames"

	"github.com/tomz197/warpteroids/internal/physics"
	"github.com/tomz197/warpteroids/internal/vector"
)

// UFO tuning.
const (
	UFOSpeed        = 2.5
	UFOReactionTime = 40 // frames between re-aiming
	UFOScore        = 1000

	ufoOuterSize = 7.5
	ufoInnerSize = 2.5
	// bullets spawn this many outer sizes ahead so they clear the hull
	ufoBulletSpawnMult = 5.0
)

func octagon(s float64) physics.Shape {
	return physics.Shape{
		vector.New(s, -2*s),
		vector.New(2*s, -s),
		vector.New(2*s, s),
		vector.New(s, 2*s),
		vector.New(-s, 2*s),
		vector.New(-2*s, s),
		vector.New(-2*s, -s),
		vector.New(-s, -2*s),
	}
}

// UFO is an enemy fighter that periodically turns toward the ship and shoots.
type UFO struct {
	Body
	// InnerShape is cosmetic and never collides.
	InnerShape    physics.Shape
	ReactionTimer int
}

// NewUFO creates a UFO at a random location with a random heading.
func NewUFO(env Env) *UFO {
	return NewUFOAt(env.RandomLocation(), vector.RandomUnit(env.Rand()).Scale(UFOSpeed))
}

// NewUFOAt creates a UFO with explicit kinematics.
func NewUFOAt(location, velocity vector.Vector) *UFO {
	return &UFO{
		Body:          newBody(location, velocity, octagon(ufoOuterSize), colornames.Yellow, UFOScore),
		InnerShape:    octagon(ufoInnerSize),
		ReactionTimer: UFOReactionTime,
	}
}

func (u *UFO) Kind() Kind  { return KindUFO }
func (u *UFO) Base() *Body { return &u.Body }
func (u *UFO) sealed()     {}

func (u *UFO) Act(env Env) {
	u.Body.Act()

	if u.ReactionTimer > 0 {
		u.ReactionTimer--
		return
	}
	u.ReactionTimer = UFOReactionTime

	target, ok := env.Target()
	if !ok {
		return
	}
	way := target.Sub(u.Location).Unit()
	if way.IsZero() {
		return
	}
	u.Velocity = way.Scale(UFOSpeed)
	u.shoot(way, env)
}

func (u *UFO) shoot(way vector.Vector, env Env) {
	at := u.Location.Add(way.Scale(ufoOuterSize * ufoBulletSpawnMult))
	env.Spawn(NewBullet(at, way))
	env.Emit(Event{Type: EventBulletFired, At: at})
}

func (u *UFO) HandleBorderCross(bounds physics.Bounds) {
	u.WarpBack(bounds)
}

func (u *UFO) HandleCollision(other Object, env Env) {
	switch other.Kind() {
	case KindAsteroid, KindBullet:
		if u.ToDispose {
			return
		}
		u.ToDispose = true
		env.Emit(Event{Type: EventUFODestroyed, At: u.Location})
	}
}

func (u *UFO) Render(s Surface) {
	if !u.Visible {
		return
	}
	u.render(s)
	inner := make([]vector.Vector, len(u.InnerShape))
	for i, p := range u.InnerShape {
		inner[i] = p.Add(u.Location)
	}
	s.Polygon(inner, colornames.White)
}
