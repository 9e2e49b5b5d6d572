package object

import (
	"math"

	"golang.org/x/image/colornames"

	"github.com/tomz197/warpteroids/internal/physics"
	"github.com/tomz197/warpteroids/internal/vector"
)

// Asteroid tuning.
const (
	AsteroidMinSpeed = 1.0
	AsteroidMaxSpeed = 3.0

	AsteroidMinNodes = 3
	AsteroidMaxNodes = 8

	AsteroidNodeMass   = 100.0 // mass per polygon node
	AsteroidMinMass    = 100.0 // lighter fragments are not spawned
	AsteroidMinRadius  = 10.0
	AsteroidNodeRadius = 5.0 // radius gained per node of mass

	// AsteroidBumpDelta is added to the overlap so bumped asteroids stop touching.
	AsteroidBumpDelta = 1.0
	// AsteroidBreakAngle rotates fragment velocities away from the parent's.
	AsteroidBreakAngle = math.Pi / 3
)

// Asteroid is an uncontrollable rock. Shape, radius and score follow its mass.
type Asteroid struct {
	Body
	Mass float64
}

// NewAsteroid creates an asteroid at a random location with a random
// velocity and a random mass bounded by the current difficulty.
func NewAsteroid(env Env) *Asteroid {
	r := env.Rand()
	speed := AsteroidMinSpeed + r.Float64()*(AsteroidMaxSpeed-AsteroidMinSpeed)
	velocity := vector.RandomUnit(r).Scale(speed)
	return NewAsteroidAt(env.RandomLocation(), velocity, RandomAsteroidMass(env))
}

// NewAsteroidAt creates an asteroid with explicit kinematics and mass.
func NewAsteroidAt(location, velocity vector.Vector, mass float64) *Asteroid {
	return &Asteroid{
		Body: newBody(location, velocity, AsteroidShape(mass), colornames.Grey, int(math.Floor(mass))),
		Mass: mass,
	}
}

// RandomAsteroidMass draws a mass from
// [AsteroidMinMass, AsteroidMinMass + (maxComplexity-AsteroidMinNodes)*AsteroidNodeMass).
func RandomAsteroidMass(env Env) float64 {
	span := float64(env.MaxAsteroidComplexity()-AsteroidMinNodes) * AsteroidNodeMass
	if span < 0 {
		span = 0
	}
	return AsteroidMinMass + env.Rand().Float64()*span
}

// AsteroidNodes is the number of polygon nodes for an asteroid of the given mass.
func AsteroidNodes(mass float64) int {
	return int(math.Floor(mass/AsteroidMinMass)) + (AsteroidMinNodes - 1)
}

// AsteroidRadius is the circumradius for an asteroid of the given mass.
func AsteroidRadius(mass float64) float64 {
	return AsteroidMinRadius + AsteroidNodeRadius*mass/AsteroidNodeMass
}

// AsteroidShape builds a regular polygon for mass, starting at (0, radius).
func AsteroidShape(mass float64) physics.Shape {
	nodes := AsteroidNodes(mass)
	if nodes < AsteroidMinNodes {
		nodes = AsteroidMinNodes
	}
	base := vector.New(0, AsteroidRadius(mass))
	step := 2 * math.Pi / float64(nodes)

	shape := make(physics.Shape, nodes)
	for i := range shape {
		shape[i] = base.Rotate(float64(i) * step)
	}
	return shape
}

func (a *Asteroid) Kind() Kind  { return KindAsteroid }
func (a *Asteroid) Base() *Body { return &a.Body }
func (a *Asteroid) Act(Env)     { a.Body.Act() }
func (a *Asteroid) sealed()     {}

func (a *Asteroid) HandleBorderCross(bounds physics.Bounds) {
	a.WarpBack(bounds)
}

func (a *Asteroid) HandleCollision(other Object, env Env) {
	switch o := other.(type) {
	case *Asteroid:
		Bounce(a, o)
		env.Emit(Event{Type: EventAsteroidBump, At: a.Location})
	case *Bullet, *UFO:
		a.destroy(env)
	}
}

func (a *Asteroid) Render(s Surface) {
	a.render(s)
}

// Bounce separates two touching asteroids along the line between their
// centers and exchanges momentum on each world axis.
func Bounce(a, b *Asteroid) {
	axis := b.Location.Sub(a.Location).Unit()
	if axis.IsZero() {
		axis = vector.New(1, 0)
	}

	overlap := physics.Project(a.Shape, a.Location, axis).Overlap(physics.Project(b.Shape, b.Location, axis))
	overlap += AsteroidBumpDelta
	a.Location.Translate(axis.Scale(-overlap / 2))
	b.Location.Translate(axis.Scale(overlap / 2))

	ax, bx := physics.ElasticVelocities(a.Velocity.X, a.Mass, b.Velocity.X, b.Mass)
	ay, by := physics.ElasticVelocities(a.Velocity.Y, a.Mass, b.Velocity.Y, b.Mass)
	a.Velocity = vector.New(ax, ay)
	b.Velocity = vector.New(bx, by)
}

// Fragments returns the two children a destroyed asteroid breaks into, or
// nil when the remaining mass is below AsteroidMinMass. Children each carry
// mass-AsteroidNodeMass and sit on both sides of the flight path.
func (a *Asteroid) Fragments() []*Asteroid {
	mass := a.Mass - AsteroidNodeMass
	if mass < AsteroidMinMass {
		return nil
	}

	side := a.Velocity.Perpendicular().Unit().Scale(AsteroidRadius(mass))
	return []*Asteroid{
		NewAsteroidAt(a.Location.Sub(side), a.Velocity.Rotate(-AsteroidBreakAngle), mass),
		NewAsteroidAt(a.Location.Add(side), a.Velocity.Rotate(AsteroidBreakAngle), mass),
	}
}

func (a *Asteroid) destroy(env Env) {
	if a.ToDispose {
		return
	}
	a.ToDispose = true
	env.Emit(Event{Type: EventAsteroidDestroyed, At: a.Location})
	for _, child := range a.Fragments() {
		env.Spawn(child)
	}
}
