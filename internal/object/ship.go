package object

import (
	"math"

	"golang.org/x/image/colornames"

	"github.com/tomz197/warpteroids/internal/physics"
	"github.com/tomz197/warpteroids/internal/vector"
)

// Ship tuning.
const (
	ShipSpeed = 4.0
	ShipLives = 3

	// ShipSteeringAngle is the heading change per frame of steering (2 degrees).
	ShipSteeringAngle = math.Pi / 90

	ShipInvincibleDuration = 180 // frames
	ShipTimeToWarp         = 120 // frames
	ShipWarpCooldown       = 600.0

	// bullets spawn past the nose so they do not hit the ship
	shipBulletSpawnMult = 1.2
)

var (
	shipDirection = vector.New(0, 1)
	shipShape     = physics.Shape{
		vector.New(0, 15),
		vector.New(10, -5),
		vector.New(10, -15),
		vector.New(0, -5),
		vector.New(-10, -15),
		vector.New(-10, -5),
	}

	// ShipColor is the regular hull color, ShipWarpingColor is used while warping.
	ShipColor        = colornames.Red
	ShipWarpingColor = colornames.Blue
)

// Ship is the player-controlled spaceship. Its behavior on warp requests and
// collisions is delegated to the current ShipState.
type Ship struct {
	Body
	Lives        int
	WarpCooldown float64

	state ShipState
}

// NewShip creates a ship at location heading down the board, in the Alive state.
func NewShip(location vector.Vector) *Ship {
	s := &Ship{
		Body:         newBody(location, shipDirection.Scale(ShipSpeed), physics.Shape(vector.Copy(shipShape)), ShipColor, 0),
		Lives:        ShipLives,
		WarpCooldown: ShipWarpCooldown,
	}
	s.state = &Alive{}
	s.state.enter(s, nil)
	return s
}

func (s *Ship) Kind() Kind  { return KindSpaceShip }
func (s *Ship) Base() *Body { return &s.Body }
func (s *Ship) sealed()     {}

// State returns the current ship state.
func (s *Ship) State() ShipState {
	return s.state
}

// SetState replaces the current state and runs its entry actions.
func (s *Ship) SetState(next ShipState, env Env) {
	s.state = next
	next.enter(s, env)
}

// SteerLeft turns the ship counter-clockwise by ShipSteeringAngle.
func (s *Ship) SteerLeft() {
	s.steer(-ShipSteeringAngle)
}

// SteerRight turns the ship clockwise by ShipSteeringAngle.
func (s *Ship) SteerRight() {
	s.steer(ShipSteeringAngle)
}

func (s *Ship) steer(angle float64) {
	s.Velocity = s.Velocity.Rotate(angle)
	s.Rotate(angle)
}

// Shoot fires a bullet from the nose of the ship along its heading.
func (s *Ship) Shoot(env Env) {
	at := s.Location.Add(s.Shape[0].Scale(shipBulletSpawnMult))
	env.Spawn(NewBullet(at, s.Velocity))
	env.Emit(Event{Type: EventBulletFired, At: at})
}

// Warp requests a teleport. Whether it starts depends on the state and cooldown.
func (s *Ship) Warp(env Env) {
	s.state.warp(s, env)
}

func (s *Ship) Act(env Env) {
	s.Body.Act()
	s.state.act(s, env)
}

func (s *Ship) HandleBorderCross(bounds physics.Bounds) {
	s.WarpBack(bounds)
}

func (s *Ship) HandleCollision(_ Object, env Env) {
	s.state.collide(s, env)
}

func (s *Ship) Render(surf Surface) {
	s.render(surf)
	s.state.render(s, surf)
}

// WarpReadiness returns how far the warp cooldown has elapsed, in [0, 1].
func (s *Ship) WarpReadiness() float64 {
	return math.Max(0, math.Min(1, 1-s.WarpCooldown/ShipWarpCooldown))
}

// loseLife takes a life and moves to Invincible, or to Dead on the last one.
func (s *Ship) loseLife(env Env) {
	s.Lives--
	if env != nil {
		env.Emit(Event{Type: EventShipExploded, At: s.Location})
	}
	if s.Lives > 0 {
		s.SetState(NewInvincible(), env)
		return
	}
	s.SetState(&Dead{}, env)
}
