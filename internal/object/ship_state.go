package object

import (
	"math"

	"golang.org/x/image/colornames"

	"github.com/tomz197/warpteroids/internal/vector"
)

// Warp portal look.
const (
	warpRadiusStart = 1.0
	warpRadiusEnd   = 20.0
	warpPortalWidth = 5.0
)

// ShipState is one node of the ship state machine: *Alive, *Invincible,
// *Warping or *Dead. A state receives the ship it controls as a parameter.
type ShipState interface {
	Name() string

	enter(s *Ship, env Env)
	act(s *Ship, env Env)
	warp(s *Ship, env Env)
	collide(s *Ship, env Env)
	render(s *Ship, surf Surface)
}

// Alive is the regular flying state.
type Alive struct{}

func (*Alive) Name() string { return "alive" }

func (*Alive) enter(s *Ship, _ Env) {
	s.Collidable = true
	s.Flickers = false
}

func (*Alive) act(s *Ship, _ Env) {
	s.WarpCooldown = math.Max(0, s.WarpCooldown-1)
}

func (*Alive) warp(s *Ship, env Env) {
	if s.WarpCooldown <= 0 {
		s.SetState(NewWarping(), env)
	}
}

func (*Alive) collide(s *Ship, env Env) {
	s.loseLife(env)
}

func (*Alive) render(*Ship, Surface) {}

// Invincible makes the ship flicker and ignore collisions for a while.
type Invincible struct {
	Timer int
}

// NewInvincible returns an Invincible state lasting ShipInvincibleDuration frames.
func NewInvincible() *Invincible {
	return &Invincible{Timer: ShipInvincibleDuration}
}

func (*Invincible) Name() string { return "invincible" }

func (*Invincible) enter(s *Ship, _ Env) {
	s.Collidable = false
	s.Flickers = true
}

func (st *Invincible) act(s *Ship, env Env) {
	s.WarpCooldown = math.Max(0, s.WarpCooldown-1)
	st.Timer--
	if st.Timer <= 0 {
		s.SetState(&Alive{}, env)
	}
}

// warp while invincible burns an extra cooldown frame until the warp is ready.
func (*Invincible) warp(s *Ship, env Env) {
	if s.WarpCooldown > 0 {
		s.WarpCooldown = math.Max(0, s.WarpCooldown-1)
		return
	}
	s.SetState(NewWarping(), env)
}

func (*Invincible) collide(*Ship, Env)    {}
func (*Invincible) render(*Ship, Surface) {}

// Warping charges a teleport to a random destination.
type Warping struct {
	Timer       int
	Origin      vector.Vector
	Destination vector.Vector
	Radius      float64

	cooldownStep float64
	radiusStep   float64
}

// NewWarping returns a Warping state lasting ShipTimeToWarp frames. The
// destination is picked when the state is entered.
func NewWarping() *Warping {
	return &Warping{
		Timer:        ShipTimeToWarp,
		Radius:       warpRadiusStart,
		cooldownStep: ShipWarpCooldown / ShipTimeToWarp,
		radiusStep:   (warpRadiusEnd - warpRadiusStart) / ShipTimeToWarp,
	}
}

func (*Warping) Name() string { return "warping" }

func (st *Warping) enter(s *Ship, env Env) {
	s.Color = ShipWarpingColor
	st.Origin = s.Location
	st.Destination = s.Location
	if env != nil {
		st.Destination = env.RandomLocation()
		env.Emit(Event{Type: EventWarpInitiated, At: s.Location})
	}
}

func (st *Warping) act(s *Ship, env Env) {
	st.Radius += st.radiusStep
	s.WarpCooldown += st.cooldownStep

	st.Timer--
	if st.Timer > 0 {
		return
	}
	s.Location = st.Destination
	s.Color = ShipColor
	s.WarpCooldown = ShipWarpCooldown
	s.SetState(NewInvincible(), env)
}

func (*Warping) warp(*Ship, Env) {}

// collide cancels the warp.
func (*Warping) collide(s *Ship, env Env) {
	s.Color = ShipColor
	s.WarpCooldown = ShipWarpCooldown
	s.loseLife(env)
}

func (st *Warping) render(_ *Ship, surf Surface) {
	surf.Ring(st.Origin, st.Radius, warpPortalWidth, colornames.Blue)
	surf.Ring(st.Destination, st.Radius, warpPortalWidth, colornames.Blue)
}

// Dead is terminal: the ship is disposed and ignores everything.
type Dead struct{}

func (*Dead) Name() string { return "dead" }

func (*Dead) enter(s *Ship, _ Env) {
	s.ToDispose = true
}

func (*Dead) act(*Ship, Env)        {}
func (*Dead) warp(*Ship, Env)       {}
func (*Dead) collide(*Ship, Env)    {}
func (*Dead) render(*Ship, Surface) {}
