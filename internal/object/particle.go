package object

import (
	"image/color"
	"math"
	"math/rand"
	"sync"

	"github.com/tomz197/warpteroids/internal/vector"
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived cosmetic spark. Particles never collide and are
// never scored.
type Particle struct {
	Location vector.Vector
	Velocity vector.Vector
	Life     int     // frames remaining
	MaxLife  int     // initial life, for fading
	Drag     float64 // velocity factor per frame (1.0 = no drag)
	Color    color.RGBA
}

// NewParticle takes a particle from the pool and initializes it.
func NewParticle(location, velocity vector.Vector, life int, c color.RGBA) *Particle {
	p := particlePool.Get().(*Particle)
	p.Location = location
	p.Velocity = velocity
	p.Life = life
	p.MaxLife = life
	p.Drag = 0.95
	p.Color = c
	return p
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the game.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// Burst creates count particles flying out of at in random directions.
// Speeds vary from 50% to 150% of speed, lifetimes from 50% to 100% of life.
func Burst(r *rand.Rand, at vector.Vector, count int, speed float64, life int, c color.RGBA) []*Particle {
	out := make([]*Particle, 0, count)
	for i := 0; i < count; i++ {
		angle := r.Float64() * 2 * math.Pi
		spd := speed * (0.5 + r.Float64())
		l := int(float64(life) * (0.5 + r.Float64()*0.5))
		if l < 1 {
			l = 1
		}
		vel := vector.New(math.Cos(angle), math.Sin(angle)).Scale(spd)
		out = append(out, NewParticle(at, vel, l, c))
	}
	return out
}

// Act advances the particle by one frame and reports whether it expired.
func (p *Particle) Act() bool {
	p.Life--
	if p.Life <= 0 {
		return true
	}
	p.Velocity = p.Velocity.Scale(p.Drag)
	p.Location.Translate(p.Velocity)
	return false
}

// Render draws the particle. Particles in their last quarter of life are hidden.
func (p *Particle) Render(s Surface) {
	if p.MaxLife > 0 && p.Life*4 < p.MaxLife {
		return
	}
	s.Dot(p.Location, p.Color)
}
