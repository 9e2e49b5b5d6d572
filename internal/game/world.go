// Package game owns the simulation: the world with its entities, the
// per-frame update sequence and the game state machine.
package game

import (
	"fmt"
	"image/color"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/image/colornames"

	"github.com/tomz197/warpteroids/internal/config"
	"github.com/tomz197/warpteroids/internal/input"
	"github.com/tomz197/warpteroids/internal/object"
	"github.com/tomz197/warpteroids/internal/physics"
	"github.com/tomz197/warpteroids/internal/vector"
)

// World holds the whole game: entities, score, level, input and the current
// game state. It is not safe for concurrent use; one goroutine drives it
// frame by frame.
type World struct {
	log   *log.Logger
	rng   *rand.Rand
	board Board

	ship      *object.Ship
	shipGone  bool // ship score already collected
	bullets   []*object.Bullet
	asteroids []*object.Asteroid
	ufos      []*object.UFO
	particles []*object.Particle
	toSpawn   []object.Object // objects to add after the current update

	score         int
	level         int
	maxComplexity int

	state State
	curr  input.Commands
	prev  input.Commands

	events     []object.Event
	lastEvents []object.Event
	listeners  []Listener

	broadPhase bool
	grid       *physics.SpatialGrid
	scratch    []object.Object
	candidates []int

	frame uint64
}

// New creates a world in the Play state with a fresh ship and no enemies,
// so the first frame starts preparing level 1.
func New(opts ...Option) *World {
	w := &World{
		log:           log.New(io.Discard),
		board:         DefaultBoard(),
		maxComplexity: object.AsteroidMinNodes,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.rng == nil {
		w.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	w.grid = physics.NewSpatialGrid(w.board.WarpBounds(), config.CollisionCellSize)
	w.ship = object.NewShip(w.board.Center())
	w.state = &Play{}
	return w
}

// Reset restarts the game: new ship, score and level zeroed, every entity
// removed and the state set to Preparing.
func (w *World) Reset() {
	w.ship = object.NewShip(w.board.Center())
	w.shipGone = false
	w.level = 0
	w.score = 0
	w.maxComplexity = object.AsteroidMinNodes
	w.bullets = w.bullets[:0]
	w.asteroids = w.asteroids[:0]
	w.ufos = w.ufos[:0]
	w.releaseParticles()
	w.toSpawn = w.toSpawn[:0]
	w.log.Info("game restarted")
	w.switchState(newPreparing(w))
}

// SetInput stores the commands for the next frame.
func (w *World) SetInput(c input.Commands) {
	w.curr = c
}

// Frame runs one simulation step and renders into s when s is not nil.
func (w *World) Frame(s object.Surface) error {
	w.frame++

	w.state.act(w)
	w.state.handleInput(w)
	if err := w.state.update(w); err != nil {
		return fmt.Errorf("frame %d: %w", w.frame, err)
	}
	w.collectGarbage()

	if s != nil {
		w.Render(s)
	}
	if w.ship.ToDispose {
		w.state.handleGameEnd(w)
	}

	w.prev = w.curr
	w.dispatch()
	return nil
}

// Step runs one frame without rendering.
func (w *World) Step() error {
	return w.Frame(nil)
}

// Render draws the background, the current state and the info bar.
func (w *World) Render(s object.Surface) {
	s.Rect(vector.New(0, 0), vector.New(w.board.Width, w.board.Height), colornames.Black)
	w.state.render(w, s)
	w.renderInfoBar(s)
}

// Spawn queues obj; it joins its collection after the current update.
func (w *World) Spawn(obj object.Object) {
	w.toSpawn = append(w.toSpawn, obj)
}

// Emit records ev for delivery after the frame.
func (w *World) Emit(ev object.Event) {
	w.events = append(w.events, ev)
}

func (w *World) Rand() *rand.Rand {
	return w.rng
}

// RandomLocation picks a uniform point in the spawn bounds.
func (w *World) RandomLocation() vector.Vector {
	return w.board.SpawnBounds().RandomPoint(w.rng)
}

// Target returns the ship location while the ship is in play.
func (w *World) Target() (vector.Vector, bool) {
	if w.ship == nil || w.ship.ToDispose {
		return vector.Vector{}, false
	}
	return w.ship.Location, true
}

func (w *World) MaxAsteroidComplexity() int {
	return w.maxComplexity
}

func (w *World) Score() int                    { return w.score }
func (w *World) Level() int                    { return w.level }
func (w *World) Ship() *object.Ship            { return w.ship }
func (w *World) Asteroids() []*object.Asteroid { return w.asteroids }
func (w *World) Bullets() []*object.Bullet     { return w.bullets }
func (w *World) UFOs() []*object.UFO           { return w.ufos }
func (w *World) Particles() []*object.Particle { return w.particles }
func (w *World) State() State                  { return w.state }
func (w *World) Board() Board                  { return w.board }
func (w *World) Frames() uint64                { return w.frame }

// Events returns the events delivered at the end of the last frame.
func (w *World) Events() []object.Event {
	return append([]object.Event(nil), w.lastEvents...)
}

// LevelCleared reports whether no asteroid and no UFO is left.
func (w *World) LevelCleared() bool {
	return len(w.asteroids) == 0 && len(w.ufos) == 0
}

func (w *World) switchState(next State) {
	w.log.Debug("game state", "from", w.state.Name(), "to", next.Name(), "frame", w.frame)
	w.state = next
}

// flushSpawned adds all queued objects to their collections and clears the queue.
func (w *World) flushSpawned() error {
	for _, obj := range w.toSpawn {
		switch o := obj.(type) {
		case *object.Asteroid:
			w.asteroids = append(w.asteroids, o)
		case *object.Bullet:
			w.bullets = append(w.bullets, o)
		case *object.UFO:
			w.ufos = append(w.ufos, o)
		default:
			return fmt.Errorf("spawn: %w", object.Validate(obj))
		}
	}
	clear(w.toSpawn)
	w.toSpawn = w.toSpawn[:0]
	return nil
}

// forEachObject visits bullets, asteroids, UFOs and finally the ship.
func (w *World) forEachObject(fn func(object.Object)) {
	for _, b := range w.bullets {
		fn(b)
	}
	for _, a := range w.asteroids {
		fn(a)
	}
	for _, u := range w.ufos {
		fn(u)
	}
	fn(w.ship)
}

// updateObjects is the default state update: move everything, wrap or
// dispose what left the board, resolve collisions, then admit spawned objects.
func (w *World) updateObjects() error {
	w.forEachObject(func(o object.Object) {
		o.Act(w)
	})

	bounds := w.board.WarpBounds()
	w.forEachObject(func(o object.Object) {
		if o.Base().IsOutsideBounds(bounds) {
			o.HandleBorderCross(bounds)
		}
	})

	if err := w.handleCollisions(); err != nil {
		return err
	}
	if err := w.flushSpawned(); err != nil {
		return err
	}
	w.updateEffects()
	return nil
}

func (w *World) updateEffects() {
	kept := w.particles[:0]
	for _, p := range w.particles {
		if p.Act() {
			p.Release()
			continue
		}
		kept = append(kept, p)
	}
	clear(w.particles[len(kept):])
	w.particles = kept
}

func (w *World) releaseParticles() {
	for _, p := range w.particles {
		p.Release()
	}
	clear(w.particles)
	w.particles = w.particles[:0]
}

// collectGarbage removes disposed objects and awards their score once.
func (w *World) collectGarbage() {
	w.bullets = sweep(w.bullets, &w.score)
	w.asteroids = sweep(w.asteroids, &w.score)
	w.ufos = sweep(w.ufos, &w.score)

	if w.ship.ToDispose && !w.shipGone {
		w.shipGone = true
		w.score += w.ship.Score
	}
}

func sweep[T object.Object](objs []T, score *int) []T {
	kept := objs[:0]
	for _, o := range objs {
		if b := o.Base(); b.ToDispose {
			*score += b.Score
			continue
		}
		kept = append(kept, o)
	}
	clear(objs[len(kept):])
	return kept
}

func (w *World) renderObjects(s object.Surface) {
	w.forEachObject(func(o object.Object) {
		o.Render(s)
	})
	for _, p := range w.particles {
		p.Render(s)
	}
}

func burstColor(t object.EventType) color.RGBA {
	switch t {
	case object.EventShipExploded:
		return colornames.Orangered
	case object.EventUFODestroyed:
		return colornames.Yellow
	default:
		return colornames.Lightgrey
	}
}
