package game

import (
	"math/rand"

	"github.com/charmbracelet/log"
)

// Option configures a World.
type Option func(*World)

// WithRand sets the random source. Worlds sharing a seed and input replay identically.
func WithRand(r *rand.Rand) Option {
	return func(w *World) {
		w.rng = r
	}
}

// WithSeed is WithRand with a fresh source seeded by seed.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithLogger sets the logger used for state transitions and level changes.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		w.log = l
	}
}

// WithBoard overrides the board geometry.
func WithBoard(b Board) Option {
	return func(w *World) {
		w.board = b
	}
}

// WithListener registers a listener for domain events.
func WithListener(l Listener) Option {
	return func(w *World) {
		w.listeners = append(w.listeners, l)
	}
}

// WithBroadPhase enables the spatial grid for collision pair pruning.
// Pairs further apart than a grid cell are never tested.
func WithBroadPhase(enabled bool) Option {
	return func(w *World) {
		w.broadPhase = enabled
	}
}
