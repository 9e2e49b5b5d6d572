package game

import (
	"math"

	"github.com/tomz197/warpteroids/internal/config"
	"github.com/tomz197/warpteroids/internal/object"
)

// WaveSize returns the number of asteroids and UFOs and the asteroid
// complexity for a level.
func WaveSize(level int) (asteroids, ufos, maxComplexity int) {
	l := float64(level)
	asteroids = int(math.Floor(config.InitAsteroidCount + l*config.AsteroidLevelAddition))
	ufos = int(math.Floor(config.InitUFOCount + l*config.UFOLevelAddition))
	maxComplexity = min(object.AsteroidMaxNodes, int(math.Floor(object.AsteroidMinNodes+l*config.AsteroidNodesAddition)))
	return asteroids, ufos, maxComplexity
}

// nextLevel increments the level and spawns its wave directly into play.
func (w *World) nextLevel() {
	w.level++
	asteroids, ufos, complexity := WaveSize(w.level)
	w.maxComplexity = complexity

	for i := 0; i < asteroids; i++ {
		w.asteroids = append(w.asteroids, object.NewAsteroid(w))
	}
	for i := 0; i < ufos; i++ {
		w.ufos = append(w.ufos, object.NewUFO(w))
	}
	w.log.Info("level started", "level", w.level, "asteroids", asteroids, "ufos", ufos, "complexity", complexity)
}
