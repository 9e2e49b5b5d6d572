package sound

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/tomz197/warpteroids/internal/object"
)

// Effect builds the streamer played for an event type, scaled by volume.
// Returns nil for events without a sound.
func Effect(t object.EventType, rate beep.SampleRate, volume float64, seed int64) beep.Streamer {
	switch t {
	case object.EventBulletFired:
		pew := NewTone(WaveSquare, 1200, 300, 90*time.Millisecond, rate, seed)
		return gain(NewDecay(pew, 2*time.Millisecond, 12, rate), 0.15*volume)

	case object.EventAsteroidBump:
		thud := NewTone(WaveSine, 110, 70, 60*time.Millisecond, rate, seed)
		return gain(NewDecay(thud, 3*time.Millisecond, 30, rate), 0.3*volume)

	case object.EventAsteroidDestroyed:
		crack := NewTone(WaveNoise, 0, 0, 300*time.Millisecond, rate, seed)
		return gain(NewDecay(crack, 2*time.Millisecond, 14, rate), 0.35*volume)

	case object.EventUFODestroyed:
		d := 450 * time.Millisecond
		mixed := beep.Mix(
			gain(NewTone(WaveNoise, 0, 0, d, rate, seed), 0.5),
			gain(NewTone(WaveSquare, 400, 80, d, rate, seed), 0.25),
		)
		return gain(NewDecay(mixed, 2*time.Millisecond, 7, rate), 0.4*volume)

	case object.EventShipExploded:
		d := 900 * time.Millisecond
		mixed := beep.Mix(
			gain(NewTone(WaveNoise, 0, 0, d, rate, seed), 0.6),
			gain(NewTone(WaveSine, 90, 40, d, rate, seed), 0.5),
		)
		return gain(NewDecay(mixed, 5*time.Millisecond, 4, rate), 0.5*volume)

	case object.EventWarpInitiated:
		up := NewTone(WaveSine, 200, 1400, 500*time.Millisecond, rate, seed)
		return gain(NewDecay(up, 80*time.Millisecond, 2, rate), 0.25*volume)

	default:
		return nil
	}
}
