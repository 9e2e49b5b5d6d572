package game

import "github.com/tomz197/warpteroids/internal/object"

// Listener receives the domain events of a frame after the frame completed.
// Listeners must not mutate the world.
type Listener interface {
	OnEvent(ev object.Event)
}

// ListenerFunc adapts a function to a Listener.
type ListenerFunc func(ev object.Event)

func (f ListenerFunc) OnEvent(ev object.Event) {
	f(ev)
}

// Explosion particle bursts per event.
var bursts = map[object.EventType]struct {
	count int
	speed float64
	life  int
}{
	object.EventAsteroidDestroyed: {count: 12, speed: 2.5, life: 30},
	object.EventUFODestroyed:      {count: 16, speed: 3, life: 35},
	object.EventShipExploded:      {count: 24, speed: 3.5, life: 50},
}

func (w *World) dispatch() {
	w.lastEvents = append(w.lastEvents[:0], w.events...)
	w.events = w.events[:0]

	for _, ev := range w.lastEvents {
		if b, ok := bursts[ev.Type]; ok {
			w.particles = append(w.particles, object.Burst(w.rng, ev.At, b.count, b.speed, b.life, burstColor(ev.Type))...)
		}
		for _, l := range w.listeners {
			l.OnEvent(ev)
		}
	}
}
