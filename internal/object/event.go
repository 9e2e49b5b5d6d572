package object

import "github.com/tomz197/warpteroids/internal/vector"

// EventType identifies something noteworthy that happened during a frame.
type EventType int

const (
	EventBulletFired EventType = iota
	EventAsteroidBump
	EventAsteroidDestroyed
	EventUFODestroyed
	EventShipExploded
	EventWarpInitiated
)

func (t EventType) String() string {
	switch t {
	case EventBulletFired:
		return "bullet-fired"
	case EventAsteroidBump:
		return "asteroid-bump"
	case EventAsteroidDestroyed:
		return "asteroid-destroyed"
	case EventUFODestroyed:
		return "ufo-destroyed"
	case EventShipExploded:
		return "ship-exploded"
	case EventWarpInitiated:
		return "warp-initiated"
	default:
		return "unknown"
	}
}

// Event is a fire-and-forget notification emitted by the simulation.
type Event struct {
	Type EventType
	At   vector.Vector
}
