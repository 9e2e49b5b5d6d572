package config

import "time"

// Board dimensions in logical units. The playable area sits above the info bar.
const (
	BoardWidth    = 1280
	BoardHeight   = 720
	InfoBarHeight = 75

	// SpawnPadding keeps random spawn points away from the edges.
	SpawnPadding = 50
	// WarpPadding moves the wrap edges; negative values wrap just off-screen.
	WarpPadding = -10
)

// Frame timing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Level progression: counts grow linearly with the level number.
const (
	InitAsteroidCount     = 3
	AsteroidLevelAddition = 1.0
	InitUFOCount          = 0
	UFOLevelAddition      = 1.0 / 3
	AsteroidNodesAddition = 0.5
)

// Game state choreography, in frames.
const (
	PrepareAppearance    = 20
	PrepareDrift         = 240
	PrepareDisappearance = 20
	PrepareScoreDelay    = 20

	EndAppearance    = 170
	EndDisappearance = 50
)

// Broad phase
const (
	// CollisionCellSize must exceed the largest center distance at which two
	// objects can touch (two heaviest asteroids). Bodies moved by a bounce
	// are moved in the grid too.
	CollisionCellSize = 100
)

// Terminal rendering
const (
	// MaxTermWidth and MaxTermHeight cap the terminal render area; larger
	// terminals get the canvas centered inside a border.
	MaxTermWidth  = 160
	MaxTermHeight = 45

	// InactivityWarn and InactivityDisconnect apply to remote sessions only.
	InactivityWarn       = 90 * time.Second
	InactivityDisconnect = 120 * time.Second
)
