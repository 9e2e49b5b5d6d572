package game

import (
	"github.com/tomz197/warpteroids/internal/config"
	"github.com/tomz197/warpteroids/internal/physics"
	"github.com/tomz197/warpteroids/internal/vector"
)

// Board describes the logical drawing area. The info bar takes the bottom
// InfoBar units; everything above it is playable.
type Board struct {
	Width        float64
	Height       float64
	InfoBar      float64
	SpawnPadding float64
	WarpPadding  float64
}

// DefaultBoard returns the standard 1280x720 board.
func DefaultBoard() Board {
	return Board{
		Width:        config.BoardWidth,
		Height:       config.BoardHeight,
		InfoBar:      config.InfoBarHeight,
		SpawnPadding: config.SpawnPadding,
		WarpPadding:  config.WarpPadding,
	}
}

// PlayHeight is the height of the area above the info bar.
func (b Board) PlayHeight() float64 {
	return b.Height - b.InfoBar
}

// SpawnBounds is where random locations are picked.
func (b Board) SpawnBounds() physics.Bounds {
	p := b.SpawnPadding
	return physics.Bounds{Left: p, Right: b.Width - p, Top: p, Bottom: b.PlayHeight() - p}
}

// WarpBounds are the edges objects wrap around.
func (b Board) WarpBounds() physics.Bounds {
	p := b.WarpPadding
	return physics.Bounds{Left: p, Right: b.Width - p, Top: p, Bottom: b.PlayHeight() - p}
}

// Center is the middle of the playable area.
func (b Board) Center() vector.Vector {
	return vector.New(b.Width/2, b.PlayHeight()/2)
}
