package gfx

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/warpteroids/internal/input"
)

func TestReadKeys(t *testing.T) {
	tests := []struct {
		name string
		held []ebiten.Key
		want input.Commands
	}{
		{"nothing", nil, input.Commands{}},
		{"letters", []ebiten.Key{ebiten.KeyA, ebiten.KeyW}, input.Commands{Left: true, Warp: true}},
		{"arrows", []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyArrowDown}, input.Commands{Right: true, Shoot: true}},
		{"space shoots", []ebiten.Key{ebiten.KeySpace}, input.Commands{Shoot: true}},
		{"menu and restart", []ebiten.Key{ebiten.KeyEscape, ebiten.KeyR}, input.Commands{Menu: true, Restart: true}},
		{"quit", []ebiten.Key{ebiten.KeyQ}, input.Commands{Quit: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			held := make(map[ebiten.Key]bool)
			for _, k := range tt.held {
				held[k] = true
			}
			got := readKeys(func(k ebiten.Key) bool { return held[k] })
			if got != tt.want {
				t.Errorf("readKeys = %+v, want %+v", got, tt.want)
			}
		})
	}
}
