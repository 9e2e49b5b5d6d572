package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/warpteroids/internal/input"
)

// keymap binds every command to its keys.
var keymap = []struct {
	keys []ebiten.Key
	set  func(*input.Commands)
}{
	{[]ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, func(c *input.Commands) { c.Left = true }},
	{[]ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}, func(c *input.Commands) { c.Right = true }},
	{[]ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown, ebiten.KeySpace}, func(c *input.Commands) { c.Shoot = true }},
	{[]ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}, func(c *input.Commands) { c.Warp = true }},
	{[]ebiten.Key{ebiten.KeyEscape}, func(c *input.Commands) { c.Menu = true }},
	{[]ebiten.Key{ebiten.KeyR}, func(c *input.Commands) { c.Restart = true }},
	{[]ebiten.Key{ebiten.KeyQ}, func(c *input.Commands) { c.Quit = true }},
}

// readKeys samples the held keys. Ebiten reports real key state, so held
// and released are exact here.
func readKeys(pressed func(ebiten.Key) bool) input.Commands {
	var c input.Commands
	for _, binding := range keymap {
		for _, k := range binding.keys {
			if pressed(k) {
				binding.set(&c)
				break
			}
		}
	}
	return c
}
