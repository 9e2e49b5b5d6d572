package game

import (
	"github.com/tomz197/warpteroids/internal/object"
)

// collidables gathers the ship, bullets, asteroids and UFOs, in that order,
// into a reusable snapshot. Pairs are tested in snapshot order.
func (w *World) collidables() []object.Object {
	objs := w.scratch[:0]
	objs = append(objs, w.ship)
	for _, b := range w.bullets {
		objs = append(objs, b)
	}
	for _, a := range w.asteroids {
		objs = append(objs, a)
	}
	for _, u := range w.ufos {
		objs = append(objs, u)
	}
	w.scratch = objs
	return objs
}

// handleCollisions tests every unordered pair once. On contact the first
// member handles the collision, then the second one, except between two
// asteroids where a single bounce already moves both. A member that has
// been disposed collides with nothing further this frame.
func (w *World) handleCollisions() error {
	objs := w.collidables()
	defer clear(w.scratch)

	if w.broadPhase {
		w.grid.Clear()
		for i, o := range objs {
			w.grid.Insert(o.Base().Location, i)
		}
	}

	for i, a := range objs {
		if w.broadPhase {
			if err := w.collideNearby(objs, i); err != nil {
				return err
			}
			continue
		}

		for _, b := range objs[i+1:] {
			if a.Base().ToDispose {
				break
			}
			if err := w.collidePair(a, b); err != nil {
				return err
			}
		}
	}
	return nil
}

// collideNearby tests objs[i] against the later members in its grid
// neighborhood, in index order. A bounce moves both bodies, so the grid
// follows them and the remaining candidates are looked up again from the
// new position.
func (w *World) collideNearby(objs []object.Object, i int) error {
	a := objs[i]
	w.candidates = w.grid.Candidates(a.Base().Location, i, w.candidates[:0])
	for k := 0; k < len(w.candidates); k++ {
		if a.Base().ToDispose {
			break
		}
		j := w.candidates[k]
		b := objs[j]
		fromA, fromB := a.Base().Location, b.Base().Location
		if err := w.collidePair(a, b); err != nil {
			return err
		}
		if to := b.Base().Location; to != fromB {
			w.grid.Move(fromB, to, j)
		}
		if to := a.Base().Location; to != fromA {
			w.grid.Move(fromA, to, i)
			w.candidates = w.grid.Candidates(to, j, w.candidates[:0])
			k = -1
		}
	}
	return nil
}

func (w *World) collidePair(a, b object.Object) error {
	if b.Base().ToDispose {
		return nil
	}
	hit, err := object.CollidesWith(a, b)
	if err != nil || !hit {
		return err
	}
	a.HandleCollision(b, w)
	if a.Kind() != object.KindAsteroid || b.Kind() != object.KindAsteroid {
		b.HandleCollision(a, w)
	}
	return nil
}
