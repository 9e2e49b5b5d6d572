package object

import (
	"testing"

	"github.com/tomz197/warpteroids/internal/vector"
)

func TestShipCollisionFromAlive(t *testing.T) {
	tests := []struct {
		name      string
		lives     int
		wantState string
		wantLives int
	}{
		{"last life", 1, "dead", 0},
		{"spare lives", 3, "invincible", 2},
		{"two lives", 2, "invincible", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			s := NewShip(vector.New(100, 100))
			s.Lives = tt.lives
			s.WarpCooldown = 123

			s.HandleCollision(NewAsteroidAt(vector.Vector{}, vector.Vector{}, 100), env)

			if got := s.State().Name(); got != tt.wantState {
				t.Errorf("state = %s, want %s", got, tt.wantState)
			}
			if s.Lives != tt.wantLives {
				t.Errorf("lives = %d, want %d", s.Lives, tt.wantLives)
			}
			if s.WarpCooldown != 123 {
				t.Errorf("cooldown changed to %v", s.WarpCooldown)
			}
			if s.ToDispose != (tt.wantState == "dead") {
				t.Errorf("ToDispose = %v", s.ToDispose)
			}
			if env.count(EventShipExploded) != 1 {
				t.Errorf("events = %v", env.events)
			}
		})
	}
}

func TestInvincibleLastsAndIgnoresCollisions(t *testing.T) {
	env := newTestEnv()
	s := NewShip(vector.New(100, 100))
	s.SetState(NewInvincible(), env)

	if s.Collidable || !s.Flickers {
		t.Fatalf("invincible ship: collidable=%v flickers=%v", s.Collidable, s.Flickers)
	}
	s.HandleCollision(NewBullet(vector.Vector{}, vector.New(1, 0)), env)
	if s.Lives != ShipLives {
		t.Errorf("invincible ship lost a life")
	}

	for i := 0; i < ShipInvincibleDuration-1; i++ {
		s.Act(env)
	}
	if s.State().Name() != "invincible" {
		t.Fatalf("left invincibility early as %s", s.State().Name())
	}
	s.Act(env)
	if s.State().Name() != "alive" {
		t.Fatalf("state after %d frames = %s, want alive", ShipInvincibleDuration, s.State().Name())
	}
	if !s.Collidable || s.Flickers {
		t.Errorf("alive ship: collidable=%v flickers=%v", s.Collidable, s.Flickers)
	}
}

func TestWarpNeedsCooldown(t *testing.T) {
	env := newTestEnv()
	s := NewShip(vector.New(100, 100))

	s.Warp(env)
	if s.State().Name() != "alive" {
		t.Fatalf("warped with cooldown %v", s.WarpCooldown)
	}

	for s.WarpCooldown > 0 {
		s.Act(env)
	}
	if s.WarpReadiness() != 1 {
		t.Errorf("readiness = %v", s.WarpReadiness())
	}
	s.Warp(env)
	if s.State().Name() != "warping" {
		t.Fatalf("state = %s, want warping", s.State().Name())
	}
	if s.Color != ShipWarpingColor {
		t.Errorf("warping ship color = %v", s.Color)
	}
	if env.count(EventWarpInitiated) != 1 {
		t.Errorf("events = %v", env.events)
	}

	// warping again is a no-op
	st := s.State()
	s.Warp(env)
	if s.State() != st {
		t.Error("warp restarted while warping")
	}
}

func TestInvincibleWarpBurnsCooldown(t *testing.T) {
	env := newTestEnv()
	s := NewShip(vector.New(100, 100))
	s.SetState(NewInvincible(), env)
	s.WarpCooldown = 2

	s.Warp(env)
	if s.WarpCooldown != 1 || s.State().Name() != "invincible" {
		t.Fatalf("cooldown=%v state=%s", s.WarpCooldown, s.State().Name())
	}
	s.Warp(env)
	s.Warp(env)
	if s.State().Name() != "warping" {
		t.Fatalf("state = %s, want warping", s.State().Name())
	}
}

func TestWarpCompletes(t *testing.T) {
	env := newTestEnv()
	env.location = vector.New(700, 50)
	s := NewShip(vector.New(100, 100))
	s.WarpCooldown = 0
	s.Warp(env)

	w := s.State().(*Warping)
	if w.Destination != env.location || w.Origin != vector.New(100, 100) {
		t.Fatalf("warp from %v to %v", w.Origin, w.Destination)
	}

	surf := &recordSurface{}
	for i := 0; i < ShipTimeToWarp-1; i++ {
		s.Act(env)
	}
	s.Render(surf)
	if surf.rings != 2 {
		t.Errorf("portal rings drawn = %d, want 2", surf.rings)
	}
	if s.State().Name() != "warping" {
		t.Fatalf("warp finished early")
	}
	if !near(s.WarpCooldown, ShipWarpCooldown*float64(ShipTimeToWarp-1)/ShipTimeToWarp) {
		t.Errorf("cooldown while warping = %v", s.WarpCooldown)
	}

	s.Act(env)
	if s.State().Name() != "invincible" {
		t.Fatalf("state after warp = %s", s.State().Name())
	}
	if s.Location != env.location {
		t.Errorf("location = %v, want %v", s.Location, env.location)
	}
	if s.WarpCooldown != ShipWarpCooldown || s.Color != ShipColor {
		t.Errorf("cooldown=%v color=%v after warp", s.WarpCooldown, s.Color)
	}
}

func TestHitWhileWarpingCancels(t *testing.T) {
	env := newTestEnv()
	s := NewShip(vector.New(100, 100))
	s.WarpCooldown = 0
	s.Warp(env)
	s.Act(env)

	s.HandleCollision(NewBullet(vector.Vector{}, vector.New(1, 0)), env)
	if s.State().Name() != "invincible" {
		t.Fatalf("state = %s, want invincible", s.State().Name())
	}
	if s.Lives != ShipLives-1 || s.WarpCooldown != ShipWarpCooldown || s.Color != ShipColor {
		t.Errorf("lives=%d cooldown=%v color=%v", s.Lives, s.WarpCooldown, s.Color)
	}

	s = NewShip(vector.New(100, 100))
	s.Lives = 1
	s.WarpCooldown = 0
	s.Warp(env)
	s.HandleCollision(NewBullet(vector.Vector{}, vector.New(1, 0)), env)
	if s.State().Name() != "dead" || !s.ToDispose {
		t.Errorf("state = %s, disposed = %v", s.State().Name(), s.ToDispose)
	}
}

func TestDeadIgnoresEverything(t *testing.T) {
	env := newTestEnv()
	s := NewShip(vector.New(100, 100))
	s.SetState(&Dead{}, env)
	s.WarpCooldown = 0

	s.Warp(env)
	s.HandleCollision(NewBullet(vector.Vector{}, vector.New(1, 0)), env)
	s.Act(env)
	if s.State().Name() != "dead" || s.Lives != ShipLives {
		t.Errorf("dead ship reacted: state=%s lives=%d", s.State().Name(), s.Lives)
	}
}

func TestSteeringRotatesVelocityAndShape(t *testing.T) {
	s := NewShip(vector.New(0, 0))
	nose := s.Shape[0]
	for i := 0; i < 45; i++ {
		s.SteerRight()
	}
	// 45 steps of 2 degrees turn the ship by 90 degrees
	if !near(s.Velocity.X, -ShipSpeed) || !near(s.Velocity.Y, 0) {
		t.Errorf("velocity = %v", s.Velocity)
	}
	want := nose.Rotate(90 * ShipSteeringAngle / 2)
	if !near(s.Shape[0].X, want.X) || !near(s.Shape[0].Y, want.Y) {
		t.Errorf("nose = %v, want %v", s.Shape[0], want)
	}
	if !near(s.Velocity.Magnitude(), ShipSpeed) {
		t.Errorf("speed drifted to %v", s.Velocity.Magnitude())
	}
}

func TestShoot(t *testing.T) {
	env := newTestEnv()
	s := NewShip(vector.New(100, 100))
	s.Shoot(env)

	if len(env.spawned) != 1 {
		t.Fatalf("spawned %d objects", len(env.spawned))
	}
	b, ok := env.spawned[0].(*Bullet)
	if !ok {
		t.Fatalf("spawned %T", env.spawned[0])
	}
	if b.Location != vector.New(100, 118) {
		t.Errorf("bullet at %v, want [100, 118]", b.Location)
	}
	if !near(b.Velocity.Magnitude(), BulletSpeed) {
		t.Errorf("bullet speed %v", b.Velocity.Magnitude())
	}
	if hit, _ := CollidesWith(s, b); hit {
		t.Error("bullet spawned inside the ship")
	}
	if env.count(EventBulletFired) != 1 {
		t.Errorf("events = %v", env.events)
	}
}
