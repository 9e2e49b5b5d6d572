package object

import (
	"golang.org/x/image/colornames"

	"github.com/tomz197/warpteroids/internal/physics"
	"github.com/tomz197/warpteroids/internal/vector"
)

// BulletSpeed is the distance a bullet travels per frame.
const BulletSpeed = 12.0

var bulletShape = physics.Shape{
	vector.New(2, 2),
	vector.New(-2, 2),
	vector.New(-2, -2),
	vector.New(2, -2),
}

// Bullet is a projectile fired by the ship or a UFO.
type Bullet struct {
	Body
}

// NewBullet creates a bullet at location flying along direction at BulletSpeed.
func NewBullet(location, direction vector.Vector) *Bullet {
	shape := physics.Shape(vector.Copy(bulletShape))
	return &Bullet{
		Body: newBody(location, direction.Unit().Scale(BulletSpeed), shape, colornames.Yellow, 0),
	}
}

func (b *Bullet) Kind() Kind  { return KindBullet }
func (b *Bullet) Base() *Body { return &b.Body }
func (b *Bullet) Act(Env)     { b.Body.Act() }
func (b *Bullet) sealed()     {}

// HandleBorderCross disposes the bullet: bullets never wrap.
func (b *Bullet) HandleBorderCross(physics.Bounds) {
	b.ToDispose = true
}

func (b *Bullet) HandleCollision(other Object, _ Env) {
	if other.Kind() != KindBullet {
		b.ToDispose = true
	}
}

func (b *Bullet) Render(s Surface) {
	b.render(s)
}
