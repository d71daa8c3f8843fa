package object

import "github.com/tomz197/spacerocks/internal/physics"

// Bullet is a projectile fired by the ship. It travels in a straight line and
// does not wrap; the world removes it once it leaves the screen.
type Bullet struct {
	Body
}

// NewBullet creates a bullet at pos moving with vel.
func NewBullet(pos, vel physics.Vec2, radius float64) *Bullet {
	return &Bullet{Body: Body{Pos: pos, Vel: vel, R: radius}}
}

// Move advances the bullet without screen wrapping.
func (b *Bullet) Move(_ Screen) {
	b.Pos = b.Pos.Add(b.Vel)
}
