package object

import (
	"github.com/tomz197/spacerocks/internal/config"
	"github.com/tomz197/spacerocks/internal/physics"
)

// Ship is the player-controlled spaceship.
type Ship struct {
	Body
	Direction    physics.Vec2 // Unit heading, starts pointing up
	BulletRadius float64      // Radius given to fired bullets
}

// NewShip creates a resting ship at pos facing up.
func NewShip(pos physics.Vec2, geom Geometry) *Ship {
	return &Ship{
		Body:         Body{Pos: pos, R: geom.ShipRadius},
		Direction:    physics.Up,
		BulletRadius: geom.BulletRadius,
	}
}

// Rotate turns the heading by one maneuverability step.
func (s *Ship) Rotate(clockwise bool) {
	angle := config.Maneuverability
	if !clockwise {
		angle = -angle
	}
	s.Direction = s.Direction.Rotate(angle)
}

// Accelerate adds one thrust step along the heading. Speed is not capped.
func (s *Ship) Accelerate() {
	s.Vel = s.Vel.Add(s.Direction.Scale(config.Acceleration))
}

// SlowDown subtracts one thrust step along the heading.
func (s *Ship) SlowDown() {
	s.Vel = s.Vel.Sub(s.Direction.Scale(config.Acceleration))
}

// Shoot returns a new bullet leaving the ship's center along its heading.
// The caller owns the bullet.
func (s *Ship) Shoot() *Bullet {
	return NewBullet(s.Pos, s.Direction.Scale(config.BulletSpeed), s.BulletRadius)
}

// Heading returns the clockwise rotation from "up" in radians, for drawing.
func (s *Ship) Heading() float64 {
	return s.Direction.Heading()
}
