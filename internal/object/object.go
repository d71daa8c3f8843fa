package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/spacerocks/internal/physics"
)

// Entity is a moving, collidable game object.
type Entity interface {
	// Move advances the entity by one frame within screen.
	Move(screen Screen)
	Position() physics.Vec2
	Radius() float64
}

// Collides reports whether the collision circles of a and b overlap.
// The test is symmetric.
func Collides(a, b Entity) bool {
	return physics.CirclesOverlap(a.Position(), a.Radius(), b.Position(), b.Radius())
}

// Body is the state shared by all entities.
type Body struct {
	Pos physics.Vec2 // Center
	Vel physics.Vec2 // Units per frame
	R   float64      // Collision radius
}

// Move adds the velocity to the position and wraps it around the screen edges.
func (b *Body) Move(screen Screen) {
	b.Pos = screen.Wrap(b.Pos.Add(b.Vel))
}

// Position returns the body's center.
func (b *Body) Position() physics.Vec2 {
	return b.Pos
}

// Radius returns the body's collision radius.
func (b *Body) Radius() float64 {
	return b.R
}

// Screen is the playfield rectangle [0,Width) x [0,Height).
type Screen struct {
	Width  int
	Height int
}

// Center returns the middle of the screen.
func (s Screen) Center() physics.Vec2 {
	return physics.Vec2{X: float64(s.Width) / 2, Y: float64(s.Height) / 2}
}

// Wrap maps p into the screen, each axis independently, so an entity leaving
// one edge reappears at the opposite one.
func (s Screen) Wrap(p physics.Vec2) physics.Vec2 {
	return physics.Vec2{
		X: wrapAxis(p.X, float64(s.Width)),
		Y: wrapAxis(p.Y, float64(s.Height)),
	}
}

func wrapAxis(v, size float64) float64 {
	if size <= 0 {
		return v
	}
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	// A tiny negative remainder can round up to size itself.
	if v >= size {
		v = 0
	}
	return v
}

// Contains reports whether p lies inside the screen rectangle.
func (s Screen) Contains(p physics.Vec2) bool {
	return p.X >= 0 && p.X < float64(s.Width) && p.Y >= 0 && p.Y < float64(s.Height)
}

// RandomPosition returns a uniformly random whole-unit position on the screen.
func (s Screen) RandomPosition(rng *rand.Rand) physics.Vec2 {
	return physics.Vec2{
		X: float64(rng.Intn(s.Width)),
		Y: float64(rng.Intn(s.Height)),
	}
}

// randomDirection returns a uniformly distributed unit vector.
func randomDirection(rng *rand.Rand) physics.Vec2 {
	return physics.FromAngle(rng.Float64() * 2 * math.Pi)
}
