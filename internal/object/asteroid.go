package object

import (
	"math/rand"

	"github.com/tomz197/spacerocks/internal/config"
	"github.com/tomz197/spacerocks/internal/physics"
)

// AsteroidSize represents the size tier of an asteroid.
type AsteroidSize int

const (
	AsteroidSmall  AsteroidSize = 1
	AsteroidMedium AsteroidSize = 2
	AsteroidLarge  AsteroidSize = 3
)

// Speed returns the tier's speed in units per frame.
func (s AsteroidSize) Speed() float64 {
	switch s {
	case AsteroidLarge:
		return config.LargeAsteroidSpeed
	case AsteroidMedium:
		return config.MediumAsteroidSpeed
	default:
		return config.SmallAsteroidSpeed
	}
}

// Scale returns the tier's sprite scale relative to a large asteroid.
func (s AsteroidSize) Scale() float64 {
	switch s {
	case AsteroidLarge:
		return config.LargeAsteroidScale
	case AsteroidMedium:
		return config.MediumAsteroidScale
	default:
		return config.SmallAsteroidScale
	}
}

func (s AsteroidSize) String() string {
	switch s {
	case AsteroidLarge:
		return "large"
	case AsteroidMedium:
		return "medium"
	case AsteroidSmall:
		return "small"
	default:
		return "unknown"
	}
}

// Asteroid is a drifting rock that splits when shot.
type Asteroid struct {
	Body
	Size    AsteroidSize
	Outline []float64 // Vertex distances as a fraction of the radius, for polygon rendering
}

// NewAsteroid creates an asteroid at pos moving in a random direction at its
// tier speed.
func NewAsteroid(pos physics.Vec2, size AsteroidSize, geom Geometry, rng *rand.Rand) *Asteroid {
	// Irregular polygon with 8-12 vertices, each within ±30% of the radius
	outline := make([]float64, 8+rng.Intn(5))
	for i := range outline {
		outline[i] = 0.7 + rng.Float64()*0.6
	}

	return &Asteroid{
		Body: Body{
			Pos: pos,
			Vel: randomDirection(rng).Scale(size.Speed()),
			R:   geom.AsteroidRadiusFor(size),
		},
		Size:    size,
		Outline: outline,
	}
}

// Split returns the fragments that replace a destroyed asteroid: two of the
// next smaller tier at the same position, or none for a small asteroid.
func (a *Asteroid) Split(geom Geometry, rng *rand.Rand) []*Asteroid {
	if a.Size <= AsteroidSmall {
		return nil
	}

	child := a.Size - 1
	return []*Asteroid{
		NewAsteroid(a.Pos, child, geom, rng),
		NewAsteroid(a.Pos, child, geom, rng),
	}
}
