// Package object defines the game entities: ship, asteroids and bullets.
package object

import "github.com/tomz197/spacerocks/internal/config"

// Geometry holds the collision radii derived from sprite sizes.
// Every radius is half of the corresponding sprite's width.
type Geometry struct {
	ShipRadius     float64
	BulletRadius   float64
	AsteroidRadius float64 // Large asteroid; smaller tiers are scaled down
}

// NewGeometry derives radii from sprite widths in pixels.
func NewGeometry(shipWidth, bulletWidth, asteroidWidth int) Geometry {
	return Geometry{
		ShipRadius:     float64(shipWidth) / 2,
		BulletRadius:   float64(bulletWidth) / 2,
		AsteroidRadius: float64(asteroidWidth) / 2,
	}
}

// DefaultGeometry matches the generated placeholder sprites.
func DefaultGeometry() Geometry {
	return NewGeometry(config.DefaultShipSprite, config.DefaultBulletSprite, config.DefaultAsteroidSprite)
}

// AsteroidRadiusFor returns the collision radius of an asteroid of the given size.
func (g Geometry) AsteroidRadiusFor(size AsteroidSize) float64 {
	return g.AsteroidRadius * size.Scale()
}

// MaxInteraction is the largest center distance at which a bullet can hit an
// asteroid.
func (g Geometry) MaxInteraction() float64 {
	return g.AsteroidRadius + g.BulletRadius
}

// Valid reports whether every radius is positive.
func (g Geometry) Valid() bool {
	return g.ShipRadius > 0 && g.BulletRadius > 0 && g.AsteroidRadius > 0
}
