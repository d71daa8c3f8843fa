// Package sprite names the game's image assets and generates placeholder
// images for any that are missing.
package sprite

import (
	"image"
	"image/color"
	"math"
	"path/filepath"

	"golang.org/x/image/colornames"

	"github.com/tomz197/spacerocks/internal/config"
	"github.com/tomz197/spacerocks/internal/object"
)

// Kind identifies one sprite.
type Kind int

const (
	Background Kind = iota
	Ship
	Asteroid
	Bullet
)

// Kinds lists every sprite in load order.
var Kinds = []Kind{Background, Ship, Asteroid, Bullet}

func (k Kind) String() string {
	switch k {
	case Background:
		return "background"
	case Ship:
		return "ship"
	case Asteroid:
		return "asteroid"
	case Bullet:
		return "bullet"
	default:
		return "unknown"
	}
}

// FileName returns the asset file name for the sprite.
func (k Kind) FileName() string {
	switch k {
	case Background:
		return "space.png"
	case Ship:
		return "spaceship.png"
	case Asteroid:
		return "asteroid.png"
	case Bullet:
		return "bullet.png"
	default:
		return ""
	}
}

// Path returns the sprite's file path inside dir.
func (k Kind) Path(dir string) string {
	return filepath.Join(dir, k.FileName())
}

// Widths holds the pixel width of each collidable sprite.
type Widths struct {
	Ship, Bullet, Asteroid int
}

// DefaultWidths are the placeholder sprite widths.
func DefaultWidths() Widths {
	return Widths{
		Ship:     config.DefaultShipSprite,
		Bullet:   config.DefaultBulletSprite,
		Asteroid: config.DefaultAsteroidSprite,
	}
}

// Set records the width of a loaded sprite. The background has no width.
func (w *Widths) Set(k Kind, width int) {
	switch k {
	case Ship:
		w.Ship = width
	case Bullet:
		w.Bullet = width
	case Asteroid:
		w.Asteroid = width
	}
}

// Geometry returns collision radii matching the sprites.
func (w Widths) Geometry() object.Geometry {
	return object.NewGeometry(w.Ship, w.Bullet, w.Asteroid)
}

// Placeholder draws a stand-in image for k. The background fills the screen;
// the other sprites use the default widths.
func Placeholder(k Kind, screen object.Screen) image.Image {
	switch k {
	case Background:
		return starfield(screen.Width, screen.Height)
	case Ship:
		return triangle(config.DefaultShipSprite, colornames.White)
	case Asteroid:
		return ring(config.DefaultAsteroidSprite, colornames.Lightgray)
	default:
		return disc(config.DefaultBulletSprite, colornames.Gold)
	}
}

// starfield is a black image with scattered stars at fixed positions.
func starfield(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fill(img, colornames.Black)
	if w <= 0 || h <= 0 {
		return img
	}
	for i := 0; i < w*h/3000; i++ {
		img.Set((i*7919)%w, (i*104729+13)%h, colornames.Lightsteelblue)
	}
	return img
}

// triangle is an upward-pointing ship outline filling a size×size square.
func triangle(size int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	half := float64(size) / 2
	for y := 0; y < size; y++ {
		// The triangle widens linearly from the nose at the top to the base.
		spread := half * float64(y) / float64(size)
		for x := 0; x < size; x++ {
			if math.Abs(float64(x)+0.5-half) <= spread {
				img.Set(x, y, c)
			}
		}
	}
	return img
}

// ring is a circle outline two pixels thick.
func ring(size int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-r, float64(y)+0.5-r)
			if d <= r && d >= r-2 {
				img.Set(x, y, c)
			}
		}
	}
	return img
}

// disc is a filled circle.
func disc(size int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if math.Hypot(float64(x)+0.5-r, float64(y)+0.5-r) <= r {
				img.Set(x, y, c)
			}
		}
	}
	return img
}

func fill(img *image.RGBA, c color.Color) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}
