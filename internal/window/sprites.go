package window

import (
	"errors"
	_ "image/png"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/tomz197/spacerocks/internal/object"
	"github.com/tomz197/spacerocks/internal/sprite"
)

// Sprites holds the GPU images used to draw a frame.
type Sprites struct {
	Background *ebiten.Image
	Ship       *ebiten.Image
	Asteroid   *ebiten.Image // Large tier; smaller tiers are scaled
	Bullet     *ebiten.Image
}

// LoadSprites loads every sprite from dir, substituting a generated
// placeholder for each file that does not exist. It returns the collision
// geometry matching the images actually used. An empty dir uses placeholders
// only.
func LoadSprites(dir string, screen object.Screen, logger *log.Logger) (*Sprites, object.Geometry, error) {
	s := &Sprites{}
	widths := sprite.DefaultWidths()

	for _, k := range sprite.Kinds {
		img, err := loadSprite(dir, k)
		switch {
		case err == nil:
			widths.Set(k, img.Bounds().Dx())
			logger.Debug("sprite loaded", "sprite", k, "path", k.Path(dir), "width", img.Bounds().Dx())
		case errors.Is(err, fs.ErrNotExist):
			img = ebiten.NewImageFromImage(sprite.Placeholder(k, screen))
			logger.Debug("sprite placeholder", "sprite", k)
		default:
			return nil, object.Geometry{}, err
		}
		s.set(k, img)
	}

	geom := widths.Geometry()
	if !geom.Valid() {
		return nil, object.Geometry{}, errors.New("sprites must be at least one pixel wide")
	}
	return s, geom, nil
}

func loadSprite(dir string, k sprite.Kind) (*ebiten.Image, error) {
	if dir == "" {
		return nil, fs.ErrNotExist
	}
	img, _, err := ebitenutil.NewImageFromFile(k.Path(dir))
	if err != nil {
		return nil, err
	}
	return img, nil
}

func (s *Sprites) set(k sprite.Kind, img *ebiten.Image) {
	switch k {
	case sprite.Background:
		s.Background = img
	case sprite.Ship:
		s.Ship = img
	case sprite.Asteroid:
		s.Asteroid = img
	case sprite.Bullet:
		s.Bullet = img
	}
}
