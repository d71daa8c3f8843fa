// Package window runs the game in a desktop window using ebiten.
package window

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/tomz197/spacerocks/internal/config"
	"github.com/tomz197/spacerocks/internal/loop"
	"github.com/tomz197/spacerocks/internal/object"
	"github.com/tomz197/spacerocks/internal/physics"
)

// Game adapts a World to ebiten's Update/Draw/Layout cycle.
type Game struct {
	world   *loop.World
	sprites *Sprites
	face    text.Face
	logger  *log.Logger
	op      ebiten.DrawImageOptions
}

var _ ebiten.Game = (*Game)(nil)

// NewGame creates a window frontend for w.
func NewGame(w *loop.World, sprites *Sprites, face text.Face, logger *log.Logger) *Game {
	return &Game{world: w, sprites: sprites, face: face, logger: logger}
}

// Update polls the keyboard and advances the world by one frame.
// Escape or closing the window ends the game.
func (g *Game) Update() error {
	in := pollInput()
	if in.Quit {
		g.logger.Info("window closed", "frame", g.world.Frame(), "status", g.world.Status())
		return ebiten.Termination
	}
	loop.Step(g.world, in)
	return nil
}

// Draw renders the background, every entity centred on its position and the
// status message.
func (g *Game) Draw(screen *ebiten.Image) {
	scene := g.world.Scene()

	g.drawBackground(screen)
	for _, a := range scene.Asteroids {
		g.drawCentered(screen, g.sprites.Asteroid, a.Pos, a.Size.Scale(), 0)
	}
	for _, b := range scene.Bullets {
		g.drawCentered(screen, g.sprites.Bullet, b.Pos, 1, 0)
	}
	if scene.Ship != nil {
		g.drawCentered(screen, g.sprites.Ship, scene.Ship.Pos, 1, scene.Ship.Heading())
	}
	drawMessage(screen, g.face, scene.Message)
}

// Layout fixes the logical screen to the playfield size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Screen()
	return s.Width, s.Height
}

// drawBackground draws the background unscaled at the top-left corner.
func (g *Game) drawBackground(screen *ebiten.Image) {
	g.op.GeoM = backgroundGeoM()
	screen.DrawImage(g.sprites.Background, &g.op)
}

// drawCentered draws img with its center at pos, scaled and rotated
// clockwise by angle radians around its center.
func (g *Game) drawCentered(screen, img *ebiten.Image, pos physics.Vec2, scale, angle float64) {
	g.op.GeoM = centeredGeoM(img.Bounds().Dx(), img.Bounds().Dy(), pos, scale, angle)
	screen.DrawImage(img, &g.op)
}

// backgroundGeoM places the background at the origin at its own size.
func backgroundGeoM() ebiten.GeoM {
	return ebiten.GeoM{}
}

// centeredGeoM maps a w×h sprite so its center lands on pos.
func centeredGeoM(w, h int, pos physics.Vec2, scale, angle float64) ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-float64(w)/2, -float64(h)/2)
	m.Scale(scale, scale)
	m.Rotate(angle)
	m.Translate(pos.X, pos.Y)
	return m
}

// Run opens the window and plays until it is closed.
func Run(g *Game) error {
	s := g.world.Screen()
	ebiten.SetWindowSize(s.Width, s.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TargetFPS)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

// Screen returns the default window playfield.
func Screen() object.Screen {
	return object.Screen{Width: config.ScreenWidth, Height: config.ScreenHeight}
}
