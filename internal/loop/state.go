package loop

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/spacerocks/internal/config"
	"github.com/tomz197/spacerocks/internal/logging"
	"github.com/tomz197/spacerocks/internal/object"
	"github.com/tomz197/spacerocks/internal/physics"
)

// ErrScreenTooSmall is returned when no screen position is far enough from
// the ship's start to place an asteroid.
var ErrScreenTooSmall = errors.New("screen too small for asteroid placement")

// Status is the session outcome. Won and Lost are terminal.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

// Message returns the text shown for the status.
func (s Status) Message() string {
	switch s {
	case StatusWon:
		return "You won"
	case StatusLost:
		return "You lost"
	default:
		return ""
	}
}

func (s Status) String() string {
	switch s {
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "playing"
	}
}

// Options configures a new World. Zero fields take defaults.
type Options struct {
	Screen           object.Screen
	Geometry         object.Geometry
	Rand             *rand.Rand
	Logger           *log.Logger
	InitialAsteroids int // Negative starts without asteroids
}

// World owns every entity of a single game session.
type World struct {
	screen   object.Screen
	geometry object.Geometry
	rng      *rand.Rand
	logger   *log.Logger

	ship      *object.Ship // nil once destroyed
	asteroids []*object.Asteroid
	bullets   []*object.Bullet
	toSpawn   []*object.Asteroid // Fragments added after the collision scan
	status    Status
	frame     uint64

	// Broad phase for bullet/asteroid hits, rebuilt every frame
	asteroidGrid *physics.SpatialGrid
}

// NewWorld creates a session with the ship at the screen center and the
// initial large asteroids placed at least config.MinAsteroidDistance away.
func NewWorld(opts Options) (*World, error) {
	if opts.Screen == (object.Screen{}) {
		opts.Screen = object.Screen{Width: config.ScreenWidth, Height: config.ScreenHeight}
	}
	if opts.Geometry == (object.Geometry{}) {
		opts.Geometry = object.DefaultGeometry()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.InitialAsteroids == 0 {
		opts.InitialAsteroids = config.InitialAsteroids
	}
	if !opts.Geometry.Valid() {
		return nil, fmt.Errorf("invalid geometry %+v: radii must be positive", opts.Geometry)
	}

	w := &World{
		screen:   opts.Screen,
		geometry: opts.Geometry,
		rng:      opts.Rand,
		logger:   opts.Logger,
		status:   StatusPlaying,
	}
	w.asteroidGrid = physics.NewSpatialGrid(
		float64(w.screen.Width), float64(w.screen.Height), w.geometry.MaxInteraction())

	center := w.screen.Center()
	w.ship = object.NewShip(center, w.geometry)

	// The farthest whole-unit position from the center is the origin corner.
	if w.screen.Width <= 0 || w.screen.Height <= 0 ||
		center.DistanceTo(physics.Vec2{}) <= config.MinAsteroidDistance {
		return nil, fmt.Errorf("%dx%d: %w", w.screen.Width, w.screen.Height, ErrScreenTooSmall)
	}
	for i := 0; i < opts.InitialAsteroids; i++ {
		var pos physics.Vec2
		for {
			pos = w.screen.RandomPosition(w.rng)
			if pos.DistanceTo(center) > config.MinAsteroidDistance {
				break
			}
		}
		w.asteroids = append(w.asteroids, object.NewAsteroid(pos, object.AsteroidLarge, w.geometry, w.rng))
	}

	w.logger.Debug("world created", "asteroids", len(w.asteroids), "screen", fmt.Sprintf("%dx%d", w.screen.Width, w.screen.Height))
	return w, nil
}

// Spawn queues an asteroid to be added after the current collision scan.
func (w *World) Spawn(a *object.Asteroid) {
	w.toSpawn = append(w.toSpawn, a)
}

// FlushSpawned adds all queued asteroids and clears the queue.
func (w *World) FlushSpawned() {
	w.asteroids = append(w.asteroids, w.toSpawn...)
	clear(w.toSpawn)
	w.toSpawn = w.toSpawn[:0]
}

// Ship returns the ship, or nil once it has been destroyed.
func (w *World) Ship() *object.Ship {
	return w.ship
}

// Asteroids returns the live asteroids. The slice must not be modified.
func (w *World) Asteroids() []*object.Asteroid {
	return w.asteroids
}

// Bullets returns the live bullets. The slice must not be modified.
func (w *World) Bullets() []*object.Bullet {
	return w.bullets
}

// Status returns the session status.
func (w *World) Status() Status {
	return w.status
}

// Message returns the status text, empty while playing.
func (w *World) Message() string {
	return w.status.Message()
}

// Screen returns the playfield bounds.
func (w *World) Screen() object.Screen {
	return w.screen
}

// Frame returns the number of updates performed so far.
func (w *World) Frame() uint64 {
	return w.frame
}

// Scene returns a read-only view of the world for rendering.
func (w *World) Scene() object.Scene {
	return object.Scene{
		Screen:    w.screen,
		Ship:      w.ship,
		Asteroids: w.asteroids,
		Bullets:   w.bullets,
		Message:   w.Message(),
	}
}
