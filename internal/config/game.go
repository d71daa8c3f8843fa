package config

import "time"

// Playfield size in logical units. The window is opened at this size and the
// terminal canvas scales it to fit.
const (
	ScreenWidth  = 800
	ScreenHeight = 600
)

// WindowTitle is shown in the desktop window title bar.
const WindowTitle = "Space Rocks"

// Frame pacing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Ship. Speeds are in units per frame.
const (
	Maneuverability = 3.0  // Degrees turned per frame while a turn key is held
	Acceleration    = 0.25 // Velocity added per frame while thrusting
	BulletSpeed     = 3.0
)

// Asteroids
const (
	InitialAsteroids    = 6
	MinAsteroidDistance = 250.0 // Minimum start distance from the ship
)

// Asteroid speed per tier in units per frame; smaller rocks move faster.
const (
	LargeAsteroidSpeed  = 1.0
	MediumAsteroidSpeed = 2.0
	SmallAsteroidSpeed  = 3.0
)

// Asteroid sprite scale per tier, relative to the large asteroid sprite.
const (
	LargeAsteroidScale  = 1.0
	MediumAsteroidScale = 0.5
	SmallAsteroidScale  = 0.25
)

// Default sprite widths in pixels, used when no sprite files are loaded.
const (
	DefaultShipSprite     = 48
	DefaultBulletSprite   = 8
	DefaultAsteroidSprite = 96
)

// MessageFontSize is the point size of the win/lose message.
const MessageFontSize = 64
