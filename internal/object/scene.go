package object

// Scene is a read-only view of one frame handed to renderers.
type Scene struct {
	Screen    Screen
	Ship      *Ship // nil once destroyed
	Asteroids []*Asteroid
	Bullets   []*Bullet
	Message   string // Empty while playing
}
