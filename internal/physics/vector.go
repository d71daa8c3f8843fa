package physics

import "math"

// Vec2 is a 2D vector in screen space (x grows right, y grows down).
type Vec2 struct {
	X, Y float64
}

// Up is the unit vector pointing to the top of the screen.
var Up = Vec2{X: 0, Y: -1}

// FromAngle returns the unit vector for an angle in radians measured from +X.
func FromAngle(rad float64) Vec2 {
	return Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len returns the magnitude of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// DistanceTo returns the Euclidean distance from v to o.
func (v Vec2) DistanceTo(o Vec2) float64 {
	return Distance(v, o)
}

// Rotate returns v rotated by deg degrees. With y pointing down a positive
// angle turns the vector clockwise on screen.
func (v Vec2) Rotate(deg float64) Vec2 {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Heading returns the clockwise angle in radians from Up to v.
// Renderers rotate an upward-facing sprite by this angle.
func (v Vec2) Heading() float64 {
	return math.Atan2(v.X, -v.Y)
}
