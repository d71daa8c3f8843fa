package draw

import (
	"math"

	"github.com/tomz197/spacerocks/internal/object"
	"github.com/tomz197/spacerocks/internal/physics"
)

// Ship wing vertices sit this many degrees either side of the nose, pulled in
// to shipWingLength of the radius.
const (
	shipWingAngle  = 140.0
	shipWingLength = 0.7
)

// ShipTriangle returns the ship outline in logical coordinates: the nose at
// one radius along the heading and two swept-back wings.
func ShipTriangle(s *object.Ship, dst []physics.Vec2) []physics.Vec2 {
	r := s.Radius()
	return append(dst[:0],
		s.Pos.Add(s.Direction.Scale(r)),
		s.Pos.Add(s.Direction.Rotate(shipWingAngle).Scale(r*shipWingLength)),
		s.Pos.Add(s.Direction.Rotate(-shipWingAngle).Scale(r*shipWingLength)),
	)
}

// AsteroidPolygon returns the asteroid's irregular outline in logical
// coordinates, with vertices spread evenly around its center. An asteroid
// without an outline is drawn as an octagon.
func AsteroidPolygon(a *object.Asteroid, dst []physics.Vec2) []physics.Vec2 {
	dst = dst[:0]
	n := len(a.Outline)
	if n == 0 {
		n = 8
	}
	r := a.Radius()
	for i := 0; i < n; i++ {
		k := 1.0
		if len(a.Outline) > 0 {
			k = a.Outline[i]
		}
		angle := 2 * math.Pi * float64(i) / float64(n)
		dst = append(dst, a.Pos.Add(physics.FromAngle(angle).Scale(r*k)))
	}
	return dst
}
