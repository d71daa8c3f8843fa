// Package physics provides vector math, collision tests and a broad-phase grid.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(a, b Vec2) float64 {
	return math.Sqrt(DistanceSquared(a, b))
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(a, b Vec2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}

// CirclesOverlap reports whether two circles touch or overlap.
// Touching circles (distance == r1+r2) count as overlapping.
func CirclesOverlap(a Vec2, r1 float64, b Vec2, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(a, b) <= minDist*minDist
}
