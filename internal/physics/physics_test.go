package physics

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCirclesOverlapSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		a := Vec2{X: rng.Float64() * 800, Y: rng.Float64() * 600}
		b := Vec2{X: rng.Float64() * 800, Y: rng.Float64() * 600}
		ra := 1 + rng.Float64()*60
		rb := 1 + rng.Float64()*60
		require.Equal(t, CirclesOverlap(a, ra, b, rb), CirclesOverlap(b, rb, a, ra))
	}
}

func TestCirclesOverlapBoundary(t *testing.T) {
	a := Vec2{X: 0, Y: 0}

	assert.True(t, CirclesOverlap(a, 3, Vec2{X: 5, Y: 0}, 2), "touching circles overlap")
	assert.True(t, CirclesOverlap(a, 3, Vec2{X: 4, Y: 0}, 2))
	assert.False(t, CirclesOverlap(a, 3, Vec2{X: 5.01, Y: 0}, 2))
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Distance(Vec2{X: 1, Y: 1}, Vec2{X: 4, Y: 5}), 1e-9)
	assert.InDelta(t, 25.0, DistanceSquared(Vec2{X: 1, Y: 1}, Vec2{X: 4, Y: 5}), 1e-9)
}

func TestVecRotateClockwiseOnScreen(t *testing.T) {
	right := Up.Rotate(90)
	assert.InDelta(t, 1.0, right.X, 1e-9)
	assert.InDelta(t, 0.0, right.Y, 1e-9)

	left := Up.Rotate(-90)
	assert.InDelta(t, -1.0, left.X, 1e-9)
	assert.InDelta(t, 0.0, left.Y, 1e-9)

	v := Up
	for i := 0; i < 120; i++ {
		v = v.Rotate(3)
	}
	assert.InDelta(t, 1.0, v.Len(), 1e-9, "rotation keeps unit length")
	assert.InDelta(t, Up.X, v.X, 1e-9)
	assert.InDelta(t, Up.Y, v.Y, 1e-9)
}

func TestVecHeading(t *testing.T) {
	assert.InDelta(t, 0.0, Up.Heading(), 1e-9)
	assert.InDelta(t, math.Pi/2, Vec2{X: 1}.Heading(), 1e-9)
	assert.InDelta(t, -math.Pi/2, Vec2{X: -1}.Heading(), 1e-9)
	assert.InDelta(t, math.Pi, math.Abs(Vec2{Y: 1}.Heading()), 1e-9)
}

func TestVecArithmetic(t *testing.T) {
	v := Vec2{X: 1, Y: 2}.Add(Vec2{X: 3, Y: 4}).Scale(2).Sub(Vec2{X: 1, Y: 1})
	assert.Equal(t, Vec2{X: 7, Y: 11}, v)

	u := FromAngle(math.Pi / 2)
	assert.InDelta(t, 0.0, u.X, 1e-9)
	assert.InDelta(t, 1.0, u.Y, 1e-9)
	assert.InDelta(t, 5.0, Vec2{X: 3, Y: 4}.Len(), 1e-9)
}

func TestSpatialGridQueryAround(t *testing.T) {
	g := NewSpatialGrid(800, 600, 100)
	g.Insert(Vec2{X: 50, Y: 50}, 0)
	g.Insert(Vec2{X: 150, Y: 150}, 1)
	g.Insert(Vec2{X: 450, Y: 450}, 2)
	g.Insert(Vec2{X: -20, Y: 900}, 3) // clamped to bottom-left cell

	var found []int
	g.QueryAround(Vec2{X: 120, Y: 120}, func(i int) bool {
		found = append(found, i)
		return false
	})
	slices.Sort(found)
	assert.Equal(t, []int{0, 1}, found)

	found = found[:0]
	g.QueryAround(Vec2{X: 10, Y: 590}, func(i int) bool {
		found = append(found, i)
		return false
	})
	assert.Equal(t, []int{3}, found)

	g.Clear()
	calls := 0
	g.QueryAround(Vec2{X: 120, Y: 120}, func(int) bool {
		calls++
		return false
	})
	assert.Zero(t, calls)
}

func TestSpatialGridStopsEarly(t *testing.T) {
	g := NewSpatialGrid(100, 100, 50)
	for i := 0; i < 5; i++ {
		g.Insert(Vec2{X: 10, Y: 10}, i)
	}

	calls := 0
	g.QueryAround(Vec2{X: 10, Y: 10}, func(int) bool {
		calls++
		return true
	})
	assert.Equal(t, 1, calls)
}
