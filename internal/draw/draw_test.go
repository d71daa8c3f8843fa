package draw

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/spacerocks/internal/object"
	"github.com/tomz197/spacerocks/internal/physics"
)

var testScreen = object.Screen{Width: 800, Height: 600}

func fixedSize(w, h int) TermSizeFunc {
	return func() (int, int, error) { return w, h, nil }
}

func TestFitAspect(t *testing.T) {
	tests := []struct {
		name                   string
		termW, termH           int
		cols, rows, offC, offR int
	}{
		{"wide terminal", 200, 50, 133, 50, 33, 0},
		{"tall terminal", 80, 60, 80, 30, 0, 15},
		{"exact fit", 80, 30, 80, 30, 0, 0},
		{"tiny", 1, 1, 1, 1, 0, 0},
		{"no size", 0, 40, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, rows, offC, offR := FitAspect(tt.termW, tt.termH, testScreen)
			assert.Equal(t, []int{tt.cols, tt.rows, tt.offC, tt.offR}, []int{cols, rows, offC, offR})
		})
	}
}

func TestCanvasScalesLogicalCoordinates(t *testing.T) {
	c := NewScaledCanvas(80, 30, 800, 600)

	c.SetFloat(400, 300)
	assert.True(t, c.Pixel(40, 30))
	assert.False(t, c.Pixel(41, 30))

	// Off-canvas points are clipped.
	c.SetFloat(-50, 10)
	c.SetFloat(900, 10)
	assert.False(t, c.Pixel(-5, 1))
}

func TestCanvasRenderOnlyChangedCells(t *testing.T) {
	c := NewScaledCanvas(80, 30, 800, 600)
	var buf bytes.Buffer

	c.SetFloat(400, 300)
	require.NoError(t, c.Render(&buf))
	assert.Equal(t, "\033[16;41H▀", buf.String())

	buf.Reset()
	c.Clear()
	c.SetFloat(400, 300)
	require.NoError(t, c.Render(&buf))
	assert.Empty(t, buf.String(), "unchanged frame writes nothing")

	buf.Reset()
	c.Clear()
	require.NoError(t, c.Render(&buf))
	assert.Equal(t, "\033[16;41H ", buf.String(), "vacated cell is erased")
}

func TestCanvasRenderAppliesOffset(t *testing.T) {
	c := NewScaledCanvas(80, 30, 800, 600)
	c.SetOffset(10, 5)
	c.SetFloat(0, 10)

	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf))
	assert.Equal(t, "\033[6;11H▄", buf.String())
}

func TestCanvasFilledPolygon(t *testing.T) {
	c := NewScaledCanvas(40, 20, 40, 40)
	c.DrawPolygon([]physics.Vec2{{X: 10, Y: 10}, {X: 30, Y: 10}, {X: 30, Y: 30}, {X: 10, Y: 30}}, true)

	assert.True(t, c.Pixel(20, 20), "interior is filled")
	assert.True(t, c.Pixel(10, 10), "corner is drawn")
	assert.False(t, c.Pixel(5, 5))

	c.Clear()
	c.DrawPolygon([]physics.Vec2{{X: 10, Y: 10}, {X: 30, Y: 10}, {X: 30, Y: 30}, {X: 10, Y: 30}}, false)
	assert.False(t, c.Pixel(20, 20), "outline only")
	assert.True(t, c.Pixel(20, 10))
}

func TestRenderBorder(t *testing.T) {
	c := NewScaledCanvas(4, 2, 800, 600)
	var buf bytes.Buffer

	require.NoError(t, c.RenderBorder(&buf))
	assert.Empty(t, buf.String(), "no room for a border")

	c.SetOffset(1, 1)
	require.NoError(t, c.RenderBorder(&buf))
	out := buf.String()
	assert.Contains(t, out, "\033[1;1H┌────┐")
	assert.Contains(t, out, "\033[4;1H└────┘")
	assert.Contains(t, out, "\033[2;1H│\033[2;6H│")
}

func TestChunkWriterFlush(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf, 3, 2)

	cw.WriteAt(1, 1, "hi")
	assert.Equal(t, 0, buf.Len(), "nothing is written before Flush")

	big := strings.Repeat("x", 3*maxChunkSize+7)
	cw.WriteString(big)
	require.NoError(t, cw.Flush())

	assert.Equal(t, "\033[3;4Hhi"+big, buf.String())

	require.NoError(t, cw.Flush())
	assert.Equal(t, len("\033[3;4Hhi"+big), buf.Len(), "a second Flush writes nothing")
}

func TestShipTrianglePointsAlongHeading(t *testing.T) {
	ship := object.NewShip(physics.Vec2{X: 100, Y: 100}, object.DefaultGeometry())
	tri := ShipTriangle(ship, nil)

	require.Len(t, tri, 3)
	assert.InDelta(t, 100, tri[0].X, 1e-9)
	assert.InDelta(t, 100-ship.Radius(), tri[0].Y, 1e-9)
	for _, p := range tri[1:] {
		assert.Greater(t, p.Y, 100.0, "wings trail behind the nose")
	}
}

func TestAsteroidPolygonFollowsOutline(t *testing.T) {
	a := &object.Asteroid{
		Body:    object.Body{Pos: physics.Vec2{X: 50, Y: 50}, R: 10},
		Outline: []float64{1, 0.5, 1, 0.5},
	}
	poly := AsteroidPolygon(a, nil)

	require.Len(t, poly, 4)
	assert.InDelta(t, 60, poly[0].X, 1e-9)
	assert.InDelta(t, 55, poly[1].Y, 1e-9)

	a.Outline = nil
	assert.Len(t, AsteroidPolygon(a, poly), 8)
}

func TestTerminalRendersScene(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf, fixedSize(80, 30), testScreen)
	require.NoError(t, term.Begin())
	assert.Contains(t, buf.String(), seqHideCursor)

	geom := object.DefaultGeometry()
	scene := object.Scene{
		Screen:  testScreen,
		Ship:    object.NewShip(testScreen.Center(), geom),
		Bullets: []*object.Bullet{object.NewBullet(physics.Vec2{X: 100, Y: 100}, physics.Vec2{}, geom.BulletRadius)},
	}

	buf.Reset()
	require.NoError(t, term.Render(scene))
	out := buf.String()
	assert.True(t, strings.ContainsAny(out, "█▀▄"))
	assert.Contains(t, out, "\033[6;11H", "bullet cell is drawn")
	assert.NotContains(t, out, "You")

	scene.Ship = nil
	scene.Message = "You lost"
	buf.Reset()
	require.NoError(t, term.Render(scene))
	out = buf.String()
	assert.True(t, strings.HasPrefix(out, seqClearScreen), "message change clears the screen")
	assert.Contains(t, out, "\033[38;2;255;99;71mYou lost\033[0m")

	buf.Reset()
	require.NoError(t, term.End())
	assert.Contains(t, buf.String(), seqShowCursor)
}

func TestTerminalRenderSizeError(t *testing.T) {
	boom := errors.New("boom")
	term := NewTerminal(&bytes.Buffer{}, func() (int, int, error) { return 0, 0, boom }, testScreen)

	err := term.Render(object.Scene{Screen: testScreen})
	require.ErrorIs(t, err, boom)
}
