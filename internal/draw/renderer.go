package draw

import (
	"fmt"
	"image/color"
	"io"
	"unicode/utf8"

	"golang.org/x/image/colornames"

	"github.com/tomz197/spacerocks/internal/object"
	"github.com/tomz197/spacerocks/internal/physics"
)

// MessageColor is the colour of the win/lose message.
var MessageColor = colornames.Tomato

// Terminal renders scenes to an ANSI terminal. The playfield is scaled to
// the largest area with the screen's aspect ratio (cells are twice as tall
// as wide) and centred, with a border around it when there is room.
type Terminal struct {
	out         *ChunkWriter
	size        TermSizeFunc
	screen      object.Screen
	canvas      *Canvas
	termWidth   int
	termHeight  int
	lastMessage string
	points      []physics.Vec2 // Reused polygon buffer
}

// NewTerminal creates a renderer for scenes of the given screen size.
// size is queried every frame so resizes take effect immediately.
func NewTerminal(w io.Writer, size TermSizeFunc, screen object.Screen) *Terminal {
	return &Terminal{
		out:    NewChunkWriter(w, 0, 0),
		size:   size,
		screen: screen,
		canvas: NewScaledCanvas(0, 0, float64(screen.Width), float64(screen.Height)),
	}
}

// Begin clears the terminal and hides the cursor.
func (t *Terminal) Begin() error {
	ClearScreen(t.out)
	HideCursor(t.out)
	t.canvas.ForceRedraw()
	return t.out.Flush()
}

// End restores the cursor and clears the terminal.
func (t *Terminal) End() error {
	t.out.WriteString(seqResetStyle)
	ClearScreen(t.out)
	ShowCursor(t.out)
	return t.out.Flush()
}

// Render draws one frame: asteroids as outlines, bullets as single pixels,
// the ship as a filled triangle and the status message centred on top.
func (t *Terminal) Render(scene object.Scene) error {
	termWidth, termHeight, err := t.size()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	if termWidth != t.termWidth || termHeight != t.termHeight || scene.Message != t.lastMessage {
		t.layout(termWidth, termHeight)
		t.lastMessage = scene.Message
	}

	c := t.canvas
	c.Clear()
	for _, a := range scene.Asteroids {
		t.points = AsteroidPolygon(a, t.points)
		c.DrawPolygon(t.points, false)
	}
	for _, b := range scene.Bullets {
		c.SetFloat(b.Pos.X, b.Pos.Y)
	}
	if scene.Ship != nil {
		t.points = ShipTriangle(scene.Ship, t.points)
		c.DrawPolygon(t.points, true)
	}

	if err := c.Render(t.out); err != nil {
		return err
	}
	if scene.Message != "" {
		t.drawMessage(scene.Message)
	}
	return t.out.Flush()
}

// layout fits the canvas to the terminal and clears it so no stale cells or
// borders remain.
func (t *Terminal) layout(termWidth, termHeight int) {
	t.termWidth = termWidth
	t.termHeight = termHeight

	cols, rows, offsetCol, offsetRow := FitAspect(termWidth, termHeight, t.screen)
	t.canvas.Resize(cols, rows)
	t.canvas.SetOffset(offsetCol, offsetRow)
	t.canvas.ForceRedraw()
	t.out.SetOffset(offsetCol, offsetRow)

	ClearScreen(t.out)
	t.canvas.RenderBorder(t.out)
}

// drawMessage writes msg centred on the canvas in MessageColor.
func (t *Terminal) drawMessage(msg string) {
	col, row := t.canvas.LogicalToTerminal(t.screen.Center().X, t.screen.Center().Y)
	col = max(col-utf8.RuneCountInString(msg)/2, 1)
	t.out.WriteAt(col, row, foreground(MessageColor)+msg+seqResetStyle)
}

// FitAspect returns the largest canvas in columns and rows that fits the
// terminal with the screen's aspect ratio, and the offsets that centre it.
// Every cell holds two vertical pixels, so a square pixel is one column wide
// and half a row tall.
func FitAspect(termWidth, termHeight int, screen object.Screen) (cols, rows, offsetCol, offsetRow int) {
	if termWidth <= 0 || termHeight <= 0 || screen.Width <= 0 || screen.Height <= 0 {
		return 0, 0, 0, 0
	}

	cols, rows = termWidth, termHeight
	if cols*screen.Height > rows*2*screen.Width {
		cols = rows * 2 * screen.Width / screen.Height
	} else {
		rows = cols * screen.Height / (2 * screen.Width)
	}
	cols = max(cols, 1)
	rows = max(rows, 1)

	return cols, rows, (termWidth - cols) / 2, (termHeight - rows) / 2
}

// foreground returns the 24-bit colour escape sequence for c.
func foreground(c color.RGBA) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", c.R, c.G, c.B)
}
