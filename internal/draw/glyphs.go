// Package draw renders game scenes to ANSI terminals.
package draw

// Half-block glyphs. Each terminal cell shows two vertically stacked pixels.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// cellGlyph returns the glyph for a cell from its top and bottom pixels.
func cellGlyph(top, bottom bool) rune {
	switch {
	case top && bottom:
		return BlockFull
	case top:
		return BlockUpperHalf
	case bottom:
		return BlockLowerHalf
	default:
		return BlockEmpty
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
