package termcore

// sentinel marks a ring position that holds no written content. Scans over
// the buffer are bounded by sentinel cells instead of a stored length.
const sentinel rune = 0

// bellChar is skipped by writes without consuming a cell.
const bellChar rune = '\a'

// Cell stores one character together with its foreground and background
// color for a single ring position.
type Cell struct {
	Char rune
	Fg   ColorID
	Bg   ColorID
}

// NewCell creates a written cell with default colors.
func NewCell(ch rune) Cell {
	return Cell{Char: ch, Fg: ColorDefaultFg, Bg: ColorDefaultBg}
}

// IsSentinel returns true if the cell holds no written content.
func (c Cell) IsSentinel() bool {
	return c.Char == sentinel
}
