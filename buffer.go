package termcore

import "fmt"

// DefaultCapacity is the ring capacity used when none is configured.
const DefaultCapacity = 16000

// minCapacity leaves room for one written cell plus the double sentinel.
const minCapacity = 4

// RingBuffer is a fixed-capacity circular buffer of character cells. The
// write cursor wraps from the last index back to zero, so logical content
// is not guaranteed contiguous. Content is bounded by sentinel cells rather
// than a stored length: the two positions at and immediately after the
// cursor always hold the sentinel, so forward scans probing one position
// ahead never read stale data.
//
// Capacity is fixed at construction. All position arithmetic is modulo the
// capacity and no operation leaves the cursor or scroll origin outside
// [0, capacity).
type RingBuffer struct {
	cells  []Cell
	cursor int

	// displayLine is the ring position of the first line shown by a
	// renderer (the scroll origin).
	displayLine int

	// keepPosition is the fraction of viewport rows the cursor is allowed
	// to trail the scroll origin before ScrollToCurrentPosition advances it.
	keepPosition float64

	// wheelAcc accumulates mouse wheel delta until a full notch.
	wheelAcc int

	// protect is an input watermark: Delete refuses to shift content back
	// across it while an input capture is active. -1 when unset.
	protect int

	// Selection over ring positions. selStart is -1 when inactive; selLen
	// counts forward from selStart, wrapping.
	selStart int
	selLen   int

	placeholder Placeholder
}

// NewRingBuffer creates a ring buffer with the given capacity.
// The capacity is immutable afterwards; values below 4 are rejected.
func NewRingBuffer(capacity int) (*RingBuffer, error) {
	if capacity < minCapacity {
		return nil, fmt.Errorf("ring buffer capacity must be at least %d, got %d", minCapacity, capacity)
	}

	b := &RingBuffer{
		cells:        make([]Cell, capacity),
		keepPosition: DefaultKeepPositionFraction,
		protect:      -1,
		selStart:     -1,
	}
	b.placeholder.Anchor = -1
	return b, nil
}

// Capacity returns the fixed cell capacity.
func (b *RingBuffer) Capacity() int {
	return len(b.cells)
}

// Cursor returns the current write position. The cursor always sits on the
// first sentinel following the written content it appends to.
func (b *RingBuffer) Cursor() int {
	return b.cursor
}

// DisplayLine returns the scroll origin position.
func (b *RingBuffer) DisplayLine() int {
	return b.displayLine
}

// At returns the cell at a ring position.
func (b *RingBuffer) At(pos int) Cell {
	return b.cells[b.add(pos, 0)]
}

// inc advances a position by one with wraparound.
func (b *RingBuffer) inc(i int) int {
	i++
	if i == len(b.cells) {
		return 0
	}
	return i
}

// dec retreats a position by one with wraparound.
func (b *RingBuffer) dec(i int) int {
	if i == 0 {
		return len(b.cells) - 1
	}
	return i - 1
}

// add offsets a position by n (which may be negative) with wraparound.
func (b *RingBuffer) add(i, n int) int {
	c := len(b.cells)
	return ((i+n)%c + c) % c
}

// inRange reports whether idx falls inside [start, end] on the ring.
// A range with end < start is a wrapped range passing through index 0.
func (b *RingBuffer) inRange(idx, start, end int) bool {
	if start <= end {
		return idx >= start && idx <= end
	}
	return idx >= start || idx <= end
}

// writeRune stores one cell at the cursor, advances it, and restores the
// double-sentinel invariant.
func (b *RingBuffer) writeRune(r rune, fg, bg ColorID) {
	b.cells[b.cursor] = Cell{Char: r, Fg: fg, Bg: bg}
	b.cursor = b.inc(b.cursor)
	b.cells[b.cursor] = Cell{}
	b.cells[b.inc(b.cursor)] = Cell{}
}

// Write appends text at the cursor with the given colors, advancing with
// wraparound. The bell character is skipped without consuming a cell.
// Empty input is a no-op.
func (b *RingBuffer) Write(text string, fg, bg ColorID) {
	if text == "" {
		return
	}
	for _, r := range text {
		if r == bellChar {
			continue
		}
		b.writeRune(r, fg, bg)
	}
}

// Insert writes text at an arbitrary position, relocating the content that
// currently follows it. The trailing span up to and including its sentinel
// is shifted forward by the insert length (tail first, so nothing is
// overwritten before it is moved), then the text is written in the gap.
// If the cursor was at or past the position it advances by the insert
// length. Background color of inserted cells is the terminal default.
func (b *RingBuffer) Insert(text string, fg ColorID, position int) {
	if text == "" {
		return
	}

	runes := []rune(text)
	n := len(runes)

	// Length of written content from position to the next sentinel.
	pushLen := 0
	for i, steps := position, 0; !b.cells[i].IsSentinel() && steps < len(b.cells); steps++ {
		pushLen++
		i = b.inc(i)
	}

	// Shift the span and its terminating sentinel forward.
	for j := pushLen; j >= 0; j-- {
		b.cells[b.add(position, j+n)] = b.cells[b.add(position, j)]
	}

	i := position
	for _, r := range runes {
		b.cells[i] = Cell{Char: r, Fg: fg, Bg: ColorDefaultBg}
		i = b.inc(i)
	}

	// The shifted sentinel survives the move; only the second one needs
	// rewriting.
	end := b.add(position, pushLen+n)
	b.cells[b.inc(end)] = Cell{}

	if b.cursor >= position {
		b.cursor = b.add(b.cursor, n)
	}
}

// Delete removes the cell immediately before the cursor, shifting every
// subsequent cell (up to and including the terminating sentinel) back by
// one. It is a no-op when the cursor sits on the protected input watermark
// or when no written content precedes the cursor.
func (b *RingBuffer) Delete() {
	if b.cursor == b.protect {
		return
	}
	if b.cells[b.dec(b.cursor)].IsSentinel() {
		return
	}

	j := b.cursor
	for steps := 0; steps < len(b.cells); steps++ {
		b.cells[b.dec(j)] = b.cells[j]
		if b.cells[j].IsSentinel() {
			break
		}
		j = b.inc(j)
	}
	b.cursor = b.dec(b.cursor)
}

// EraseRange deletes the inclusive span [start, end], shifting all content
// after end down to start. The span may wrap past the end of the ring
// (end < start). Any selection is cleared; the scroll origin and cursor are
// relocated to start if they fell inside the erased span.
func (b *RingBuffer) EraseRange(start, end int) {
	i := 0
	for ; i < len(b.cells); i++ {
		c := b.cells[b.add(end, 1+i)]
		b.cells[b.add(start, i)] = c
		if c.IsSentinel() {
			break
		}
	}

	newEnd := b.add(start, i)
	b.cells[b.inc(newEnd)] = Cell{}

	b.ClearSelection()

	if b.inRange(b.displayLine, start, end) {
		b.displayLine = start
	}
	if b.inRange(b.cursor, start, end) {
		b.cursor = start
	}
}

// Clear resets the cursor, scroll origin, selection, and placeholder, and
// writes sentinels at positions 0, 1, and capacity-1 so forward and
// backward scans terminate immediately. Previously written cells are left
// in place; they are unreachable past the sentinels.
func (b *RingBuffer) Clear() {
	b.cursor = 0
	b.displayLine = 0
	b.wheelAcc = 0
	b.ClearSelection()
	b.ClearPlaceholder()

	b.cells[0] = Cell{}
	b.cells[1] = Cell{}
	b.cells[len(b.cells)-1] = Cell{}
}

// Text collects the runes in [from, to), stopping early at a sentinel.
func (b *RingBuffer) Text(from, to int) string {
	var runes []rune
	i := from
	for steps := 0; steps < len(b.cells); steps++ {
		if i == to || b.cells[i].IsSentinel() {
			break
		}
		runes = append(runes, b.cells[i].Char)
		i = b.inc(i)
	}
	return string(runes)
}

// setProtect installs (or removes, with -1) the input watermark.
func (b *RingBuffer) setProtect(pos int) {
	b.protect = pos
}
