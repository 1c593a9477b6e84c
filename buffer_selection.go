package termcore

// Selection is a half-open range over ring positions: Length cells counted
// forward from Start, wrapping past the end of the ring.
type Selection struct {
	Start  int
	Length int
}

// Select sets the active selection. A non-positive length or an
// out-of-range start clears it instead.
func (b *RingBuffer) Select(start, length int) {
	if length <= 0 || start < 0 || start >= len(b.cells) {
		b.ClearSelection()
		return
	}
	if length > len(b.cells) {
		length = len(b.cells)
	}
	b.selStart = start
	b.selLen = length
}

// ClearSelection deactivates the selection.
func (b *RingBuffer) ClearSelection() {
	b.selStart = -1
	b.selLen = 0
}

// Selection returns the active selection. ok is false when none is set.
func (b *RingBuffer) Selection() (sel Selection, ok bool) {
	if b.selStart == -1 {
		return Selection{}, false
	}
	return Selection{Start: b.selStart, Length: b.selLen}, true
}

// IsSelected reports whether a ring position falls inside the active
// selection, accounting for wraparound.
func (b *RingBuffer) IsSelected(pos int) bool {
	if b.selStart == -1 {
		return false
	}
	end := b.add(b.selStart, b.selLen-1)
	return b.inRange(pos, b.selStart, end)
}

// SelectedText returns the written content covered by the selection,
// stopping early at a sentinel.
func (b *RingBuffer) SelectedText() string {
	if b.selStart == -1 {
		return ""
	}
	return b.Text(b.selStart, b.add(b.selStart, b.selLen))
}
