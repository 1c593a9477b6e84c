package termcore

// Placeholder is ghost text rendered from an anchor position while nothing
// has been written there. The instant real content reaches the anchor the
// placeholder stops rendering; it does not occupy cells.
type Placeholder struct {
	Text   string
	Color  ColorID
	Anchor int
}

// SetPlaceholder anchors ghost text at the current cursor position.
// An empty text clears the placeholder.
func (b *RingBuffer) SetPlaceholder(text string, color ColorID) {
	if text == "" {
		b.ClearPlaceholder()
		return
	}
	b.placeholder = Placeholder{Text: text, Color: color, Anchor: b.cursor}
}

// ClearPlaceholder removes the placeholder.
func (b *RingBuffer) ClearPlaceholder() {
	b.placeholder = Placeholder{Anchor: -1}
}

// Placeholder returns the placeholder if one is set and still valid, i.e.
// its anchor position has not been overwritten by real content.
func (b *RingBuffer) Placeholder() (Placeholder, bool) {
	if b.placeholder.Anchor == -1 || b.placeholder.Text == "" {
		return Placeholder{}, false
	}
	if !b.cells[b.placeholder.Anchor].IsSentinel() {
		return Placeholder{}, false
	}
	return b.placeholder, true
}
