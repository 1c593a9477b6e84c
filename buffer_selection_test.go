package termcore

import "testing"

func TestSelectAndSelectedText(t *testing.T) {
	b := mustBuffer(t, 32)
	b.Write("hello world", ColorDefaultFg, ColorDefaultBg)

	b.Select(6, 5)

	sel, ok := b.Selection()
	if !ok {
		t.Fatalf("expected an active selection")
	}
	if sel.Start != 6 || sel.Length != 5 {
		t.Errorf("expected {6 5}, got {%d %d}", sel.Start, sel.Length)
	}
	if got := b.SelectedText(); got != "world" {
		t.Errorf("expected 'world', got '%s'", got)
	}
}

func TestSelectInvalidClears(t *testing.T) {
	b := mustBuffer(t, 32)
	b.Write("hello", ColorDefaultFg, ColorDefaultBg)
	b.Select(0, 3)

	b.Select(0, 0)

	if _, ok := b.Selection(); ok {
		t.Errorf("expected zero-length select to clear the selection")
	}

	b.Select(-2, 3)
	if _, ok := b.Selection(); ok {
		t.Errorf("expected out-of-range select to clear the selection")
	}
}

func TestIsSelected(t *testing.T) {
	b := mustBuffer(t, 32)
	b.Write("hello", ColorDefaultFg, ColorDefaultBg)

	b.Select(1, 3)

	if b.IsSelected(0) {
		t.Errorf("expected position 0 unselected")
	}
	for pos := 1; pos <= 3; pos++ {
		if !b.IsSelected(pos) {
			t.Errorf("expected position %d selected", pos)
		}
	}
	if b.IsSelected(4) {
		t.Errorf("expected position 4 unselected")
	}
}

func TestSelectionWrapsAround(t *testing.T) {
	b := mustBuffer(t, 8)
	b.Write("0123456789", ColorDefaultFg, ColorDefaultBg)
	// Surviving content is "456789" at positions 4..1.

	b.Select(7, 3)

	if got := b.SelectedText(); got != "789" {
		t.Errorf("expected '789', got '%s'", got)
	}
	if !b.IsSelected(0) {
		t.Errorf("expected wrapped position 0 selected")
	}
	if b.IsSelected(4) {
		t.Errorf("expected position 4 unselected")
	}
}

func TestSelectedTextStopsAtSentinel(t *testing.T) {
	b := mustBuffer(t, 32)
	b.Write("abc", ColorDefaultFg, ColorDefaultBg)

	b.Select(1, 10)

	if got := b.SelectedText(); got != "bc" {
		t.Errorf("expected 'bc', got '%s'", got)
	}
}

func TestPlaceholderValidWhileAnchorEmpty(t *testing.T) {
	b := mustBuffer(t, 32)
	b.Write("> ", ColorDefaultFg, ColorDefaultBg)

	b.SetPlaceholder("type here", ColorID(8))

	ph, ok := b.Placeholder()
	if !ok {
		t.Fatalf("expected a valid placeholder")
	}
	if ph.Text != "type here" || ph.Anchor != 2 {
		t.Errorf("expected 'type here' anchored at 2, got '%s' at %d", ph.Text, ph.Anchor)
	}
}

func TestPlaceholderInvalidatedByContent(t *testing.T) {
	b := mustBuffer(t, 32)
	b.SetPlaceholder("ghost", ColorDefaultFg)

	b.Write("x", ColorDefaultFg, ColorDefaultBg)

	if _, ok := b.Placeholder(); ok {
		t.Errorf("expected placeholder invalidated once the anchor is written")
	}
}

func TestSetPlaceholderEmptyClears(t *testing.T) {
	b := mustBuffer(t, 32)
	b.SetPlaceholder("ghost", ColorDefaultFg)

	b.SetPlaceholder("", ColorDefaultFg)

	if _, ok := b.Placeholder(); ok {
		t.Errorf("expected empty text to clear the placeholder")
	}
}
