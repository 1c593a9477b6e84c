package termcore

import "testing"

func TestViewWalksFromDisplayLine(t *testing.T) {
	term, _ := New()
	term.Feed("ab")

	cells := term.View(5)

	if len(cells) != 3 {
		t.Fatalf("expected 3 cells, got %d", len(cells))
	}
	if cells[0].Char != 'a' || cells[1].Char != 'b' {
		t.Errorf("expected 'a' 'b', got %q %q", cells[0].Char, cells[1].Char)
	}
}

func TestViewSyntheticCursorCell(t *testing.T) {
	term, _ := New()
	term.Feed("ab")

	cells := term.View(5)

	last := cells[len(cells)-1]
	if !last.Cursor {
		t.Errorf("expected the last cell to carry the cursor")
	}
	if last.Char != ' ' {
		t.Errorf("expected a blank synthetic cell, got %q", last.Char)
	}
	if last.Pos != term.Cursor() {
		t.Errorf("expected pos %d, got %d", term.Cursor(), last.Pos)
	}
}

func TestViewCursorOnContentCell(t *testing.T) {
	term, _ := New()
	term.Feed("abc\x1b[1;2H")

	cells := term.View(5)

	if len(cells) != 3 {
		t.Fatalf("expected 3 cells, got %d", len(cells))
	}
	if !cells[1].Cursor {
		t.Errorf("expected cursor on 'b'")
	}
	if cells[0].Cursor || cells[2].Cursor {
		t.Errorf("expected a single cursor cell")
	}
}

func TestViewStopsAfterRows(t *testing.T) {
	term, _ := New()
	term.Feed("a\nb\nc\n")

	cells := term.View(2)

	// Two logical lines: "a\n" and "b\n".
	if len(cells) != 4 {
		t.Fatalf("expected 4 cells, got %d", len(cells))
	}
	if cells[2].Char != 'b' {
		t.Errorf("expected 'b', got %q", cells[2].Char)
	}
}

func TestViewStartsAtScrollOrigin(t *testing.T) {
	term, _ := New()
	term.Feed("a\nb\nc")
	term.ScrollToNextLine()

	cells := term.View(5)

	if cells[0].Char != 'b' {
		t.Errorf("expected view to start at 'b', got %q", cells[0].Char)
	}
}

func TestViewMarksSelection(t *testing.T) {
	term, _ := New()
	term.Feed("abcd")
	term.Select(1, 2)

	cells := term.View(5)

	if cells[0].Selected || cells[3].Selected {
		t.Errorf("expected edges unselected")
	}
	if !cells[1].Selected || !cells[2].Selected {
		t.Errorf("expected 'b' and 'c' selected")
	}
}

func TestViewCarriesCellColors(t *testing.T) {
	term, _ := New()
	term.Feed("\x1b[31;1m\x1b[44mX")

	cells := term.View(5)

	if cells[0].Fg != ColorID(9) {
		t.Errorf("expected fg 9, got %d", cells[0].Fg)
	}
	if cells[0].Bg != ColorID(4) {
		t.Errorf("expected bg 4, got %d", cells[0].Bg)
	}
}

func TestViewLinesSplitsOnNewline(t *testing.T) {
	term, _ := New()
	term.Feed("ab\ncd")

	lines := term.ViewLines(5)

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if len(lines[0]) != 2 || lines[0][0].Char != 'a' || lines[0][1].Char != 'b' {
		t.Errorf("unexpected first line %+v", lines[0])
	}
	// The second line carries 'c', 'd' and the synthetic cursor cell.
	if len(lines[1]) != 3 || lines[1][0].Char != 'c' {
		t.Errorf("unexpected second line %+v", lines[1])
	}
}

func TestViewEmptyBuffer(t *testing.T) {
	term, _ := New()

	cells := term.View(5)

	if len(cells) != 1 || !cells[0].Cursor {
		t.Errorf("expected only the synthetic cursor cell, got %+v", cells)
	}
}
