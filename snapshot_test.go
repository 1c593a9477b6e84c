package termcore

import (
	"encoding/json"
	"testing"
)

func TestSnapshotLinesAndSegments(t *testing.T) {
	term, _ := New()
	term.Feed("\x1b[31mred\x1b[m plain\n")

	snap := term.Snapshot(5)

	if len(snap.Lines) == 0 {
		t.Fatalf("expected at least one line")
	}
	line := snap.Lines[0]
	if line.Text != "red plain" {
		t.Errorf("expected 'red plain', got '%s'", line.Text)
	}
	if len(line.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(line.Segments))
	}

	seg := line.Segments[0]
	if seg.Text != "red" {
		t.Errorf("expected 'red', got '%s'", seg.Text)
	}
	if seg.Fg != "#cd0000" {
		t.Errorf("expected '#cd0000', got '%s'", seg.Fg)
	}
	if seg.FgANSI != 1 {
		t.Errorf("expected fg ansi 1, got %d", seg.FgANSI)
	}

	if got := line.Segments[1].Text; got != " plain" {
		t.Errorf("expected ' plain', got '%s'", got)
	}
	// The default foreground approximates to palette white (7).
	if got := line.Segments[1].FgANSI; got != 7 {
		t.Errorf("expected fg ansi 7, got %d", got)
	}
}

func TestSnapshotTrueColorApproximation(t *testing.T) {
	term, _ := New()
	term.Feed("\x1b[38;2;250;5;5mX")

	snap := term.Snapshot(5)

	seg := snap.Lines[0].Segments[0]
	if seg.Fg != "#fa0505" {
		t.Errorf("expected '#fa0505', got '%s'", seg.Fg)
	}
	if seg.FgANSI != 9 {
		t.Errorf("expected nearest palette 9, got %d", seg.FgANSI)
	}
}

func TestSnapshotStateFields(t *testing.T) {
	term, _ := New(WithCapacity(256))
	term.Feed("hello\n")

	snap := term.Snapshot(5)

	if snap.Capacity != 256 {
		t.Errorf("expected capacity 256, got %d", snap.Capacity)
	}
	if snap.Cursor != term.Cursor() {
		t.Errorf("expected cursor %d, got %d", term.Cursor(), snap.Cursor)
	}
	if snap.DisplayLine != term.DisplayLine() {
		t.Errorf("expected display line %d, got %d", term.DisplayLine(), snap.DisplayLine)
	}
	if snap.Selection != nil || snap.Placeholder != nil || snap.Input != nil {
		t.Errorf("expected optional sections omitted")
	}
}

func TestSnapshotSelection(t *testing.T) {
	term, _ := New()
	term.Feed("hello world")
	term.Select(6, 5)

	snap := term.Snapshot(5)

	if snap.Selection == nil {
		t.Fatalf("expected a selection section")
	}
	if snap.Selection.Text != "world" {
		t.Errorf("expected 'world', got '%s'", snap.Selection.Text)
	}
	if snap.Selection.Start != 6 || snap.Selection.Length != 5 {
		t.Errorf("expected {6 5}, got {%d %d}", snap.Selection.Start, snap.Selection.Length)
	}
}

func TestSnapshotPlaceholder(t *testing.T) {
	term, _ := New()
	term.SetPlaceholder("type a command", ColorID(8))

	snap := term.Snapshot(5)

	if snap.Placeholder == nil {
		t.Fatalf("expected a placeholder section")
	}
	if snap.Placeholder.Text != "type a command" {
		t.Errorf("expected 'type a command', got '%s'", snap.Placeholder.Text)
	}
	if snap.Placeholder.Anchor != 0 {
		t.Errorf("expected anchor 0, got %d", snap.Placeholder.Anchor)
	}
}

func TestSnapshotInputSession(t *testing.T) {
	term, _ := New()
	term.Feed("> ")
	term.ReadLine(true, nil)

	snap := term.Snapshot(5)

	if snap.Input == nil {
		t.Fatalf("expected an input section")
	}
	if !snap.Input.Visible {
		t.Errorf("expected a visible session")
	}
	if snap.Input.StartIndex != 2 {
		t.Errorf("expected start index 2, got %d", snap.Input.StartIndex)
	}
}

func TestSnapshotMarshalsToJSON(t *testing.T) {
	term, _ := New()
	term.Feed("\x1b[32mok\x1b[m\n")

	data, err := json.Marshal(term.Snapshot(5))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if snap.Lines[0].Text != "ok" {
		t.Errorf("expected 'ok', got '%s'", snap.Lines[0].Text)
	}
}
