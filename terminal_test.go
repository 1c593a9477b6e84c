package termcore

import "testing"

func TestNewDefaults(t *testing.T) {
	term, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if term.Rows() != 24 {
		t.Errorf("expected 24 rows, got %d", term.Rows())
	}
	if term.Cols() != 80 {
		t.Errorf("expected 80 cols, got %d", term.Cols())
	}
	if term.Capacity() != DefaultCapacity {
		t.Errorf("expected capacity %d, got %d", DefaultCapacity, term.Capacity())
	}
}

func TestNewWithOptions(t *testing.T) {
	term, err := New(WithCapacity(512), WithViewport(10, 40))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if term.Capacity() != 512 {
		t.Errorf("expected capacity 512, got %d", term.Capacity())
	}
	if term.Rows() != 10 || term.Cols() != 40 {
		t.Errorf("expected 10x40 viewport, got %dx%d", term.Rows(), term.Cols())
	}
}

func TestNewRejectsBadCapacity(t *testing.T) {
	if _, err := New(WithCapacity(2)); err == nil {
		t.Errorf("expected error for capacity 2")
	}
	if _, err := New(WithCapacity(-10)); err == nil {
		t.Errorf("expected error for negative capacity")
	}
}

func TestNewInvalidViewportFallsBack(t *testing.T) {
	term, err := New(WithViewport(0, -5))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if term.Rows() != DefaultRows || term.Cols() != DefaultCols {
		t.Errorf("expected default viewport, got %dx%d", term.Rows(), term.Cols())
	}
}

func TestFeedAndString(t *testing.T) {
	term, _ := New()

	n := term.Feed("hello")

	if n != 5 {
		t.Errorf("expected 5 literals, got %d", n)
	}
	if term.String() != "hello" {
		t.Errorf("expected 'hello', got '%s'", term.String())
	}
}

func TestTerminalImplementsWriter(t *testing.T) {
	term, _ := New()

	n, err := term.Write([]byte("piped \x1b[32moutput\x1b[m"))

	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if n != len("piped \x1b[32moutput\x1b[m") {
		t.Errorf("expected full write, got %d", n)
	}
	if term.String() != "piped output" {
		t.Errorf("expected 'piped output', got '%s'", term.String())
	}
}

func TestFeedFollowsCursor(t *testing.T) {
	term, _ := New(WithViewport(2, 80))

	term.Feed("a\nb\nc\n")

	// rows=2 with the default fraction keeps at most one trailing line.
	if term.DisplayLine() != 4 {
		t.Errorf("expected display line 4, got %d", term.DisplayLine())
	}
}

func TestKeepPositionFractionOption(t *testing.T) {
	term, _ := New(WithViewport(4, 80), WithKeepPositionFraction(0.5))

	for i := 0; i < 5; i++ {
		term.Feed("x\n")
	}

	if got := term.Buffer().NumberOfLinesToCurrentPosition(); got != 2 {
		t.Errorf("expected 2 trailing lines, got %d", got)
	}
}

func TestRecordingCapturesRawStream(t *testing.T) {
	term, _ := New(WithRecording(&MemoryRecording{}))

	term.Feed("abc")
	term.Feed("\x1b[31mdef")

	want := "abc\x1b[31mdef"
	if got := string(term.RecordedData()); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	term.ClearRecording()
	if len(term.RecordedData()) != 0 {
		t.Errorf("expected empty recording after clear")
	}
}

func TestBellOption(t *testing.T) {
	bell := &countingBell{}
	term, _ := New(WithBell(bell))

	term.Feed("ding\a\a")

	if bell.rings != 2 {
		t.Errorf("expected 2 rings, got %d", bell.rings)
	}
	if term.String() != "ding" {
		t.Errorf("expected 'ding', got '%s'", term.String())
	}
}

func TestFreeInputOption(t *testing.T) {
	var lines []string
	term, _ := New(WithFreeInput(), WithLineObserver(func(line string) {
		lines = append(lines, line)
	}))

	term.HandleKey(KeyEvent{Key: KeyRune, Rune: 'h'})
	term.HandleKey(KeyEvent{Key: KeyRune, Rune: 'i'})
	term.HandleKey(KeyEvent{Key: KeyEnter})

	if len(lines) != 1 || lines[0] != "hi" {
		t.Errorf("expected [hi], got %v", lines)
	}
	if !term.Editor().Capturing() {
		t.Errorf("expected free input still armed")
	}
}

func TestTerminalReadLine(t *testing.T) {
	term, _ := New()
	term.Feed("name: ")

	var got string
	term.ReadLine(true, func(line string) { got = line })
	term.HandleKey(KeyEvent{Key: KeyRune, Rune: 'j'})
	term.HandleKey(KeyEvent{Key: KeyRune, Rune: 'o'})
	term.HandleKey(KeyEvent{Key: KeyEnter})

	if got != "jo" {
		t.Errorf("expected 'jo', got '%s'", got)
	}
	if term.String() != "name: jo\n" {
		t.Errorf("expected 'name: jo\\n', got '%s'", term.String())
	}
}

func TestTerminalCancelRead(t *testing.T) {
	term, _ := New()

	term.ReadLine(true, nil)
	term.CancelRead()

	if term.Editor().Capturing() {
		t.Errorf("expected capture cancelled")
	}
}

func TestTerminalSelection(t *testing.T) {
	term, _ := New()
	term.Feed("hello world")

	term.Select(6, 5)
	if got := term.SelectedText(); got != "world" {
		t.Errorf("expected 'world', got '%s'", got)
	}

	term.ClearSelection()
	if got := term.SelectedText(); got != "" {
		t.Errorf("expected empty selection, got '%s'", got)
	}
}

func TestTerminalPlaceholder(t *testing.T) {
	term, _ := New()
	term.Feed("> ")

	term.SetPlaceholder("search...", ColorID(8))

	ph, ok := term.Placeholder()
	if !ok || ph.Text != "search..." {
		t.Errorf("expected placeholder 'search...', got %+v (%v)", ph, ok)
	}
}

func TestMemoryRecording(t *testing.T) {
	var rec MemoryRecording

	rec.Record([]byte("one"))
	rec.Record([]byte("two"))

	if got := string(rec.Data()); got != "onetwo" {
		t.Errorf("expected 'onetwo', got '%s'", got)
	}

	rec.Clear()
	if rec.Data() != nil {
		t.Errorf("expected nil after clear, got %v", rec.Data())
	}
}

func TestStringWithWrappedBuffer(t *testing.T) {
	term, _ := New(WithCapacity(8))

	term.Feed("0123456789")

	if got := term.String(); got != "456789" {
		t.Errorf("expected '456789', got '%s'", got)
	}
}
