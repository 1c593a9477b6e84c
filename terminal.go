package termcore

import "io"

const (
	// DefaultRows is the default viewport height in logical lines.
	DefaultRows = 24
	// DefaultCols is the default viewport width used by absolute cursor
	// positioning.
	DefaultCols = 80
)

// Terminal is the emulation core: a ring buffer of colored cells, the ANSI
// interpreter that mutates it, and the input editor capturing keystrokes
// into it. It holds no display: a renderer walks the read-only view (see
// View and Snapshot) and an input layer feeds it key events.
//
// The core is single-threaded by design: every operation is a bounded,
// synchronous scan over at most the buffer capacity, applied strictly in
// call order. Callers delivering bytes or keys from multiple goroutines
// must serialize access themselves; only the process-wide color registry
// carries its own lock.
type Terminal struct {
	buf    *RingBuffer
	interp *Interpreter
	editor *InputEditor

	rows int
	cols int

	bell      BellProvider
	recording RecordingProvider
}

// Option configures a Terminal during construction.
type Option func(*config)

type config struct {
	capacity  int
	rows      int
	cols      int
	keep      float64
	bell      BellProvider
	recording RecordingProvider
	observers []func(string)
	freeInput bool
}

// WithCapacity sets the ring buffer capacity in cells. The capacity is
// fixed for the lifetime of the terminal; invalid values make New fail.
func WithCapacity(cells int) Option {
	return func(c *config) {
		c.capacity = cells
	}
}

// WithViewport sets the viewport dimensions used by scroll-follow and by
// absolute cursor positioning. Values <= 0 are replaced with the defaults
// (24x80).
func WithViewport(rows, cols int) Option {
	return func(c *config) {
		if rows > 0 {
			c.rows = rows
		}
		if cols > 0 {
			c.cols = cols
		}
	}
}

// WithKeepPositionFraction sets the fraction of viewport rows the cursor
// may trail the scroll origin before the viewport follows it. Default 0.75.
func WithKeepPositionFraction(f float64) Option {
	return func(c *config) {
		c.keep = f
	}
}

// WithBell sets the handler for bell characters.
// Defaults to a no-op if not set.
func WithBell(p BellProvider) Option {
	return func(c *config) {
		c.bell = p
	}
}

// WithRecording sets the handler capturing the raw stream before
// interpretation. Defaults to a no-op if not set.
func WithRecording(p RecordingProvider) Option {
	return func(c *config) {
		c.recording = p
	}
}

// WithLineObserver registers a callback fired with every line the input
// editor accepts.
func WithLineObserver(fn func(string)) Option {
	return func(c *config) {
		if fn != nil {
			c.observers = append(c.observers, fn)
		}
	}
}

// WithFreeInput starts the terminal in free-input mode: keystrokes are
// always captured into the buffer and accepted lines go to the observers.
func WithFreeInput() Option {
	return func(c *config) {
		c.freeInput = true
	}
}

// New creates a terminal core with the given options. Construction fails
// on an unusable capacity; every other misconfiguration falls back to a
// documented default.
func New(opts ...Option) (*Terminal, error) {
	cfg := &config{
		capacity:  DefaultCapacity,
		rows:      DefaultRows,
		cols:      DefaultCols,
		keep:      DefaultKeepPositionFraction,
		bell:      NoopBell{},
		recording: NoopRecording{},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	buf, err := NewRingBuffer(cfg.capacity)
	if err != nil {
		return nil, err
	}
	buf.SetKeepPositionFraction(cfg.keep)

	t := &Terminal{
		buf:       buf,
		rows:      cfg.rows,
		cols:      cfg.cols,
		bell:      cfg.bell,
		recording: cfg.recording,
	}
	t.interp = NewInterpreter(buf, cfg.cols, cfg.bell)
	t.editor = NewInputEditor(buf)

	for _, o := range cfg.observers {
		t.editor.AddLineObserver(o)
	}
	if cfg.freeInput {
		t.editor.SetFreeInput(true)
	}

	return t, nil
}

// Rows returns the viewport height in logical lines.
func (t *Terminal) Rows() int { return t.rows }

// Cols returns the viewport width in columns.
func (t *Terminal) Cols() int { return t.cols }

// Capacity returns the fixed ring buffer capacity.
func (t *Terminal) Capacity() int { return t.buf.Capacity() }

// Buffer exposes the underlying ring buffer for direct inspection.
func (t *Terminal) Buffer() *RingBuffer { return t.buf }

// Editor exposes the input editor.
func (t *Terminal) Editor() *InputEditor { return t.editor }

// Cursor returns the current write position.
func (t *Terminal) Cursor() int { return t.buf.Cursor() }

// DisplayLine returns the scroll origin position.
func (t *Terminal) DisplayLine() int { return t.buf.DisplayLine() }

// Feed pushes output text, raw and possibly containing escape sequences,
// through the interpreter into the buffer, then follows the cursor with
// the viewport. Returns the number of literal characters written.
func (t *Terminal) Feed(text string) int {
	t.recording.Record([]byte(text))
	n := t.interp.Feed(text)
	t.buf.ScrollToCurrentPosition(t.rows)
	return n
}

// Write implements io.Writer so command output can be piped straight into
// the core.
func (t *Terminal) Write(p []byte) (int, error) {
	t.Feed(string(p))
	return len(p), nil
}

var _ io.Writer = (*Terminal)(nil)

// HandleKey feeds one keystroke into the input editor, then follows the
// caret with the viewport. Without an active capture this does nothing.
func (t *Terminal) HandleKey(ev KeyEvent) {
	t.editor.HandleKey(ev)
	t.buf.ScrollToCurrentPosition(t.rows)
}

// ReadLine starts a line capture; fn receives the accepted line.
func (t *Terminal) ReadLine(visible bool, fn func(string)) {
	t.editor.ReadLine(visible, fn)
}

// ReadChar starts a single-shot capture for the next printable character.
func (t *Terminal) ReadChar(fn func(rune)) {
	t.editor.ReadChar(fn)
}

// ReadKey starts a single-shot capture for the next keypress.
func (t *Terminal) ReadKey(fn func(Key)) {
	t.editor.ReadKey(fn)
}

// ReadKeyEvent starts a single-shot capture for the next key event.
func (t *Terminal) ReadKeyEvent(fn func(KeyEvent)) {
	t.editor.ReadKeyEvent(fn)
}

// CancelRead ends any active capture without completing it.
func (t *Terminal) CancelRead() {
	t.editor.Cancel()
}

// AddLineObserver registers a callback fired with every accepted line.
func (t *Terminal) AddLineObserver(fn func(string)) {
	t.editor.AddLineObserver(fn)
}

// --- Scrolling ---

// ScrollToNextLine advances the viewport one line toward newer content.
func (t *Terminal) ScrollToNextLine() { t.buf.ScrollToNextLine() }

// ScrollToLastLine moves the viewport one line toward older content.
func (t *Terminal) ScrollToLastLine() { t.buf.ScrollToLastLine() }

// ScrollWheel accumulates a wheel delta and scrolls one line per notch.
func (t *Terminal) ScrollWheel(delta int) { t.buf.ScrollWheel(delta) }

// ScrollToCurrentPosition brings the cursor back into the viewport's
// keep-position band.
func (t *Terminal) ScrollToCurrentPosition() { t.buf.ScrollToCurrentPosition(t.rows) }

// --- Selection ---

// Select sets the active selection: length cells from a ring position.
func (t *Terminal) Select(start, length int) { t.buf.Select(start, length) }

// ClearSelection deactivates the selection.
func (t *Terminal) ClearSelection() { t.buf.ClearSelection() }

// SelectedText returns the content covered by the active selection.
func (t *Terminal) SelectedText() string { return t.buf.SelectedText() }

// --- Placeholder ---

// SetPlaceholder anchors ghost text at the cursor. It renders until real
// content reaches the anchor.
func (t *Terminal) SetPlaceholder(text string, color ColorID) {
	t.buf.SetPlaceholder(text, color)
}

// Placeholder returns the placeholder if one is set and still valid.
func (t *Terminal) Placeholder() (Placeholder, bool) {
	return t.buf.Placeholder()
}

// --- Content ---

// String returns the written content from the start of the buffer to the
// end. Implements fmt.Stringer.
func (t *Terminal) String() string {
	start := t.buf.SeekStartOfBuffer(t.buf.Cursor())
	return t.buf.Text(start, t.buf.SeekEndOfBuffer(start))
}

// RecordedData returns the raw stream captured since the last
// ClearRecording call.
func (t *Terminal) RecordedData() []byte {
	return t.recording.Data()
}

// ClearRecording discards the captured stream.
func (t *Terminal) ClearRecording() {
	t.recording.Clear()
}
