package termcore

import (
	"strings"
	"unicode"
)

// captureMode tags the pending read callback. Exactly one callback field is
// set while a capture is active; it is invoked once and cleared.
type captureMode int

const (
	captureNone captureMode = iota
	captureKeyEvent
	captureKey
	captureChar
	captureLine
)

// MaskRune is the placeholder character drawn for masked input.
const MaskRune = '*'

// InputEditor manages keyboard capture over the ring buffer. A session is
// entered by one of the Read* calls and left when it completes or is
// cancelled. While no session is active every editing operation is a no-op:
// nothing can be typed when nothing is being read.
//
// On entry the editor records the cursor as the session watermark: deletion
// and caret movement never cross it. Visible line capture edits the ring
// directly, with the buffer cursor acting as the live caret. Masked capture
// accumulates typed characters out of band and renders only a mask
// placeholder.
type InputEditor struct {
	buf *RingBuffer

	mode       captureMode
	visible    bool
	startIndex int
	masked     []rune
	rearm      bool

	onKeyEvent func(KeyEvent)
	onKey      func(Key)
	onChar     func(rune)
	onLine     func(string)

	observers []func(string)

	// echo is the color applied to characters typed during capture.
	echo ColorID
}

// NewInputEditor creates an idle editor over buf.
func NewInputEditor(buf *RingBuffer) *InputEditor {
	return &InputEditor{
		buf:        buf,
		startIndex: -1,
		echo:       ColorDefaultFg,
	}
}

// Capturing returns true while a read session is active.
func (e *InputEditor) Capturing() bool {
	return e.mode != captureNone
}

// Visible returns true when the active session echoes into the ring.
func (e *InputEditor) Visible() bool {
	return e.visible
}

// StartIndex returns the watermark of the active session, or -1.
func (e *InputEditor) StartIndex() int {
	return e.startIndex
}

// SetEchoColor sets the foreground color for characters typed during
// capture. ColorNone restores the default.
func (e *InputEditor) SetEchoColor(id ColorID) {
	if id == ColorNone {
		id = ColorDefaultFg
	}
	e.echo = id
}

// AddLineObserver registers a callback fired with every accepted line, in
// addition to any pending ReadLine callback.
func (e *InputEditor) AddLineObserver(fn func(string)) {
	if fn != nil {
		e.observers = append(e.observers, fn)
	}
}

// ReadKeyEvent starts a single-shot capture completed by the next key
// event. Any session already in progress is cancelled.
func (e *InputEditor) ReadKeyEvent(fn func(KeyEvent)) {
	e.begin(captureKeyEvent, true)
	e.onKeyEvent = fn
}

// ReadKey starts a single-shot capture completed by the next keypress.
func (e *InputEditor) ReadKey(fn func(Key)) {
	e.begin(captureKey, true)
	e.onKey = fn
}

// ReadChar starts a single-shot capture completed by the next printable
// character.
func (e *InputEditor) ReadChar(fn func(rune)) {
	e.begin(captureChar, true)
	e.onChar = fn
}

// ReadLine starts a line capture completed by Enter. When visible is false
// the typed characters never reach the ring: they accumulate out of band
// and only a mask placeholder is drawn.
func (e *InputEditor) ReadLine(visible bool, fn func(string)) {
	e.begin(captureLine, visible)
	e.onLine = fn
}

// SetFreeInput enables or disables free-input mode: a visible line capture
// that re-arms itself after every accepted line, reporting lines to the
// observer list only.
func (e *InputEditor) SetFreeInput(enabled bool) {
	if enabled {
		e.begin(captureLine, true)
		e.rearm = true
		return
	}
	if e.rearm {
		e.Cancel()
	}
}

// Cancel ends the active session immediately without completing it.
func (e *InputEditor) Cancel() {
	e.reset()
}

func (e *InputEditor) begin(mode captureMode, visible bool) {
	e.reset()
	e.mode = mode
	e.visible = visible
	e.startIndex = e.buf.Cursor()
	if visible {
		e.buf.setProtect(e.startIndex)
	}
}

func (e *InputEditor) reset() {
	if e.mode == captureLine && !e.visible {
		e.buf.ClearPlaceholder()
	}
	e.mode = captureNone
	e.visible = false
	e.startIndex = -1
	e.masked = nil
	e.rearm = false
	e.onKeyEvent = nil
	e.onKey = nil
	e.onChar = nil
	e.onLine = nil
	e.buf.setProtect(-1)
}

// HandleKey feeds one key event into the active session. Without a session
// it does nothing.
func (e *InputEditor) HandleKey(ev KeyEvent) {
	switch e.mode {
	case captureNone:
		return

	case captureKeyEvent:
		fn := e.onKeyEvent
		e.reset()
		if fn != nil {
			fn(ev)
		}

	case captureKey:
		fn := e.onKey
		e.reset()
		if fn != nil {
			fn(ev.Key)
		}

	case captureChar:
		if ev.Key != KeyRune || ev.Rune == 0 {
			return
		}
		fn := e.onChar
		r := ev.Rune
		e.reset()
		if fn != nil {
			fn(r)
		}

	case captureLine:
		e.handleLineKey(ev)
	}
}

func (e *InputEditor) handleLineKey(ev KeyEvent) {
	if !e.visible {
		// The caret never moves during masked capture.
		switch {
		case ev.Key == KeyEnter:
			e.acceptLine()
		case ev.Key == KeyBackspace:
			e.Delete()
		case ev.Key == KeyRune && ev.Rune >= ' ':
			e.InsertChar(ev.Rune)
		}
		return
	}

	switch {
	case ev.Key == KeyEnter:
		e.acceptLine()
	case ev.Key == KeyBackspace:
		e.Delete()
	case ev.Key == KeyLeft && ev.Mod&ModCtrl != 0:
		e.MoveWordLeft()
	case ev.Key == KeyRight && ev.Mod&ModCtrl != 0:
		e.MoveWordRight()
	case ev.Key == KeyLeft:
		e.moveLeft()
	case ev.Key == KeyRight:
		e.moveRight()
	case ev.Key == KeyHome:
		e.buf.cursor = e.startIndex
	case ev.Key == KeyEnd:
		e.buf.cursor = e.buf.SeekEndOfBuffer(e.buf.cursor)
	case ev.Key == KeyRune && ev.Rune >= ' ':
		e.InsertChar(ev.Rune)
	}
}

// InsertChar inserts one typed character at the caret.
func (e *InputEditor) InsertChar(r rune) {
	e.InsertText(string(r))
}

// InsertText inserts typed text at the caret, shifting any trailing content.
// Masked sessions append the new characters to the out-of-band buffer and
// refresh the mask placeholder instead.
func (e *InputEditor) InsertText(s string) {
	if e.mode != captureLine || s == "" {
		return
	}
	if !e.visible {
		e.masked = append(e.masked, []rune(s)...)
		e.updateMask()
		return
	}
	e.buf.Insert(s, e.echo, e.buf.Cursor())
}

// Delete removes the character before the caret. It refuses to cross the
// session watermark.
func (e *InputEditor) Delete() {
	if e.mode != captureLine {
		return
	}
	if !e.visible {
		if len(e.masked) > 0 {
			e.masked = e.masked[:len(e.masked)-1]
			e.updateMask()
		}
		return
	}
	if e.buf.Cursor() == e.startIndex {
		return
	}
	e.buf.Delete()
}

func (e *InputEditor) moveLeft() {
	if e.buf.cursor != e.startIndex {
		e.buf.cursor = e.buf.dec(e.buf.cursor)
	}
}

func (e *InputEditor) moveRight() {
	if !e.buf.cells[e.buf.cursor].IsSentinel() {
		e.buf.cursor = e.buf.inc(e.buf.cursor)
	}
}

// MoveWordLeft scans the caret backward while the preceding characters are
// alphanumeric, stopping at the watermark. Falls back to a single step when
// no word character was crossed.
func (e *InputEditor) MoveWordLeft() {
	if e.mode != captureLine || !e.visible {
		return
	}
	b := e.buf
	moved := false
	for b.cursor != e.startIndex && isWordRune(b.cells[b.dec(b.cursor)].Char) {
		b.cursor = b.dec(b.cursor)
		moved = true
	}
	if !moved {
		e.moveLeft()
	}
}

// MoveWordRight scans the caret forward while the characters under it are
// alphanumeric, stopping at the sentinel. Falls back to a single step when
// no word character was crossed.
func (e *InputEditor) MoveWordRight() {
	if e.mode != captureLine || !e.visible {
		return
	}
	b := e.buf
	moved := false
	for !b.cells[b.cursor].IsSentinel() && isWordRune(b.cells[b.cursor].Char) {
		b.cursor = b.inc(b.cursor)
		moved = true
	}
	if !moved {
		e.moveRight()
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// acceptLine completes a line capture: the captured text is the ring
// content between the watermark and the caret (visible) or the out-of-band
// buffer (masked). A trailing newline is written for display continuity,
// the session resets, and the callback and observers fire.
func (e *InputEditor) acceptLine() {
	var text string
	if e.visible {
		text = e.buf.Text(e.startIndex, e.buf.Cursor())
	} else {
		text = string(e.masked)
	}

	fn := e.onLine
	rearm := e.rearm
	e.reset()

	// Append the newline past any content trailing the caret.
	e.buf.cursor = e.buf.SeekEndOfBuffer(e.buf.cursor)
	e.buf.Write("\n", e.echo, ColorDefaultBg)

	if rearm {
		e.begin(captureLine, true)
		e.rearm = true
	}

	if fn != nil {
		fn(text)
	}
	for _, o := range e.observers {
		o(text)
	}
}

// updateMask redraws the mask placeholder to match the masked buffer
// length. The placeholder anchors at the caret, which does not move during
// masked capture.
func (e *InputEditor) updateMask() {
	if len(e.masked) == 0 {
		e.buf.ClearPlaceholder()
		return
	}
	e.buf.SetPlaceholder(strings.Repeat(string(MaskRune), len(e.masked)), e.echo)
}
