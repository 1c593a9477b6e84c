package termcore

import "image/color"

const escChar rune = 0x1b

// ansiState is the interpreter position in an escape sequence.
type ansiState int

const (
	// stateNormal passes literal characters through to the buffer.
	stateNormal ansiState = iota
	// stateEscape has consumed ESC and expects '['.
	stateEscape
	// stateParams accumulates ';'-separated integers until a terminator.
	stateParams
	// stateDiscard swallows the rest of a malformed sequence.
	stateDiscard
)

// Interpreter consumes a character stream in a single pass, recognizes a
// practical subset of ANSI escape sequences (SGR colors, cursor movement,
// erase), and maps them onto ring buffer operations. Literal characters
// pass through with the current color attributes.
//
// Malformed sequences (a non-numeric parameter byte, a missing '[') are
// swallowed without emitting anything; the interpreter resumes in the
// normal state. Sequences with unrecognized terminators are consumed but
// have no effect.
type Interpreter struct {
	buf  *RingBuffer
	bell BellProvider

	// cols is the viewport width used by absolute cursor positioning.
	cols int

	// Current attributes applied to literal characters.
	fg ColorID
	bg ColorID

	state  ansiState
	params []int
	cur    int
	hasCur bool
}

// NewInterpreter creates an interpreter writing into buf. cols is the
// column count used by the CUP (H/f) position computation.
func NewInterpreter(buf *RingBuffer, cols int, bell BellProvider) *Interpreter {
	if bell == nil {
		bell = NoopBell{}
	}
	return &Interpreter{
		buf:  buf,
		bell: bell,
		cols: cols,
		fg:   ColorDefaultFg,
		bg:   ColorDefaultBg,
	}
}

// Fg returns the current foreground attribute.
func (it *Interpreter) Fg() ColorID { return it.fg }

// Bg returns the current background attribute.
func (it *Interpreter) Bg() ColorID { return it.bg }

// Feed processes text in stream order and returns the number of literal
// (non-escape, non-control) characters written to the buffer, so callers
// can advance any parallel bookkeeping.
func (it *Interpreter) Feed(text string) int {
	written := 0

	for _, r := range text {
		switch it.state {
		case stateNormal:
			switch r {
			case escChar:
				it.state = stateEscape
			case '\b':
				it.buf.Delete()
			case '\r':
				it.buf.cursor = it.buf.SeekCurrentLineStart(it.buf.cursor)
			case '\n':
				it.lineFeed()
			case bellChar:
				it.bell.Ring()
			default:
				it.buf.writeRune(r, it.fg, it.bg)
				written++
			}

		case stateEscape:
			if r == '[' {
				it.state = stateParams
				it.params = it.params[:0]
				it.cur, it.hasCur = 0, false
			} else {
				// Missing '[': swallow and resume.
				it.state = stateNormal
			}

		case stateParams:
			switch {
			case r >= '0' && r <= '9':
				it.cur = it.cur*10 + int(r-'0')
				it.hasCur = true
			case r == ';':
				it.params = append(it.params, it.cur)
				it.cur, it.hasCur = 0, false
			case isTerminator(r):
				if it.hasCur || len(it.params) > 0 {
					it.params = append(it.params, it.cur)
				}
				it.state = stateNormal
				it.dispatch(r)
			default:
				// Non-numeric parameter: swallow the rest of the sequence.
				it.state = stateDiscard
			}

		case stateDiscard:
			if isTerminator(r) {
				it.state = stateNormal
			}
		}
	}

	return written
}

// isTerminator reports whether r ends a CSI sequence. Any letter
// terminates; unrecognized letters are consumed with no effect.
func isTerminator(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// param returns the i-th parameter or def when absent or zero.
func (it *Interpreter) param(i, def int) int {
	if i < len(it.params) && it.params[i] != 0 {
		return it.params[i]
	}
	return def
}

// lineFeed moves the cursor to the next line start. When no later line
// exists and the current line is not already terminated, a literal newline
// cell is written first; on an already-terminated line the line feed is
// idempotent.
func (it *Interpreter) lineFeed() {
	b := it.buf
	if next := b.SeekNextLineStart(b.cursor, false); next != -1 {
		b.cursor = next
		return
	}
	if b.cells[b.dec(b.cursor)].Char == '\n' {
		return
	}
	b.writeRune('\n', it.fg, it.bg)
}

func (it *Interpreter) dispatch(term rune) {
	b := it.buf

	switch term {
	case 'm':
		it.sgr()

	case 'H', 'f':
		row := it.param(0, 1)
		col := it.param(1, 1)
		start := b.SeekStartOfBuffer(b.cursor)
		b.cursor = b.add(start, (row-1)*it.cols+(col-1))

	case 'J':
		it.eraseInDisplay()

	case 'K':
		it.eraseInLine()

	case 'A', 'F': // up n lines / previous line start
		for n := it.param(0, 1); n > 0; n-- {
			p := b.SeekLastLineStart(b.cursor)
			if p == -1 {
				break
			}
			b.cursor = p
		}

	case 'B', 'E': // down n lines / next line start
		for n := it.param(0, 1); n > 0; n-- {
			p := b.SeekNextLineStart(b.cursor, false)
			if p == -1 {
				break
			}
			b.cursor = p
		}

	case 'C': // forward n cells, bounded by the sentinel
		for n := it.param(0, 1); n > 0; n-- {
			if b.cells[b.cursor].IsSentinel() {
				break
			}
			b.cursor = b.inc(b.cursor)
		}

	case 'D': // back n cells, bounded by the line start
		ls := b.SeekCurrentLineStart(b.cursor)
		for n := it.param(0, 1); n > 0 && b.cursor != ls; n-- {
			b.cursor = b.dec(b.cursor)
		}

	case 'G': // column absolute within the current line
		col := it.param(0, 1)
		pos := b.SeekCurrentLineStart(b.cursor)
		for n := col - 1; n > 0; n-- {
			c := b.cells[pos].Char
			if c == sentinel || c == '\n' {
				break
			}
			pos = b.inc(pos)
		}
		b.cursor = pos

	case 'S': // viewport scroll down
		for n := it.param(0, 1); n > 0; n-- {
			b.ScrollToNextLine()
		}

	case 'T': // viewport scroll up
		for n := it.param(0, 1); n > 0; n-- {
			b.ScrollToLastLine()
		}
	}
}

// sgr applies a Select Graphic Rendition sequence. Resolution is keyed on
// the parameter count, first match wins:
//
//	1 param                 8-color table (0 resets to defaults)
//	2 params, second = 1    16-color bright table
//	3 params, middle = 5    256-color palette (38 fg / 48 bg)
//	5 params, second = 2    24-bit RGB (38 fg / 48 bg)
//
// Anything else leaves the attributes unchanged.
func (it *Interpreter) sgr() {
	p := it.params

	switch {
	case len(p) == 0:
		// Bare "ESC[m" is an implicit reset.
		it.fg = ColorDefaultFg
		it.bg = ColorDefaultBg

	case len(p) == 1:
		it.set8Color(p[0])

	case len(p) == 2 && p[1] == 1:
		it.setBrightColor(p[0])

	case len(p) == 3 && p[1] == 5:
		it.set256Color(p[0], p[2])

	case len(p) == 5 && p[1] == 2:
		it.setRGBColor(p[0], p[2], p[3], p[4])
	}
}

func (it *Interpreter) set8Color(code int) {
	switch {
	case code == 0:
		it.fg = ColorDefaultFg
		it.bg = ColorDefaultBg
	case code >= 30 && code <= 37:
		it.fg = ColorID(code - 30)
	case code >= 40 && code <= 47:
		it.bg = ColorID(code - 40)
	case code == 39:
		it.fg = ColorDefaultFg
	case code == 49:
		it.bg = ColorDefaultBg
	}
}

func (it *Interpreter) setBrightColor(code int) {
	switch {
	case code >= 30 && code <= 37:
		it.fg = ColorID(8 + code - 30)
	case code >= 40 && code <= 47:
		it.bg = ColorID(8 + code - 40)
	}
}

func (it *Interpreter) set256Color(target, index int) {
	if index < 0 || index > 255 {
		return
	}
	switch target {
	case 38:
		it.fg = ColorID(index)
	case 48:
		it.bg = ColorID(index)
	}
}

func (it *Interpreter) setRGBColor(target, r, g, b int) {
	clamp := func(v int) uint8 {
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return uint8(v)
	}
	id := ResolveColor(color.RGBA{R: clamp(r), G: clamp(g), B: clamp(b), A: 255})

	switch target {
	case 38:
		it.fg = id
	case 48:
		it.bg = id
	}
}

// eraseInDisplay handles CSI J. Mode 0 (default) erases cursor to end,
// mode 1 erases start to cursor, mode 2 clears the whole buffer, mode 3
// (scrollback clear) is accepted with no effect since there is no
// scrollback.
func (it *Interpreter) eraseInDisplay() {
	b := it.buf

	mode := 0
	if len(it.params) > 0 {
		mode = it.params[0]
	}

	switch mode {
	case 0:
		end := b.SeekEndOfBuffer(b.cursor)
		if end != b.cursor {
			b.EraseRange(b.cursor, b.dec(end))
		}
	case 1:
		start := b.SeekStartOfBuffer(b.cursor)
		b.EraseRange(start, b.cursor)
	case 2:
		b.Clear()
	case 3:
		// No scrollback to clear.
	}
}

// eraseInLine handles CSI K. Mode 0 (default) erases cursor to line end,
// mode 1 erases line start to cursor, mode 2 erases the whole line
// (preserving its newline).
func (it *Interpreter) eraseInLine() {
	b := it.buf

	mode := 0
	if len(it.params) > 0 {
		mode = it.params[0]
	}

	// First newline or sentinel at or after the cursor.
	lineEnd := func(from int) int {
		i := from
		for steps := 0; steps < len(b.cells); steps++ {
			c := b.cells[i].Char
			if c == sentinel || c == '\n' {
				break
			}
			i = b.inc(i)
		}
		return i
	}

	switch mode {
	case 0:
		end := lineEnd(b.cursor)
		if end != b.cursor {
			b.EraseRange(b.cursor, b.dec(end))
		}
	case 1:
		start := b.SeekCurrentLineStart(b.cursor)
		b.EraseRange(start, b.cursor)
	case 2:
		start := b.SeekCurrentLineStart(b.cursor)
		end := lineEnd(start)
		if end != start {
			b.EraseRange(start, b.dec(end))
		}
	}
}
