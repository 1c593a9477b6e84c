package termcore

// DefaultKeepPositionFraction is the fraction of viewport rows the cursor
// may trail the scroll origin before ScrollToCurrentPosition catches up.
const DefaultKeepPositionFraction = 0.75

// WheelDelta is the wheel delta of one notch on a standard mouse wheel.
const WheelDelta = 120

// ScrollToNextLine advances the scroll origin to the start of the next
// line. No movement when no later line exists.
func (b *RingBuffer) ScrollToNextLine() {
	if next := b.SeekNextLineStart(b.displayLine, false); next != -1 {
		b.displayLine = next
	}
}

// ScrollToLastLine moves the scroll origin back to the start of the
// previous line. No movement when no earlier line exists.
func (b *RingBuffer) ScrollToLastLine() {
	if last := b.SeekLastLineStart(b.displayLine); last != -1 {
		b.displayLine = last
	}
}

// NumberOfLinesToCurrentPosition counts the newlines between the scroll
// origin and the cursor, stopping at a sentinel.
func (b *RingBuffer) NumberOfLinesToCurrentPosition() int {
	n := 0
	i := b.displayLine
	for steps := 0; steps < len(b.cells); steps++ {
		if i == b.cursor || b.cells[i].IsSentinel() {
			break
		}
		if b.cells[i].Char == '\n' {
			n++
		}
		i = b.inc(i)
	}
	return n
}

// ScrollToCurrentPosition advances the scroll origin line by line until the
// cursor sits within the bottom keep-position fraction of a viewport of the
// given height. It never scrolls past the cursor.
func (b *RingBuffer) ScrollToCurrentPosition(rows int) {
	limit := int(float64(rows) * b.keepPosition)
	for b.NumberOfLinesToCurrentPosition() > limit {
		next := b.SeekNextLineStart(b.displayLine, false)
		if next == -1 {
			break
		}
		b.displayLine = next
	}
}

// linesToEnd counts the newlines between the scroll origin and the end of
// the written content.
func (b *RingBuffer) linesToEnd() int {
	n := 0
	i := b.displayLine
	for steps := 0; steps < len(b.cells); steps++ {
		if b.cells[i].IsSentinel() {
			break
		}
		if b.cells[i].Char == '\n' {
			n++
		}
		i = b.inc(i)
	}
	return n
}

// ScrollWheel accumulates a mouse wheel delta and scrolls one line per full
// notch: up (positive delta) toward older lines, down toward newer ones.
// Downward scrolling stops once a single line remains below the origin, so
// the viewport never scrolls past the last line.
func (b *RingBuffer) ScrollWheel(delta int) {
	b.wheelAcc += delta

	for b.wheelAcc >= WheelDelta {
		b.wheelAcc -= WheelDelta
		b.ScrollToLastLine()
	}
	for b.wheelAcc <= -WheelDelta {
		b.wheelAcc += WheelDelta
		if b.linesToEnd() <= 1 {
			b.wheelAcc = 0
			break
		}
		b.ScrollToNextLine()
	}
}

// SetKeepPositionFraction overrides the keep-position fraction. Values
// outside (0, 1] fall back to the default.
func (b *RingBuffer) SetKeepPositionFraction(f float64) {
	if f <= 0 || f > 1 {
		f = DefaultKeepPositionFraction
	}
	b.keepPosition = f
}
