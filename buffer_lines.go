package termcore

// Line boundary queries. These are pure scans over the ring: they take a
// position, walk forward or backward cell by cell with wraparound, and stop
// at a newline or sentinel. None of them mutate the buffer and all are
// bounded by the capacity. A buffer with zero newlines has exactly one
// logical line.

// SeekEndOfBuffer scans forward from a position until the first sentinel
// and returns its index (one past the last written cell).
func (b *RingBuffer) SeekEndOfBuffer(from int) int {
	i := from
	for steps := 0; steps < len(b.cells); steps++ {
		if b.cells[i].IsSentinel() {
			break
		}
		i = b.inc(i)
	}
	return i
}

// SeekStartOfBuffer scans backward from a position until it finds the
// sentinel boundary that bounds the written content and returns the index
// of the first written cell. On an empty buffer it returns the cursor.
func (b *RingBuffer) SeekStartOfBuffer(from int) int {
	j := from
	for steps := 0; steps < len(b.cells); steps++ {
		prev := b.dec(j)
		if b.cells[prev].IsSentinel() {
			break
		}
		j = prev
	}
	if b.cells[j].IsSentinel() {
		return b.cursor
	}
	return j
}

// SeekCurrentLineStart scans backward from a position until a sentinel or
// newline and returns the position just after that boundary: the first cell
// of the line containing from.
func (b *RingBuffer) SeekCurrentLineStart(from int) int {
	j := from
	for steps := 0; steps < len(b.cells); steps++ {
		prev := b.dec(j)
		c := b.cells[prev].Char
		if c == sentinel || c == '\n' {
			return j
		}
		j = prev
	}
	return j
}

// SeekNextLineStart scans forward from a position for a newline and returns
// the position just after it. When the scan hits the sentinel first it
// returns -1, or the sentinel position itself if returnEndIfNotFound is set.
func (b *RingBuffer) SeekNextLineStart(from int, returnEndIfNotFound bool) int {
	i := from
	for steps := 0; steps < len(b.cells); steps++ {
		c := b.cells[i].Char
		if c == sentinel {
			if returnEndIfNotFound {
				return i
			}
			return -1
		}
		if c == '\n' {
			return b.inc(i)
		}
		i = b.inc(i)
	}
	if returnEndIfNotFound {
		return i
	}
	return -1
}

// SeekLastLineStart scans backward past two newline boundaries (the first
// bounds the line containing from, the second bounds the line before it)
// and returns the previous line's start. Returns -1 when fewer than two
// newlines precede from before the content's sentinel boundary.
func (b *RingBuffer) SeekLastLineStart(from int) int {
	j := from
	newlines := 0
	for steps := 0; steps < len(b.cells); steps++ {
		prev := b.dec(j)
		c := b.cells[prev].Char
		if c == sentinel {
			return -1
		}
		if c == '\n' {
			newlines++
			if newlines == 2 {
				return j
			}
		}
		j = prev
	}
	return -1
}
