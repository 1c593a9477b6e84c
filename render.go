package termcore

// ViewCell is one renderable cell: its ring position, content, colors, and
// the cursor/selection overlay flags.
type ViewCell struct {
	Pos      int
	Char     rune
	Fg       ColorID
	Bg       ColorID
	Cursor   bool
	Selected bool
}

// View returns a read-only snapshot of the viewport: the cells from the
// scroll origin, visited in ring order, stopping at the sentinel or after
// rows logical lines. When the cursor rests on the end-of-content sentinel
// a synthetic blank cell carries the cursor overlay so renderers always
// have a caret to draw.
func (t *Terminal) View(rows int) []ViewCell {
	b := t.buf

	var cells []ViewCell
	sawCursor := false
	lines := 0

	i := b.displayLine
	for steps := 0; steps < len(b.cells); steps++ {
		c := b.cells[i]
		if c.IsSentinel() {
			break
		}

		cells = append(cells, ViewCell{
			Pos:      i,
			Char:     c.Char,
			Fg:       c.Fg,
			Bg:       c.Bg,
			Cursor:   i == b.cursor,
			Selected: b.IsSelected(i),
		})
		if i == b.cursor {
			sawCursor = true
		}

		if c.Char == '\n' {
			lines++
			if lines >= rows {
				break
			}
		}
		i = b.inc(i)
	}

	if !sawCursor && i == b.cursor && b.cells[i].IsSentinel() {
		cells = append(cells, ViewCell{
			Pos:    b.cursor,
			Char:   ' ',
			Fg:     ColorDefaultFg,
			Bg:     ColorDefaultBg,
			Cursor: true,
		})
	}

	return cells
}

// ViewLines splits the viewport into logical lines of cells, one slice per
// line, without the terminating newline cells.
func (t *Terminal) ViewLines(rows int) [][]ViewCell {
	var lines [][]ViewCell
	var cur []ViewCell

	for _, c := range t.View(rows) {
		if c.Char == '\n' {
			lines = append(lines, cur)
			cur = nil
			continue
		}
		cur = append(cur, c)
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	return lines
}
