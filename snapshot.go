package termcore

// Snapshot is a structured capture of the viewport, suitable for JSON
// export, assertions in tests, and diffing terminal states.
type Snapshot struct {
	Capacity    int              `json:"capacity"`
	Cursor      int              `json:"cursor"`
	DisplayLine int              `json:"display_line"`
	Lines       []SnapshotLine   `json:"lines"`
	Placeholder *SnapshotGhost   `json:"placeholder,omitempty"`
	Selection   *SnapshotSelect  `json:"selection,omitempty"`
	Input       *SnapshotCapture `json:"input,omitempty"`
}

// SnapshotLine is one logical line: its plain text plus styled segments.
type SnapshotLine struct {
	Text     string            `json:"text"`
	Segments []SnapshotSegment `json:"segments,omitempty"`
}

// SnapshotSegment is a run of cells sharing the same colors. Fg/Bg are hex
// strings; FgANSI/BgANSI report the nearest xterm-256 palette index so
// tools that only speak indexed color can approximate 24-bit cells.
type SnapshotSegment struct {
	Text   string `json:"text"`
	Fg     string `json:"fg,omitempty"`
	Bg     string `json:"bg,omitempty"`
	FgANSI int    `json:"fg_ansi"`
	BgANSI int    `json:"bg_ansi"`
}

// SnapshotGhost captures a still-valid placeholder.
type SnapshotGhost struct {
	Text   string `json:"text"`
	Color  string `json:"color,omitempty"`
	Anchor int    `json:"anchor"`
}

// SnapshotSelect captures the active selection.
type SnapshotSelect struct {
	Start  int    `json:"start"`
	Length int    `json:"length"`
	Text   string `json:"text"`
}

// SnapshotCapture captures the input editor session state.
type SnapshotCapture struct {
	Visible    bool `json:"visible"`
	StartIndex int  `json:"start_index"`
}

// Snapshot captures up to rows logical lines starting at the scroll origin.
func (t *Terminal) Snapshot(rows int) Snapshot {
	snap := Snapshot{
		Capacity:    t.buf.Capacity(),
		Cursor:      t.buf.Cursor(),
		DisplayLine: t.buf.DisplayLine(),
	}

	for _, line := range t.ViewLines(rows) {
		snap.Lines = append(snap.Lines, snapshotLine(line))
	}

	if ph, ok := t.buf.Placeholder(); ok {
		snap.Placeholder = &SnapshotGhost{
			Text:   ph.Text,
			Color:  colorHex(ph.Color),
			Anchor: ph.Anchor,
		}
	}

	if sel, ok := t.buf.Selection(); ok {
		snap.Selection = &SnapshotSelect{
			Start:  sel.Start,
			Length: sel.Length,
			Text:   t.buf.SelectedText(),
		}
	}

	if t.editor.Capturing() {
		snap.Input = &SnapshotCapture{
			Visible:    t.editor.Visible(),
			StartIndex: t.editor.StartIndex(),
		}
	}

	return snap
}

func snapshotLine(cells []ViewCell) SnapshotLine {
	var line SnapshotLine
	runes := make([]rune, 0, len(cells))

	var seg SnapshotSegment
	segFg, segBg := ColorNone, ColorNone
	var segRunes []rune

	flush := func() {
		if len(segRunes) == 0 {
			return
		}
		seg.Text = string(segRunes)
		line.Segments = append(line.Segments, seg)
		segRunes = segRunes[:0]
	}

	for _, c := range cells {
		runes = append(runes, c.Char)

		if c.Fg != segFg || c.Bg != segBg {
			flush()
			segFg, segBg = c.Fg, c.Bg
			seg = SnapshotSegment{
				Fg:     colorHex(c.Fg),
				Bg:     colorHex(c.Bg),
				FgANSI: nearestANSI(c.Fg),
				BgANSI: nearestANSI(c.Bg),
			}
		}
		segRunes = append(segRunes, c.Char)
	}
	flush()

	line.Text = string(runes)
	return line
}

// nearestANSI maps a ColorID onto the closest xterm-256 index. Palette IDs
// map to themselves; anything else goes through Lab-space distance.
func nearestANSI(id ColorID) int {
	if id >= 0 && id < 256 {
		return int(id)
	}
	c, ok := RGBA(id)
	if !ok {
		return -1
	}
	return NearestPaletteIndex(c)
}
