package termcore

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// ScreenshotConfig controls how the viewport is rendered to an image.
type ScreenshotConfig struct {
	// Font face to use for rendering. If nil, uses basicfont.Face7x13.
	Font font.Face

	// CellWidth and CellHeight override the cell dimensions.
	// If zero, derived from font metrics.
	CellWidth  int
	CellHeight int

	// Rows and Cols override the rendered grid size. If zero, the
	// terminal's viewport dimensions are used.
	Rows int
	Cols int

	// DefaultFG is the default foreground color. If nil, uses DefaultForeground.
	DefaultFG *color.RGBA

	// DefaultBG is the default background color. If nil, uses DefaultBackground.
	DefaultBG *color.RGBA

	// ShowCursor controls whether to render the cursor. Default true.
	ShowCursor *bool
}

// LoadFont loads a TrueType or OpenType font from a file path.
func LoadFont(path string, size float64) (font.Face, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadFontFromReader(f, size)
}

// LoadFontFromReader loads a TrueType or OpenType font from an io.Reader.
func LoadFontFromReader(r io.Reader, size float64) (font.Face, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return LoadFontFromBytes(data, size)
}

// LoadFontFromBytes loads a TrueType or OpenType font from raw bytes.
func LoadFontFromBytes(data []byte, size float64) (font.Face, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}

	return opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Screenshot renders the viewport to an RGBA image using default settings.
func (t *Terminal) Screenshot() *image.RGBA {
	return t.ScreenshotWithConfig(&ScreenshotConfig{})
}

// ScreenshotWithConfig renders the viewport to an RGBA image with custom
// font, colors, and cursor settings. Lines longer than the grid width are
// clipped; wide runes advance two cells.
func (t *Terminal) ScreenshotWithConfig(cfg *ScreenshotConfig) *image.RGBA {
	face := cfg.Font
	if face == nil {
		face = basicfont.Face7x13
	}

	cellWidth := cfg.CellWidth
	cellHeight := cfg.CellHeight
	if cellWidth == 0 {
		adv, _ := face.GlyphAdvance('M')
		cellWidth = adv.Ceil()
		if cellWidth == 0 {
			cellWidth = 7 // fallback for basicfont
		}
	}
	if cellHeight == 0 {
		cellHeight = face.Metrics().Height.Ceil()
	}

	rows := cfg.Rows
	if rows == 0 {
		rows = t.rows
	}
	cols := cfg.Cols
	if cols == 0 {
		cols = t.cols
	}

	defaultFG := cfg.DefaultFG
	if defaultFG == nil {
		defaultFG = &DefaultForeground
	}
	defaultBG := cfg.DefaultBG
	if defaultBG == nil {
		defaultBG = &DefaultBackground
	}

	showCursor := true
	if cfg.ShowCursor != nil {
		showCursor = *cfg.ShowCursor
	}

	imgWidth := cols * cellWidth
	imgHeight := rows * cellHeight
	img := image.NewRGBA(image.Rect(0, 0, imgWidth, imgHeight))

	for y := 0; y < imgHeight; y++ {
		for x := 0; x < imgWidth; x++ {
			img.Set(x, y, *defaultBG)
		}
	}

	fillCell := func(row, col int, c color.RGBA) {
		x0, y0 := col*cellWidth, row*cellHeight
		for py := 0; py < cellHeight; py++ {
			for px := 0; px < cellWidth; px++ {
				img.Set(x0+px, y0+py, c)
			}
		}
	}

	invertCell := func(row, col int) {
		x0, y0 := col*cellWidth, row*cellHeight
		for py := 0; py < cellHeight; py++ {
			for px := 0; px < cellWidth; px++ {
				cx, cy := x0+px, y0+py
				if cx >= imgWidth || cy >= imgHeight {
					continue
				}
				existing := img.RGBAAt(cx, cy)
				img.Set(cx, cy, color.RGBA{
					R: 255 - existing.R,
					G: 255 - existing.G,
					B: 255 - existing.B,
					A: 255,
				})
			}
		}
	}

	metrics := face.Metrics()

	var cursorRow, cursorCol = -1, -1

	for row, line := range t.ViewLines(rows) {
		if row >= rows {
			break
		}
		col := 0
		for _, cell := range line {
			if col >= cols {
				break
			}

			fg := resolveOrDefault(cell.Fg, *defaultFG)
			bg := resolveOrDefault(cell.Bg, *defaultBG)
			if cell.Selected {
				fg, bg = bg, fg
			}

			fillCell(row, col, bg)
			if cell.Cursor {
				cursorRow, cursorCol = row, col
			}

			if cell.Char != ' ' {
				baseline := row*cellHeight + metrics.Ascent.Ceil()
				d := &font.Drawer{
					Dst:  img,
					Src:  image.NewUniform(fg),
					Face: face,
					Dot:  fixed.P(col*cellWidth, baseline),
				}
				d.DrawString(string(cell.Char))
			}

			w := runeWidth(cell.Char)
			if w < 1 {
				w = 1
			}
			col += w
		}
	}

	if showCursor && cursorRow >= 0 {
		invertCell(cursorRow, cursorCol)
	}

	return img
}

// WritePNG renders the viewport and encodes it as PNG.
func (t *Terminal) WritePNG(w io.Writer, cfg *ScreenshotConfig) error {
	if cfg == nil {
		cfg = &ScreenshotConfig{}
	}
	return png.Encode(w, t.ScreenshotWithConfig(cfg))
}

// resolveOrDefault resolves a ColorID, substituting a fallback for
// ColorNone and unknown IDs.
func resolveOrDefault(id ColorID, fallback color.RGBA) color.RGBA {
	if c, ok := RGBA(id); ok {
		return c
	}
	return fallback
}
