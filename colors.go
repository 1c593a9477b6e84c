package termcore

import (
	"fmt"
	"image/color"
	"sync"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorID identifies a color in the process-wide color registry.
// IDs 0-255 map directly onto the xterm 256-color palette. ColorDefaultFg
// and ColorDefaultBg select the terminal defaults. IDs above those are
// assigned on demand by ResolveColor for 24-bit colors.
type ColorID int32

const (
	// ColorNone is the distinguished "transparent / no change" value.
	// It never resolves to a real color.
	ColorNone ColorID = -1

	// ColorDefaultFg selects the terminal's default foreground.
	ColorDefaultFg ColorID = 256

	// ColorDefaultBg selects the terminal's default background.
	ColorDefaultBg ColorID = 257

	// firstDynamicID is the first registry slot handed out by ResolveColor.
	firstDynamicID ColorID = 258
)

// Palette is the canonical xterm 256-color table: 16 standard colors,
// a 6x6x6 color cube (16-231), and a 24-step grayscale ramp (232-255).
// External tools assume these exact RGB values.
var Palette = [256]color.RGBA{
	// Standard colors (0-7)
	{0, 0, 0, 255},       // Black
	{205, 0, 0, 255},     // Red
	{0, 205, 0, 255},     // Green
	{205, 205, 0, 255},   // Yellow
	{0, 0, 238, 255},     // Blue
	{205, 0, 205, 255},   // Magenta
	{0, 205, 205, 255},   // Cyan
	{229, 229, 229, 255}, // White

	// Bright colors (8-15)
	{127, 127, 127, 255}, // Bright Black
	{255, 0, 0, 255},     // Bright Red
	{0, 255, 0, 255},     // Bright Green
	{255, 255, 0, 255},   // Bright Yellow
	{92, 92, 255, 255},   // Bright Blue
	{255, 0, 255, 255},   // Bright Magenta
	{0, 255, 255, 255},   // Bright Cyan
	{255, 255, 255, 255}, // Bright White

	// 16-231: 6x6x6 cube, generated in init()
	// 232-255: grayscale ramp, generated in init()
}

func init() {
	// Cube levels are 0, 95, 135, 175, 215, 255 per the xterm table.
	level := func(v int) uint8 {
		if v == 0 {
			return 0
		}
		return uint8(55 + v*40)
	}

	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				Palette[i] = color.RGBA{R: level(r), G: level(g), B: level(b), A: 255}
				i++
			}
		}
	}

	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		Palette[232+j] = color.RGBA{gray, gray, gray, 255}
	}
}

// DefaultForeground is the default text color.
var DefaultForeground = color.RGBA{229, 229, 229, 255}

// DefaultBackground is the default background color.
var DefaultBackground = color.RGBA{0, 0, 0, 255}

// colorRegistry memoizes RGB -> ColorID assignments for the whole process.
// Entries are immutable once created, so the registry only grows. The mutex
// exists for callers running terminal cores on different goroutines; the
// cores themselves never lock.
type colorRegistry struct {
	mu    sync.Mutex
	byRGB map[uint32]ColorID
	extra []color.RGBA
}

var registry = &colorRegistry{byRGB: make(map[uint32]ColorID)}

func packRGB(c color.RGBA) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// ResolveColor returns the ColorID for an RGB value, assigning a new ID the
// first time a value is seen. Exact palette matches reuse the palette index.
func ResolveColor(c color.RGBA) ColorID {
	c.A = 255
	key := packRGB(c)

	registry.mu.Lock()
	defer registry.mu.Unlock()

	if id, ok := registry.byRGB[key]; ok {
		return id
	}

	// Prefer a palette slot for exact matches so snapshots report the
	// indexed form.
	for i, p := range Palette {
		if p == c {
			registry.byRGB[key] = ColorID(i)
			return ColorID(i)
		}
	}

	id := firstDynamicID + ColorID(len(registry.extra))
	registry.extra = append(registry.extra, c)
	registry.byRGB[key] = id
	return id
}

// RGBA resolves a ColorID back to its RGB value.
// Returns false for ColorNone and unknown IDs.
func RGBA(id ColorID) (color.RGBA, bool) {
	switch {
	case id >= 0 && id < 256:
		return Palette[id], true
	case id == ColorDefaultFg:
		return DefaultForeground, true
	case id == ColorDefaultBg:
		return DefaultBackground, true
	case id >= firstDynamicID:
		registry.mu.Lock()
		defer registry.mu.Unlock()
		idx := int(id - firstDynamicID)
		if idx < len(registry.extra) {
			return registry.extra[idx], true
		}
	}
	return color.RGBA{}, false
}

// NearestPaletteIndex returns the index of the palette entry closest to c,
// measured in Lab space. Used to report an indexed approximation for 24-bit
// colors in snapshots.
func NearestPaletteIndex(c color.RGBA) int {
	c.A = 255
	target, _ := colorful.MakeColor(c)

	best := 0
	bestDist := -1.0
	for i, p := range Palette {
		entry, _ := colorful.MakeColor(p)
		d := target.DistanceLab(entry)
		if bestDist < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// colorHex formats a ColorID as #rrggbb, or "" for ColorNone/unknown.
func colorHex(id ColorID) string {
	c, ok := RGBA(id)
	if !ok {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
