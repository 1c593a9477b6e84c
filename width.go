package termcore

import "github.com/unilibs/uniwidth"

// runeWidth returns the display width of a rune: 2 for wide characters,
// 1 for normal, 0 for zero-width.
func runeWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}

// StringWidth returns the total display width of a string.
func StringWidth(s string) int {
	return uniwidth.StringWidth(s)
}
