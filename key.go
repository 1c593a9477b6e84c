package termcore

// Key identifies the non-character keys the input editor reacts to.
// Printable characters arrive as KeyRune with the rune set.
type Key int

const (
	KeyRune Key = iota
	KeyEnter
	KeyBackspace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyTab
	KeyEscape
	KeyDelete
)

// Modifiers is a bitmask of modifier keys held during a key event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
)

// KeyEvent describes one keystroke delivered by the embedding input layer.
type KeyEvent struct {
	Key  Key
	Rune rune
	Mod  Modifiers
}
