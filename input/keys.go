// Package input defines the key alphabet the game core understands
// Shells translate raw key events (arrows, Enter, Backspace) into these sentinels
// so the core never sees terminal escape sequences or backend key codes
package input

// Sentinel keys
const (
	KeyLeft   = '['
	KeyRight  = ']'
	KeyJump   = '/'
	KeyCrouch = '.'
	KeyAttack = ','

	KeyEnter     = '\n'
	KeyBackspace = '`'
)

// KeyQuit with ctrl stops the game
const KeyQuit = 'q'

// IsSpellChar reports whether the key is typed into the spell console
func IsSpellChar(key rune) bool {
	return key == ' ' || (key >= 'a' && key <= 'z') || (key >= 'A' && key <= 'Z')
}
