package input

import (
	"github.com/gdamore/tcell/v2"
)

// specialKeys maps tcell's named keys onto the sentinel alphabet
var specialKeys = map[tcell.Key]rune{
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyUp:         KeyJump,
	tcell.KeyDown:       KeyCrouch,
	tcell.KeyTab:        KeyAttack,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
}

// FromTcell decodes a tcell key event into (key, ctrl)
// ok is false for keys the game has no use for
func FromTcell(ev *tcell.EventKey) (key rune, ctrl bool, ok bool) {
	if k, found := specialKeys[ev.Key()]; found {
		return k, false, true
	}

	switch k := ev.Key(); {
	case k == tcell.KeyRune:
		return ev.Rune(), ev.Modifiers()&tcell.ModCtrl != 0, true
	case k == tcell.KeyCtrlC:
		// Ctrl+C quits like Ctrl+Q; raw mode swallows SIGINT
		return KeyQuit, true, true
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return rune('a' + int(k-tcell.KeyCtrlA)), true, true
	}

	return 0, false, false
}
