package canvas

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/MarkLagodych/CyberspaceEmissary/input"
)

// keyPress is one logical key for Game.ProcessKey
type keyPress struct {
	key  rune
	ctrl bool
}

// specialKeys maps non-printing keys onto the sentinel alphabet
var specialKeys = map[ebiten.Key]rune{
	ebiten.KeyArrowLeft:   input.KeyLeft,
	ebiten.KeyArrowRight:  input.KeyRight,
	ebiten.KeyArrowUp:     input.KeyJump,
	ebiten.KeyArrowDown:   input.KeyCrouch,
	ebiten.KeyTab:         input.KeyAttack,
	ebiten.KeyEnter:       input.KeyEnter,
	ebiten.KeyNumpadEnter: input.KeyEnter,
	ebiten.KeyBackspace:   input.KeyBackspace,
}

// repeatable keys fire again while held
var repeatable = []ebiten.Key{
	ebiten.KeyArrowLeft,
	ebiten.KeyArrowRight,
	ebiten.KeyBackspace,
}

// keyReader collects one update's worth of keys, reusing its slices
type keyReader struct {
	keys    []ebiten.Key
	chars   []rune
	presses []keyPress
}

func (r *keyReader) read() []keyPress {
	r.keys = inpututil.AppendJustPressedKeys(r.keys[:0])
	for _, k := range repeatable {
		if input.Repeats(inpututil.KeyPressDuration(k)) {
			r.keys = append(r.keys, k)
		}
	}
	r.chars = ebiten.AppendInputChars(r.chars[:0])
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)

	r.presses = r.presses[:0]
	if ctrl {
		// Ctrl chords produce no input chars; only quit is bound
		for _, k := range r.keys {
			if k == ebiten.KeyQ {
				r.presses = append(r.presses, keyPress{key: input.KeyQuit, ctrl: true})
			}
		}
		return r.presses
	}

	for _, k := range r.keys {
		if key, ok := specialKeys[k]; ok {
			r.presses = append(r.presses, keyPress{key: key})
		}
	}
	for _, ch := range r.chars {
		r.presses = append(r.presses, keyPress{key: ch})
	}
	return r.presses
}
