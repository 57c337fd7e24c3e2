package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestFromTcell(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		key  rune
		ctrl bool
		ok   bool
	}{
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), KeyLeft, false, true},
		{"right arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), KeyRight, false, true},
		{"up arrow jumps", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), KeyJump, false, true},
		{"down arrow crouches", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), KeyCrouch, false, true},
		{"tab attacks", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), KeyAttack, false, true},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), KeyEnter, false, true},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), KeyBackspace, false, true},
		{"letter", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), 'w', false, true},
		{"ctrl q", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl), KeyQuit, true, true},
		{"ctrl c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), KeyQuit, true, true},
		{"escape ignored", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), 0, false, false},
		{"function key ignored", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ctrl, ok := FromTcell(tt.ev)
			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			assert.Equal(t, tt.key, key)
			assert.Equal(t, tt.ctrl, ctrl)
		})
	}
}

func TestIsSpellChar(t *testing.T) {
	for _, r := range "azAZ " {
		assert.True(t, IsSpellChar(r), string(r))
	}
	for _, r := range "[]/.,1`\n" {
		assert.False(t, IsSpellChar(r), string(r))
	}
}

func TestRepeats(t *testing.T) {
	assert.False(t, Repeats(0))
	assert.False(t, Repeats(1), "a fresh press is not a repeat")
	assert.False(t, Repeats(RepeatDelay-1))
	assert.True(t, Repeats(RepeatDelay))
	assert.False(t, Repeats(RepeatDelay+1))
	assert.True(t, Repeats(RepeatDelay+RepeatInterval))

	fired := 0
	for held := 1; held <= RepeatDelay+10*RepeatInterval; held++ {
		if Repeats(held) {
			fired++
		}
	}
	assert.Equal(t, 11, fired)
}
