package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/MarkLagodych/CyberspaceEmissary/core"
	"github.com/MarkLagodych/CyberspaceEmissary/input"
)

// EventType distinguishes input event categories
type EventType uint8

const (
	EventNone   EventType = iota // Nothing the game handles
	EventKey                     // Key holds a sentinel-alphabet key
	EventResize                  // Size holds the new grid size
	EventClosed                  // Screen finalized, poller should exit
)

// Event is a decoded terminal event
type Event struct {
	Type EventType
	Key  rune
	Ctrl bool
	Size core.Size
}

// decode converts a tcell event into a game event
func decode(ev tcell.Event) Event {
	switch ev := ev.(type) {
	case nil:
		return Event{Type: EventClosed}
	case *tcell.EventKey:
		key, ctrl, ok := input.FromTcell(ev)
		if !ok {
			return Event{Type: EventNone}
		}
		return Event{Type: EventKey, Key: key, Ctrl: ctrl}
	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Type: EventResize, Size: core.Size{Width: w, Height: h}}
	}
	return Event{Type: EventNone}
}
