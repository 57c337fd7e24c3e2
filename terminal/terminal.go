package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/MarkLagodych/CyberspaceEmissary/core"
	"github.com/MarkLagodych/CyberspaceEmissary/render"
)

// Terminal provides the screen operations the game loop needs
type Terminal interface {
	// Init enters raw mode and the alternate screen
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() core.Size

	// ColorMode returns the color capability in use
	ColorMode() ColorMode

	// Flush writes the whole buffer and places the caret
	Flush(buf *render.RenderBuffer, cursor core.Position)

	// Sync forces full redraw
	Sync()

	// PollEvent blocks until next input event; EventClosed after Fini
	PollEvent() Event
}

// termImpl implements Terminal on a tcell screen
type termImpl struct {
	screen tcell.Screen
	colors *colorConverter
	mode   ColorMode

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a terminal on the process's tty
func New(mode ColorMode) (Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewWithScreen(screen, mode), nil
}

// NewWithScreen wraps an existing screen, e.g. a tcell simulation screen
func NewWithScreen(screen tcell.Screen, mode ColorMode) Terminal {
	return &termImpl{
		screen: screen,
		colors: newColorConverter(mode),
		mode:   mode,
	}
}

// Init enters raw mode and sets up terminal
func (t *termImpl) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	t.screen.SetStyle(tcell.StyleDefault)
	t.screen.HideCursor()
	t.screen.Clear()

	t.initialized = true
	return nil
}

// Fini restores terminal state
func (t *termImpl) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.screen.Fini()
	t.finalized = true
}

func (t *termImpl) Size() core.Size {
	w, h := t.screen.Size()
	return core.Size{Width: w, Height: h}
}

func (t *termImpl) ColorMode() ColorMode {
	return t.mode
}

// Flush writes render buffer to terminal
func (t *termImpl) Flush(buf *render.RenderBuffer, cursor core.Position) {
	w, h := buf.Width(), buf.Height()
	cells := buf.Cells()
	for y := 0; y < h; y++ {
		row := cells[y*w : (y+1)*w]
		for x, c := range row {
			style := tcell.StyleDefault.Foreground(t.colors.convert(c.Color))
			t.screen.SetContent(x, y, c.Rune, nil, style)
		}
	}

	if buf.InBounds(cursor.X, cursor.Y) {
		t.screen.ShowCursor(cursor.X, cursor.Y)
	} else {
		t.screen.HideCursor()
	}
	t.screen.Show()
}

func (t *termImpl) Sync() {
	t.screen.Sync()
}

func (t *termImpl) PollEvent() Event {
	return decode(t.screen.PollEvent())
}
