package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarkLagodych/CyberspaceEmissary/core"
	"github.com/MarkLagodych/CyberspaceEmissary/input"
	"github.com/MarkLagodych/CyberspaceEmissary/render"
)

func newSimTerminal(t *testing.T, mode ColorMode) (Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewWithScreen(screen, mode)
	require.NoError(t, term.Init())
	t.Cleanup(term.Fini)
	return term, screen
}

func TestFlushTrueColor(t *testing.T) {
	term, screen := newSimTerminal(t, ColorModeTrueColor)
	assert.Equal(t, core.Size{Width: 80, Height: 25}, term.Size())

	buf := render.NewRenderBuffer(80, 25)
	buf.Set(2, 1, '@', core.Magenta())
	term.Flush(buf, core.Position{X: 5, Y: 24})

	cells, w, _ := screen.GetContents()
	cell := cells[1*w+2]
	require.NotEmpty(t, cell.Runes)
	assert.Equal(t, '@', cell.Runes[0])

	fg, _, _ := cell.Style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(255, 0, 255), fg)

	x, y, visible := screen.GetCursor()
	assert.Equal(t, 5, x)
	assert.Equal(t, 24, y)
	assert.True(t, visible)
}

func TestFlush256UsesPalette(t *testing.T) {
	term, screen := newSimTerminal(t, ColorMode256)

	buf := render.NewRenderBuffer(80, 25)
	buf.Set(0, 0, 'x', core.NewColor(200, 70, 0))
	term.Flush(buf, core.Position{X: -1, Y: 0})

	cells, _, _ := screen.GetContents()
	fg, _, _ := cells[0].Style.Decompose()
	assert.True(t, fg.Valid())
	assert.False(t, fg.IsRGB())

	_, _, visible := screen.GetCursor()
	assert.False(t, visible, "off-grid caret is hidden")
}

func TestPollEventDecodesKeys(t *testing.T) {
	term, screen := newSimTerminal(t, ColorModeTrueColor)

	screen.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)
	screen.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)
	screen.InjectKey(tcell.KeyF5, 0, tcell.ModNone)

	assert.Equal(t, Event{Type: EventKey, Key: input.KeyRight}, term.PollEvent())
	assert.Equal(t, Event{Type: EventKey, Key: 'w'}, term.PollEvent())
	assert.Equal(t, Event{Type: EventKey, Key: input.KeyQuit, Ctrl: true}, term.PollEvent())
	assert.Equal(t, EventNone, term.PollEvent().Type)
}

func TestPollEventResize(t *testing.T) {
	ev := decode(tcell.NewEventResize(100, 30))
	assert.Equal(t, Event{Type: EventResize, Size: core.Size{Width: 100, Height: 30}}, ev)
}

func TestPollEventAfterFini(t *testing.T) {
	term, _ := newSimTerminal(t, ColorModeTrueColor)
	term.Fini()
	term.Fini()
	assert.Equal(t, EventClosed, term.PollEvent().Type)
}

func TestParseColorMode(t *testing.T) {
	assert.Equal(t, ColorMode256, ParseColorMode("256"))
	assert.Equal(t, ColorModeTrueColor, ParseColorMode("truecolor"))
	assert.Equal(t, ColorModeTrueColor, ParseColorMode("24bit"))

	t.Setenv("COLORTERM", "truecolor")
	assert.Equal(t, ColorModeTrueColor, ParseColorMode("auto"))
}

func TestDetectColorModeFallsBackTo256(t *testing.T) {
	for _, env := range []string{"COLORTERM", "KITTY_WINDOW_ID", "KONSOLE_VERSION",
		"ITERM_SESSION_ID", "ALACRITTY_WINDOW_ID", "WEZTERM_PANE"} {
		t.Setenv(env, "")
	}
	t.Setenv("TERM", "xterm-256color")
	assert.Equal(t, ColorMode256, DetectColorMode())
	assert.Equal(t, "256", DetectColorMode().String())
}
