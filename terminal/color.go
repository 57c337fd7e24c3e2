package terminal

import (
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/MarkLagodych/CyberspaceEmissary/core"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

// ParseColorMode resolves a -color flag value; anything unrecognised auto-detects
func ParseColorMode(s string) ColorMode {
	switch s {
	case "256":
		return ColorMode256
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor
	default:
		return DetectColorMode()
	}
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	term := os.Getenv("TERM")
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// palette256 is the xterm palette FindColor searches in 256-color mode
var palette256 = func() []tcell.Color {
	p := make([]tcell.Color, 256)
	for i := range p {
		p[i] = tcell.PaletteColor(i)
	}
	return p
}()

// colorConverter maps game colors to tcell colors, caching palette lookups
// Not safe for concurrent use; only the render loop touches it
type colorConverter struct {
	mode  ColorMode
	cache map[core.Color]tcell.Color
}

func newColorConverter(mode ColorMode) *colorConverter {
	return &colorConverter{
		mode:  mode,
		cache: make(map[core.Color]tcell.Color),
	}
}

func (c *colorConverter) convert(col core.Color) tcell.Color {
	rgb := tcell.NewRGBColor(int32(col.R), int32(col.G), int32(col.B))
	if c.mode == ColorModeTrueColor {
		return rgb
	}

	if cached, ok := c.cache[col]; ok {
		return cached
	}
	nearest := tcell.FindColor(rgb, palette256)
	c.cache[col] = nearest
	return nearest
}
