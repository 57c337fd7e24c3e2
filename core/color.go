package core

import "fmt"

// Color stores explicit 8-bit color channels, decoupled from any backend
type Color struct {
	R, G, B uint8
}

// NewColor builds a color from channels
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

func Black() Color { return Color{0, 0, 0} }
func White() Color { return Color{255, 255, 255} }
func Red() Color { return Color{255, 0, 0} }
func Green() Color { return Color{0, 255, 0} }
func Blue() Color { return Color{0, 0, 255} }
func Magenta() Color { return Color{255, 0, 255} }
func Yellow() Color { return Color{255, 255, 0} }
func Cyan() Color { return Color{0, 255, 255} }

// Scale multiplies each channel by factor (for dimming)
func (c Color) Scale(factor float64) Color {
	if factor <= 0 {
		return Black()
	}
	if factor >= 1 {
		return c
	}
	return Color{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}

// Hex formats the color as #rrggbb
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
