package render

import (
	"strings"

	"github.com/MarkLagodych/CyberspaceEmissary/component"
	"github.com/MarkLagodych/CyberspaceEmissary/core"
)

// DrawFigure projects the active sprites of a visible figure into the buffer
// view is the absolute position of the buffer's top-left cell
// Cells left of or above the grid are skipped one by one; the rest of a line past
// the right edge is dropped, so nothing ever wraps. Spaces are transparent
func DrawFigure(buf *RenderBuffer, fig *component.Figure, view core.Position) {
	if !fig.Visible {
		return
	}
	for i := range fig.Sprites {
		s := &fig.Sprites[i]
		if !s.Active {
			continue
		}
		origin := fig.Position.Add(s.Offset).RelativeTo(view)
		drawLines(buf, origin, s.Lines(), s.Color)
	}
}

// DrawText writes multi-line text at a grid position with the figure clipping rules
func DrawText(buf *RenderBuffer, pos core.Position, text string, color core.Color) {
	drawLines(buf, pos, strings.Split(text, "\n"), color)
}

// DrawCentered writes text centred on the grid, used for the too-small warning
func DrawCentered(buf *RenderBuffer, text string, color core.Color) {
	size := component.ContentSize(text)
	pos := core.Position{
		X: (buf.Width() - size.Width) / 2,
		Y: (buf.Height() - size.Height) / 2,
	}
	if pos.X < 0 {
		pos.X = 0
	}
	if pos.Y < 0 {
		pos.Y = 0
	}
	DrawText(buf, pos, text, color)
}

func drawLines(buf *RenderBuffer, origin core.Position, lines []string, color core.Color) {
	for dy, line := range lines {
		y := origin.Y + dy
		if y < 0 {
			continue
		}
		if y >= buf.Height() {
			return
		}

		x := origin.X
		for _, r := range line {
			if x >= buf.Width() {
				break
			}
			if x >= 0 && r != ' ' {
				buf.Set(x, y, r, color)
			}
			x++
		}
	}
}
