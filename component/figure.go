package component

import "github.com/MarkLagodych/CyberspaceEmissary/core"

// Figure is an entity's positioned collection of sprites
// Visible=false hides every sprite regardless of its Active flag
type Figure struct {
	Sprites  []Sprite
	Position core.Position
	Visible  bool
}

// NewFigure creates a visible figure without sprites
func NewFigure(pos core.Position) Figure {
	return Figure{Position: pos, Visible: true}
}

// SpriteRect returns the absolute footprint of sprite i
func (f *Figure) SpriteRect(i SpriteID) core.Rect {
	s := &f.Sprites[i]
	return core.NewRect(f.Position.Add(s.Offset), s.Size)
}

// ActiveRects returns the footprints eligible for rendering and collision
// An invisible figure has none
func (f *Figure) ActiveRects() []core.Rect {
	if !f.Visible {
		return nil
	}
	rects := make([]core.Rect, 0, len(f.Sprites))
	for i := range f.Sprites {
		if !f.Sprites[i].Active {
			continue
		}
		r := f.SpriteRect(i)
		if r.Empty() {
			continue
		}
		rects = append(rects, r)
	}
	return rects
}
