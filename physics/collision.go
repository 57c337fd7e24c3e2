package physics

import (
	"github.com/MarkLagodych/CyberspaceEmissary/component"
	"github.com/MarkLagodych/CyberspaceEmissary/core"
)

// Collides reports whether two figures overlap under the corner-containment test:
// a corner cell of any active rect of one figure lies inside an active rect of the other
// Both directions are checked, so the result is symmetric
//
// Known limitation: overlaps where neither rect has a corner inside the other
// (a thin rect piercing another crosswise) are not detected. Level geometry relies on
// this exact behavior, so it is kept instead of a full separating-axis test
func Collides(a, b *component.Figure) bool {
	ra := a.ActiveRects()
	if len(ra) == 0 {
		return false
	}
	rb := b.ActiveRects()
	if len(rb) == 0 {
		return false
	}
	return cornersInside(ra, rb) || cornersInside(rb, ra)
}

// RectsCollide applies the corner test to a single pair of rects, both directions
func RectsCollide(a, b core.Rect) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	return cornerInside(a, b) || cornerInside(b, a)
}

// cornersInside checks one direction: any corner of any rect in src inside any rect in dst
func cornersInside(src, dst []core.Rect) bool {
	for _, s := range src {
		for _, d := range dst {
			if cornerInside(s, d) {
				return true
			}
		}
	}
	return false
}

func cornerInside(src, dst core.Rect) bool {
	for _, c := range src.Corners() {
		if dst.Contains(c) {
			return true
		}
	}
	return false
}
