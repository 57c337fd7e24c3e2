package physics

import (
	"github.com/MarkLagodych/CyberspaceEmissary/component"
	"github.com/MarkLagodych/CyberspaceEmissary/core"
)

// Translate shifts every figure by the same delta, keeping linked figures in sync
func Translate(delta core.Position, figures ...*component.Figure) {
	for _, f := range figures {
		f.Position.AddAssign(delta)
	}
}

// Revert undoes a Translate with the same delta
func Revert(delta core.Position, figures ...*component.Figure) {
	Translate(core.Position{X: -delta.X, Y: -delta.Y}, figures...)
}
