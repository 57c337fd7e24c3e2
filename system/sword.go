package system

import (
	"github.com/MarkLagodych/CyberspaceEmissary/asset"
	"github.com/MarkLagodych/CyberspaceEmissary/component"
	"github.com/MarkLagodych/CyberspaceEmissary/constant"
	"github.com/MarkLagodych/CyberspaceEmissary/core"
	"github.com/MarkLagodych/CyberspaceEmissary/engine"
)

// SwordNormal is the sword's only state: an endless swing cycle
const SwordNormal engine.StateID = 0

var swordSize = core.Size{Width: 3, Height: 3}

// SwordController drives the transient attack hitbox
// The sword is invisible except during the frame after an attack key
type SwordController struct {
	Strikes int
}

// NewSwordController creates a sheathed sword controller
func NewSwordController() *SwordController {
	return &SwordController{}
}

// NewEntity builds the hidden sword entity
func (s *SwordController) NewEntity() *engine.AnimatableEntity {
	ent := engine.NewAnimatableEntity(core.Position{X: 0, Y: constant.FloorY - swordSize.Height})
	ent.Figure().Visible = false

	frames := []string{asset.Sword1, asset.Sword2, asset.Sword3, asset.Sword4, asset.Sword5}
	for _, content := range frames {
		// Every frame shares the 3x3 box regardless of how much of it the art fills
		id := ent.AddSprite(component.Sprite{
			Color:   core.Yellow(),
			Content: content,
			Size:    swordSize,
		})
		ent.AddAnimationPoint(SwordNormal, constant.SwordFrameDuration, id)
	}

	ent.SetState(SwordNormal)

	return ent
}

// Strike reveals the sword for the current frame
func (s *SwordController) Strike(sword engine.Entity) {
	sword.Figure().Visible = true
	s.Strikes++
}

// Pin keeps the sword next to the hero
func (s *SwordController) Pin(sword, hero engine.Entity) {
	sword.Figure().Position = hero.Figure().Position.Add(constant.SwordOffset)
}

// Sheathe hides the sword after a render pass
func (s *SwordController) Sheathe(sword engine.Entity) {
	sword.Figure().Visible = false
}

// Armed reports whether the sword hitbox is live
func (s *SwordController) Armed(sword engine.Entity) bool {
	return sword.Figure().Visible
}
