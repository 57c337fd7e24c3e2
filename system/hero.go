package system

import (
	"github.com/MarkLagodych/CyberspaceEmissary/asset"
	"github.com/MarkLagodych/CyberspaceEmissary/component"
	"github.com/MarkLagodych/CyberspaceEmissary/constant"
	"github.com/MarkLagodych/CyberspaceEmissary/core"
	"github.com/MarkLagodych/CyberspaceEmissary/engine"
	"github.com/MarkLagodych/CyberspaceEmissary/logger"
	"github.com/MarkLagodych/CyberspaceEmissary/physics"
)

// Hero states
const (
	HeroNormal engine.StateID = iota
	HeroCrouching
	HeroJumpingRight
	HeroJumpingLeft
	HeroFalling
)

var (
	up   = core.Position{X: 0, Y: -1}
	down = core.Position{X: 0, Y: 1}
)

// Hit classifies what a figure overlaps after a move
type Hit uint8

const (
	HitNone Hit = iota
	HitSolid
	HitHazard
)

// Probe reports what a figure overlaps in the current room
type Probe interface {
	Probe(fig *component.Figure) Hit
}

// ProbeFunc adapts a function to Probe
type ProbeFunc func(fig *component.Figure) Hit

func (f ProbeFunc) Probe(fig *component.Figure) Hit { return f(fig) }

// Outcome is the result of one hero movement step
type Outcome uint8

const (
	OutcomeMoved   Outcome = iota // Step applied
	OutcomeBlocked                // Solid hit, step reverted
	OutcomeDied                   // Hazard hit, caller respawns
)

// HeroController holds the hero's physics state beside its entity
type HeroController struct {
	DirectionRight bool
	Health         int
	JumpPotential  int
	Deaths         int
}

// NewHeroController creates a controller facing right at full health
func NewHeroController() *HeroController {
	return &HeroController{
		DirectionRight: true,
		Health:         constant.HeroMaxHealth,
	}
}

// NewEntity builds the hero's animatable entity at the room origin
func (h *HeroController) NewEntity() *engine.AnimatableEntity {
	ent := engine.NewAnimatableEntity(core.Origin())

	sprite := func(content string, offset core.Position) component.Sprite {
		s := component.NewSprite(content, core.Magenta())
		s.Offset = offset
		return s
	}

	staying := ent.AddSprite(sprite(asset.Hero, core.Origin()))
	crouching1 := ent.AddSprite(sprite(asset.HeroCrouching1, core.Origin()))
	crouching2 := ent.AddSprite(sprite(asset.HeroCrouching2, core.Position{X: 0, Y: 1}))
	jumpingLeft := ent.AddSprite(sprite(asset.HeroJumpingLeft, core.Origin()))
	jumpingRight := ent.AddSprite(sprite(asset.HeroJumpingRight, core.Origin()))
	falling := ent.AddSprite(sprite(asset.HeroFall, core.Origin()))

	ent.AddAnimationPoint(HeroNormal, constant.AnimateForever, staying)

	ent.AddAnimationPoint(HeroCrouching, constant.HeroCrouchFrames, crouching1)
	ent.AddAnimationPoint(HeroCrouching, constant.AnimateForever, crouching2)

	ent.AddAnimationPoint(HeroJumpingLeft, constant.AnimateForever, jumpingLeft)
	ent.AddAnimationPoint(HeroJumpingRight, constant.AnimateForever, jumpingRight)

	ent.AddAnimationPoint(HeroFalling, constant.AnimateForever, falling)

	ent.SetState(HeroNormal)

	return ent
}

// Jumping reports whether the state is one of the jump states
func Jumping(state engine.StateID) bool {
	return state == HeroJumpingLeft || state == HeroJumpingRight
}

// Turn records the walking direction; mid-jump it also flips the jump pose
func (h *HeroController) Turn(hero engine.Entity, dx int) {
	h.DirectionRight = dx > 0
	if Jumping(hero.State()) {
		hero.SetState(h.jumpState())
	}
}

// Walk shifts hero and sword horizontally and resolves what they land on
func (h *HeroController) Walk(hero, sword engine.Entity, dx int, probe Probe) Outcome {
	delta := core.Position{X: dx}
	figs := linked(hero, sword)
	physics.Translate(delta, figs...)

	switch probe.Probe(hero.Figure()) {
	case HitHazard:
		return OutcomeDied
	case HitSolid:
		physics.Revert(delta, figs...)
		return OutcomeBlocked
	}
	return OutcomeMoved
}

// Jump stands up from a crouch, otherwise starts a jump when grounded
func (h *HeroController) Jump(hero engine.Entity) {
	state := hero.State()
	if state == HeroCrouching {
		hero.SetState(HeroNormal)
		return
	}

	if h.JumpPotential == 0 && state != HeroFalling && !Jumping(state) {
		h.JumpPotential = constant.HeroJumpingHeight
	}
	hero.SetState(h.jumpState())
}

// Crouch forces the crouching state
func (h *HeroController) Crouch(hero engine.Entity) {
	hero.SetState(HeroCrouching)
}

// Integrate runs one gravity/jump step: up while jump potential remains, otherwise down
func (h *HeroController) Integrate(hero, sword engine.Entity, probe Probe) Outcome {
	figs := linked(hero, sword)

	if h.JumpPotential > 0 {
		physics.Translate(up, figs...)
		h.JumpPotential--

		switch probe.Probe(hero.Figure()) {
		case HitHazard:
			return OutcomeDied
		case HitSolid:
			h.JumpPotential = 0
			physics.Revert(up, figs...)
			hero.SetState(HeroNormal)
			return OutcomeBlocked
		}
		return OutcomeMoved
	}

	physics.Translate(down, figs...)

	switch probe.Probe(hero.Figure()) {
	case HitHazard:
		return OutcomeDied
	case HitSolid:
		physics.Revert(down, figs...)
		if hero.State() != HeroCrouching {
			hero.SetState(HeroNormal)
		}
		return OutcomeBlocked
	}

	hero.SetState(HeroFalling)
	return OutcomeMoved
}

// Respawn returns the hero to the room origin after a death
func (h *HeroController) Respawn(hero, sword engine.Entity) {
	h.Deaths++
	h.Reset(hero, sword)

	logger.For("hero").WithField("deaths", h.Deaths).Info("hero respawned")
}

// Reset places the hero at the room origin standing still and cancels any jump
func (h *HeroController) Reset(hero, sword engine.Entity) {
	h.JumpPotential = 0
	hero.Figure().Position = core.Origin()
	if sword != nil {
		sword.Figure().Position = core.Origin().Add(constant.SwordOffset)
	}
	hero.SetState(HeroNormal)
}

func (h *HeroController) jumpState() engine.StateID {
	if h.DirectionRight {
		return HeroJumpingRight
	}
	return HeroJumpingLeft
}

func linked(hero, sword engine.Entity) []*component.Figure {
	if sword == nil {
		return []*component.Figure{hero.Figure()}
	}
	return []*component.Figure{hero.Figure(), sword.Figure()}
}
