package constant

import "github.com/MarkLagodych/CyberspaceEmissary/core"

// Hero physics
const (
	// HeroJumpingHeight is the number of rows a jump lifts the hero before gravity takes over
	HeroJumpingHeight = 5

	// HeroMaxHealth is the starting health of the hero
	HeroMaxHealth = 10

	// HeroCrouchFrames is how long the crouch-down transition frame is held
	HeroCrouchFrames = 4
)

// Sword
const (
	// SwordFrameDuration is the number of ticks each sword frame is shown
	SwordFrameDuration = 2
)

// SwordOffset pins the sword relative to the hero position
var SwordOffset = core.Position{X: 3, Y: 0}

// Hazard damage
const (
	SpikeDamage = 10
	VirusDamage = 5
)

// AnimateForever is the animation point duration that never auto-advances
const AnimateForever = 0
