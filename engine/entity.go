package engine

import (
	"github.com/MarkLagodych/CyberspaceEmissary/component"
	"github.com/MarkLagodych/CyberspaceEmissary/core"
)

// EntityID indexes an entity in the World arena
type EntityID = int

// StateID names a logical entity state, e.g. running/crouching/flying
type StateID = int

// NoState is the state of an animatable entity before its first SetState
const NoState StateID = -1

// Entity is the capability set shared by every simulated object
type Entity interface {
	// Figure gives read/write access to the renderable and positional state
	Figure() *component.Figure

	// Animate advances the animation clock by one tick
	Animate()

	State() StateID

	// SetState switches the logical state; switching to the current state is a no-op
	SetState(id StateID)

	// Size is the bounding size of the currently visible representation
	Size() core.Size

	// Damage dealt to anything touching this entity
	Damage() int

	// Defeatable entities are hidden when struck by an active weapon
	Defeatable() bool

	// Solid entities block movement
	Solid() bool
}

// Base supplies the default no-op behavior; embed it and override what differs
type Base struct{}

func (Base) Animate() {}
func (Base) State() StateID { return 0 }
func (Base) SetState(StateID) {}
func (Base) Damage() int { return 0 }
func (Base) Defeatable() bool { return false }
func (Base) Solid() bool { return false }
