package engine

import (
	"fmt"

	"github.com/MarkLagodych/CyberspaceEmissary/component"
	"github.com/MarkLagodych/CyberspaceEmissary/constant"
	"github.com/MarkLagodych/CyberspaceEmissary/core"
)

// AnimationPoint is a set of sprites shown together for Duration ticks
// Duration constant.AnimateForever holds the point until the state changes
type AnimationPoint struct {
	Duration int
	Sprites  []component.SpriteID
}

// AnimatableEntity flip-books between sprites according to its current state
type AnimatableEntity struct {
	Base
	figure component.Figure

	state     StateID // e.g. running/crouching/flying
	point     int     // e.g. running 1/running 2/running 3
	countdown int

	animations map[StateID][]AnimationPoint
}

// NewAnimatableEntity creates an entity without sprites or states
func NewAnimatableEntity(pos core.Position) *AnimatableEntity {
	return &AnimatableEntity{
		figure:     component.NewFigure(pos),
		state:      NoState,
		animations: make(map[StateID][]AnimationPoint),
	}
}

// AddSprite appends a sprite, inactive until an animation point enables it
func (a *AnimatableEntity) AddSprite(s component.Sprite) component.SpriteID {
	s.Active = false
	a.figure.Sprites = append(a.figure.Sprites, s)
	return len(a.figure.Sprites) - 1
}

// AddAnimationPoint appends a point to the state's sequence
func (a *AnimatableEntity) AddAnimationPoint(state StateID, duration int, sprites ...component.SpriteID) {
	if duration < 0 {
		panic(fmt.Sprintf("engine: negative animation duration %d for state %d", duration, state))
	}
	for _, id := range sprites {
		a.checkSprite(id)
	}
	a.animations[state] = append(a.animations[state], AnimationPoint{
		Duration: duration,
		Sprites:  sprites,
	})
}

func (a *AnimatableEntity) Figure() *component.Figure { return &a.figure }

func (a *AnimatableEntity) State() StateID { return a.state }

// Point returns the cursor into the current state's animation points
func (a *AnimatableEntity) Point() int { return a.point }

// SetState switches to another state and restarts its animation from the first point
func (a *AnimatableEntity) SetState(id StateID) {
	if id == a.state {
		return
	}
	if _, ok := a.animations[id]; !ok {
		panic(fmt.Sprintf("engine: no animation registered for state %d", id))
	}

	if a.state != NoState {
		a.setPointActive(false)
	}
	a.state = id
	a.point = 0
	a.setPointActive(true)
	a.countdown = a.points()[0].Duration
}

// Animate advances one tick; a point whose countdown runs out yields to the next (wrapping)
func (a *AnimatableEntity) Animate() {
	if a.state == NoState || len(a.figure.Sprites) == 0 {
		return
	}

	points := a.points()
	if points[a.point].Duration == constant.AnimateForever {
		return
	}

	a.countdown--
	if a.countdown > 0 {
		return
	}

	a.setPointActive(false)
	a.point = (a.point + 1) % len(points)
	a.setPointActive(true)
	a.countdown = points[a.point].Duration
}

// Size returns the size of the first sprite of the current point
func (a *AnimatableEntity) Size() core.Size {
	p := a.points()[a.point]
	if len(p.Sprites) == 0 {
		panic(fmt.Sprintf("engine: animation point %d of state %d has no sprites", a.point, a.state))
	}
	return a.figure.Sprites[p.Sprites[0]].Size
}

func (a *AnimatableEntity) points() []AnimationPoint {
	points := a.animations[a.state]
	if len(points) == 0 {
		panic(fmt.Sprintf("engine: state %d has no animation points", a.state))
	}
	return points
}

func (a *AnimatableEntity) setPointActive(active bool) {
	for _, id := range a.points()[a.point].Sprites {
		a.checkSprite(id)
		a.figure.Sprites[id].Active = active
	}
}

func (a *AnimatableEntity) checkSprite(id component.SpriteID) {
	if id < 0 || id >= len(a.figure.Sprites) {
		panic(fmt.Sprintf("engine: sprite index %d out of range (%d sprites)", id, len(a.figure.Sprites)))
	}
}
