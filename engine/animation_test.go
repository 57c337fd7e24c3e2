package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarkLagodych/CyberspaceEmissary/component"
	"github.com/MarkLagodych/CyberspaceEmissary/constant"
	"github.com/MarkLagodych/CyberspaceEmissary/core"
)

const (
	stateA StateID = iota
	stateB
)

// newThreeFrame builds an entity whose stateA cycles through three single-sprite points
func newThreeFrame(duration int) (*AnimatableEntity, []component.SpriteID) {
	a := NewAnimatableEntity(core.Origin())
	ids := []component.SpriteID{
		a.AddSprite(component.NewSprite("1", core.White())),
		a.AddSprite(component.NewSprite("22", core.White())),
		a.AddSprite(component.NewSprite("333", core.White())),
	}
	for _, id := range ids {
		a.AddAnimationPoint(stateA, duration, id)
	}
	return a, ids
}

func activeSprites(a *AnimatableEntity) []int {
	var active []int
	for i, s := range a.Figure().Sprites {
		if s.Active {
			active = append(active, i)
		}
	}
	return active
}

func TestAddSpriteStartsInactive(t *testing.T) {
	a, _ := newThreeFrame(1)
	assert.Empty(t, activeSprites(a))
	assert.Equal(t, NoState, a.State())
}

func TestAnimateWrapsCursor(t *testing.T) {
	a, ids := newThreeFrame(1)
	a.SetState(stateA)
	require.Equal(t, 0, a.Point())
	assert.Equal(t, []int{ids[0]}, activeSprites(a))

	a.Animate()
	assert.Equal(t, 1, a.Point())
	assert.Equal(t, []int{ids[1]}, activeSprites(a))

	a.Animate()
	assert.Equal(t, 2, a.Point())

	a.Animate()
	assert.Equal(t, 0, a.Point(), "cursor wraps past the last point")
	assert.Equal(t, []int{ids[0]}, activeSprites(a))
}

func TestAnimateForeverHolds(t *testing.T) {
	a, ids := newThreeFrame(constant.AnimateForever)
	a.SetState(stateA)

	for i := 0; i < 3; i++ {
		a.Animate()
	}
	assert.Equal(t, 0, a.Point())
	assert.Equal(t, []int{ids[0]}, activeSprites(a))
}

func TestAnimateHoldsForDuration(t *testing.T) {
	a, _ := newThreeFrame(3)
	a.SetState(stateA)

	a.Animate()
	a.Animate()
	assert.Equal(t, 0, a.Point())
	a.Animate()
	assert.Equal(t, 1, a.Point())
}

func TestOneShotTransitionSettles(t *testing.T) {
	a := NewAnimatableEntity(core.Origin())
	down := a.AddSprite(component.NewSprite("v", core.White()))
	rest := a.AddSprite(component.NewSprite("_", core.White()))
	a.AddAnimationPoint(stateA, 2, down)
	a.AddAnimationPoint(stateA, constant.AnimateForever, rest)

	a.SetState(stateA)
	for i := 0; i < 10; i++ {
		a.Animate()
	}
	assert.Equal(t, 1, a.Point())
	assert.Equal(t, []int{rest}, activeSprites(a))
}

func TestSetStateSameIsNoop(t *testing.T) {
	a, ids := newThreeFrame(1)
	a.SetState(stateA)
	a.Animate()
	require.Equal(t, 1, a.Point())

	a.SetState(stateA)
	assert.Equal(t, 1, a.Point(), "re-entering the current state keeps the cursor")
	assert.Equal(t, []int{ids[1]}, activeSprites(a))
}

func TestSetStateDifferentResets(t *testing.T) {
	a, ids := newThreeFrame(1)
	other := a.AddSprite(component.NewSprite("b", core.White()))
	a.AddAnimationPoint(stateB, constant.AnimateForever, other)

	a.SetState(stateA)
	a.Animate()
	require.Equal(t, 1, a.Point())

	a.SetState(stateB)
	assert.Equal(t, stateB, a.State())
	assert.Equal(t, 0, a.Point())
	assert.Equal(t, []int{other}, activeSprites(a), "previous point sprites are switched off")

	a.SetState(stateA)
	assert.Equal(t, 0, a.Point())
	assert.Equal(t, []int{ids[0]}, activeSprites(a))
}

func TestAnimatableSize(t *testing.T) {
	a, _ := newThreeFrame(1)
	a.SetState(stateA)
	assert.Equal(t, core.Size{Width: 1, Height: 1}, a.Size())
	a.Animate()
	assert.Equal(t, core.Size{Width: 2, Height: 1}, a.Size())
}

func TestAnimationInvariantsPanic(t *testing.T) {
	a, _ := newThreeFrame(1)

	assert.Panics(t, func() { a.SetState(stateB) }, "unregistered state")
	assert.Panics(t, func() { a.AddAnimationPoint(stateB, 1, 42) }, "sprite index out of range")
	assert.Panics(t, func() { a.AddAnimationPoint(stateB, -1, 0) }, "negative duration")
}

func TestAnimateWithoutStateIsNoop(t *testing.T) {
	a, _ := newThreeFrame(1)
	assert.NotPanics(t, a.Animate)
	assert.Empty(t, activeSprites(a))
}
