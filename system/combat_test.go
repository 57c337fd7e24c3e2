package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarkLagodych/CyberspaceEmissary/core"
	"github.com/MarkLagodych/CyberspaceEmissary/engine"
)

func TestResolveStrike(t *testing.T) {
	w := engine.NewWorld()
	sc := NewSwordController()
	sword := sc.NewEntity()
	sword.Figure().Position = core.Position{X: 10, Y: 5}

	swordID := w.AddEntity(sword)
	near := w.AddEntity(engine.NewDefeatableEntity("(@)", core.Green(), core.Position{X: 11, Y: 6}, 5))
	far := w.AddEntity(engine.NewDefeatableEntity("(@)", core.Green(), core.Position{X: 40, Y: 6}, 5))
	spikes := w.AddEntity(engine.NewHostileEntity("^^^", core.Red(), core.Position{X: 10, Y: 7}, 10))

	room := w.Room(w.AddRoom("arena", core.Size{Width: 80, Height: 25}))
	room.Place(near, far, spikes, swordID)

	assert.Empty(t, ResolveStrike(w, room, swordID), "sheathed sword hits nothing")
	assert.True(t, w.Figure(near).Visible)

	sc.Strike(sword)
	assert.True(t, sc.Armed(sword))
	assert.Equal(t, []engine.EntityID{near}, ResolveStrike(w, room, swordID))
	assert.False(t, w.Figure(near).Visible)
	assert.True(t, w.Figure(far).Visible)
	assert.True(t, w.Figure(spikes).Visible, "hazards that are not defeatable survive")

	assert.Empty(t, ResolveStrike(w, room, swordID), "already defeated enemies are skipped")

	sc.Sheathe(sword)
	assert.False(t, sc.Armed(sword))
	assert.Equal(t, 1, sc.Strikes)
}

func TestClassify(t *testing.T) {
	w := engine.NewWorld()
	mover := engine.NewStaticEntity("###", core.White(), core.Position{X: 0, Y: 0})
	moverID := w.AddEntity(mover)
	scenery := w.AddEntity(engine.NewStaticEntity("text", core.White(), core.Position{X: 0, Y: 0}))
	wall := w.AddEntity(engine.NewObstacle("#", core.White(), core.Position{X: 5, Y: 0}))
	spike := w.AddEntity(engine.NewHostileEntity("^", core.Red(), core.Position{X: 9, Y: 0}, 1))

	room := w.Room(w.AddRoom("r", core.Size{Width: 20, Height: 5}))
	room.Place(moverID, scenery, wall, spike)

	assert.Equal(t, HitNone, Classify(w, room, mover.Figure(), moverID), "scenery and self are ignored")

	mover.Figure().Position.X = 3
	assert.Equal(t, HitSolid, Classify(w, room, mover.Figure(), moverID))

	mover.Figure().Position.X = 7
	assert.Equal(t, HitHazard, Classify(w, room, mover.Figure(), moverID))

	w.Figure(spike).Visible = false
	assert.Equal(t, HitNone, Classify(w, room, mover.Figure(), moverID), "hidden hazards are harmless")
}
