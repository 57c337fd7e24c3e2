package game

import (
	"github.com/MarkLagodych/CyberspaceEmissary/asset"
	"github.com/MarkLagodych/CyberspaceEmissary/constant"
	"github.com/MarkLagodych/CyberspaceEmissary/core"
	"github.com/MarkLagodych/CyberspaceEmissary/engine"
)

// Room names
const (
	RoomStart = "start"
	RoomGrid  = "grid"
)

var (
	tutorialColor = core.NewColor(200, 70, 0)
	floorColor    = core.White()
	wallColor     = core.NewColor(120, 120, 140)
)

// roomSize is shared by every room
var roomSize = core.Size{Width: constant.WorldMinWidth * 2, Height: constant.WorldHeight}

// buildWorld creates every entity once and lays them out into rooms
// Hero, sword and console are shared between rooms and placed last so they draw on top
func (g *Game) buildWorld() {
	w := g.world

	g.heroID = w.AddEntity(g.hero.NewEntity())
	g.swordID = w.AddEntity(g.sword.NewEntity())
	g.consoleID = w.AddEntity(engine.NewStaticEntity("", core.White(), core.Origin()))

	floor := w.AddEntity(engine.NewObstacle(asset.Floor(roomSize.Width), floorColor, core.Position{X: 0, Y: constant.FloorY}))

	g.addRoom(RoomStart,
		w.AddEntity(engine.NewStaticEntity(asset.Debug, core.Cyan(), core.Position{X: roomSize.Width - 1, Y: constant.WorldHeight - 2})),
		w.AddEntity(engine.NewStaticEntity(asset.Tutorial, tutorialColor, core.Position{X: 10, Y: 3})),
		floor,
		w.AddEntity(engine.NewHostileEntity(asset.Spikes, core.Red(), onFloor(62, 1), constant.SpikeDamage)),
		w.AddEntity(engine.NewObstacle(asset.Wall, wallColor, onFloor(90, 4))),
		w.AddEntity(engine.NewDefeatableEntity(asset.Virus, core.Green(), onFloor(112, 2), constant.VirusDamage)),
		w.AddEntity(engine.NewDefeatableEntity(asset.Virus, core.Green(), onFloor(130, 2), constant.VirusDamage)),
	)

	g.addRoom(RoomGrid,
		w.AddEntity(engine.NewStaticEntity(asset.GridBanner, core.Cyan(), core.Position{X: 12, Y: 2})),
		floor,
		w.AddEntity(engine.NewObstacle(asset.Platform, wallColor, core.Position{X: 30, Y: constant.FloorY - 5})),
		w.AddEntity(engine.NewObstacle(asset.Platform, wallColor, core.Position{X: 48, Y: constant.FloorY - 9})),
		w.AddEntity(engine.NewHostileEntity(asset.Spikes, core.Red(), onFloor(40, 1), constant.SpikeDamage)),
		w.AddEntity(engine.NewHostileEntity(asset.Spikes, core.Red(), onFloor(43, 1), constant.SpikeDamage)),
		w.AddEntity(engine.NewDefeatableEntity(asset.Worm, core.Yellow(), onFloor(80, 1), constant.VirusDamage)),
		w.AddEntity(engine.NewDefeatableEntity(asset.Virus, core.Green(), onFloor(104, 2), constant.VirusDamage)),
		w.AddEntity(engine.NewObstacle(asset.Wall, wallColor, onFloor(124, 4))),
	)
}

// addRoom creates a room holding ids followed by the shared hero, sword and console
func (g *Game) addRoom(name string, ids ...engine.EntityID) engine.RoomID {
	id := g.world.AddRoom(name, roomSize)
	room := g.world.Room(id)
	room.Place(ids...)
	room.Place(g.heroID, g.swordID, g.consoleID)
	g.rooms = append(g.rooms, id)
	return id
}

// onFloor positions an entity of the given height standing on the floor
func onFloor(x, height int) core.Position {
	return core.Position{X: x, Y: constant.FloorY - height}
}
