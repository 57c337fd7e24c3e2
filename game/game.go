// Package game ties the simulation together: it owns the world, processes keys,
// advances one tick per rendered frame and rasterizes the current room
package game

import (
	"github.com/sirupsen/logrus"

	"github.com/MarkLagodych/CyberspaceEmissary/component"
	"github.com/MarkLagodych/CyberspaceEmissary/core"
	"github.com/MarkLagodych/CyberspaceEmissary/engine"
	"github.com/MarkLagodych/CyberspaceEmissary/logger"
	"github.com/MarkLagodych/CyberspaceEmissary/render"
	"github.com/MarkLagodych/CyberspaceEmissary/system"
)

// Game holds all game state; not safe for concurrent use
type Game struct {
	// ===== Immutable After Init =====

	world *engine.World
	rooms []engine.RoomID // Visiting order for the warp spell

	hero    *system.HeroController
	sword   *system.SwordController
	console *system.SpellConsole

	heroID    engine.EntityID
	swordID   engine.EntityID
	consoleID engine.EntityID

	log *logrus.Entry

	// ===== Per-Frame State =====

	room   engine.RoomID
	view   core.Position // Absolute position of the buffer's top-left cell
	size   core.Size
	buffer *render.RenderBuffer

	cursor  core.Position
	stopped bool
}

// New builds the world and enters the first room
func New(size core.Size) *Game {
	g := &Game{
		world:   engine.NewWorld(),
		hero:    system.NewHeroController(),
		sword:   system.NewSwordController(),
		console: system.NewSpellConsole(),
		buffer:  render.NewRenderBuffer(size.Width, size.Height),
		size:    size,
		log:     logger.For("game"),
	}

	g.buildWorld()
	g.room = g.rooms[0]
	g.manageConsole()

	g.log.WithFields(logrus.Fields{
		"rooms":    g.world.RoomCount(),
		"entities": g.world.EntityCount(),
		"size":     size.String(),
	}).Info("world built")

	return g
}

// SetSize resizes the output grid; an unchanged size keeps the buffer
func (g *Game) SetSize(size core.Size) {
	if g.size != size {
		g.buffer.Resize(size.Width, size.Height)
		g.log.WithField("size", size.String()).Debug("viewport resized")
	}
	g.size = size
	g.manageConsole()
}

func (g *Game) Size() core.Size { return g.size }

// Stopped reports whether the player asked to quit
func (g *Game) Stopped() bool { return g.stopped }

// CursorPosition is where shells place the text caret, right after the spell typed so far
func (g *Game) CursorPosition() core.Position { return g.cursor }

// Buffer is the output grid filled by Render
func (g *Game) Buffer() *render.RenderBuffer { return g.buffer }

// View returns the absolute position of the viewport
func (g *Game) View() core.Position { return g.view }

// RoomID returns the current room
func (g *Game) RoomID() engine.RoomID { return g.room }

// Room returns the current room
func (g *Game) Room() *engine.Room { return g.world.Room(g.room) }

// World exposes the entity arena, mostly for shells that want debug info
func (g *Game) World() *engine.World { return g.world }

// Hero returns the hero's physics controller
func (g *Game) Hero() *system.HeroController { return g.hero }

// Spell returns the text typed into the console so far
func (g *Game) Spell() string { return g.console.Spell() }

// EnterRoom switches to another room and puts the hero at its origin
func (g *Game) EnterRoom(id engine.RoomID) {
	room := g.world.Room(id)
	g.room = id
	g.hero.Reset(g.heroEntity(), g.swordEntity())
	g.view = core.Origin()
	g.manageConsole()
	g.log.WithFields(logrus.Fields{
		"room": room.Name,
		"id":   id,
	}).Info("entered room")
}

func (g *Game) heroEntity() engine.Entity { return g.world.Entity(g.heroID) }
func (g *Game) swordEntity() engine.Entity { return g.world.Entity(g.swordID) }
func (g *Game) consoleEntity() engine.Entity { return g.world.Entity(g.consoleID) }

// probe classifies what the hero overlaps in the current room
func (g *Game) probe() system.Probe {
	room := g.Room()
	return system.ProbeFunc(func(fig *component.Figure) system.Hit {
		return system.Classify(g.world, room, fig, g.heroID, g.swordID)
	})
}

// respawn returns the hero to the room origin and resets the view
func (g *Game) respawn() {
	g.hero.Respawn(g.heroEntity(), g.swordEntity())
	g.view = core.Origin()
	g.manageConsole()
}

// manageConsole pins the console to the bottom-left of the view and mirrors the spell
func (g *Game) manageConsole() {
	fig := g.consoleEntity().Figure()
	fig.Sprites[0].Content = g.console.Spell()
	fig.Position = core.Position{X: g.view.X, Y: g.size.Height - 1}

	g.cursor = fig.Position.RelativeTo(g.view).Add(core.Position{X: g.console.Len()})
}
