package game

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/MarkLagodych/CyberspaceEmissary/constant"
	"github.com/MarkLagodych/CyberspaceEmissary/core"
	"github.com/MarkLagodych/CyberspaceEmissary/render"
	"github.com/MarkLagodych/CyberspaceEmissary/system"
)

var warningColor = core.Yellow()

// Render advances one tick and redraws the whole grid
func (g *Game) Render() {
	g.tick()

	g.buffer.Clear()

	if !constant.MinViewSize.FitsIn(g.size) {
		render.DrawCentered(g.buffer, g.sizeWarning(), warningColor)
		g.sword.Sheathe(g.swordEntity())
		return
	}

	for _, id := range g.Room().Entities {
		render.DrawFigure(g.buffer, g.world.Figure(id), g.view)
	}

	// The sword hitbox lives for exactly one frame
	g.sword.Sheathe(g.swordEntity())
}

// tick animates, applies gravity or the jump, and resolves a pending strike
func (g *Game) tick() {
	hero := g.heroEntity()
	sword := g.swordEntity()

	g.world.Animate()
	g.sword.Pin(sword, hero)

	if g.hero.Integrate(hero, sword, g.probe()) == system.OutcomeDied {
		g.log.WithField("at", hero.Figure().Position.String()).Info("hero fell onto a hazard")
		g.respawn()
	}

	if defeated := system.ResolveStrike(g.world, g.Room(), g.swordID); len(defeated) > 0 {
		g.log.WithFields(logrus.Fields{
			"count": len(defeated),
			"room":  g.Room().Name,
		}).Debug("strike resolved")
	}

	g.manageConsole()
}

func (g *Game) sizeWarning() string {
	return fmt.Sprintf("Window too small\n%s < %s", g.size, constant.MinViewSize)
}
