package game

import (
	"github.com/MarkLagodych/CyberspaceEmissary/constant"
	"github.com/MarkLagodych/CyberspaceEmissary/core"
	"github.com/MarkLagodych/CyberspaceEmissary/input"
	"github.com/MarkLagodych/CyberspaceEmissary/system"
)

// ProcessKey applies one logical keypress
// Shells translate raw keys into the input package's sentinel alphabet first
func (g *Game) ProcessKey(key rune, ctrl bool) {
	if ctrl {
		if key == input.KeyQuit {
			g.stopped = true
			g.log.Info("quit requested")
		}
		return
	}

	switch key {
	case input.KeyEnter:
		g.cast(g.console.Finish())

	case input.KeyBackspace:
		g.console.Backspace()

	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		// Reserved

	case input.KeyLeft:
		g.moveHero(-1)

	case input.KeyRight:
		g.moveHero(1)

	case input.KeyJump:
		g.hero.Jump(g.heroEntity())

	case input.KeyCrouch:
		g.hero.Crouch(g.heroEntity())

	case input.KeyAttack:
		g.sword.Strike(g.swordEntity())

	default:
		if input.IsSpellChar(key) {
			g.console.AddChar(key)
		}
	}

	g.manageConsole()
}

// moveHero steps the hero one column, keeping it inside the room's walkable band
func (g *Game) moveHero(delta int) {
	hero := g.heroEntity()
	g.hero.Turn(hero, delta)

	pos := hero.Figure().Position
	width := hero.Size().Width
	room := g.Room()
	if pos.X+delta < 0 || pos.X+width+delta >= room.Size.Width-constant.WorldRightMargin {
		return
	}

	switch g.hero.Walk(hero, g.swordEntity(), delta, g.probe()) {
	case system.OutcomeDied:
		g.log.WithField("at", hero.Figure().Position.String()).Info("hero touched a hazard")
		g.respawn()
		return
	case system.OutcomeBlocked:
		return
	}

	g.scroll()
}

// scroll keeps WorldRightMargin columns between the hero and either view edge
func (g *Game) scroll() {
	hero := g.heroEntity()
	rel := hero.Figure().Position.RelativeTo(g.view)
	width := hero.Size().Width

	switch {
	case rel.X+width > g.size.Width-constant.WorldRightMargin:
		g.view.AddAssign(core.Position{X: 1})
	case rel.X < constant.WorldRightMargin && g.view.X > 0:
		g.view.AddAssign(core.Position{X: -1})
	}
}
