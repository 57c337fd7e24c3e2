package game

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/MarkLagodych/CyberspaceEmissary/engine"
)

// Spell names
const (
	SpellWarp = "warp"
	SpellHome = "home"
)

// cast runs a finished spell; unknown spells fizzle
func (g *Game) cast(spell string) {
	spell = strings.ToLower(strings.TrimSpace(spell))
	if spell == "" {
		return
	}

	entry := g.log.WithFields(logrus.Fields{
		"spell": spell,
		"room":  g.Room().Name,
	})

	switch spell {
	case SpellWarp:
		entry.Info("spell cast")
		g.EnterRoom(g.nextRoom())
	case SpellHome:
		entry.Info("spell cast")
		g.respawn()
	default:
		entry.Warn("spell fizzled")
	}
}

// nextRoom returns the room after the current one, wrapping around
func (g *Game) nextRoom() engine.RoomID {
	for i, id := range g.rooms {
		if id == g.room {
			return g.rooms[(i+1)%len(g.rooms)]
		}
	}
	return g.rooms[0]
}
