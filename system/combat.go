package system

import (
	"github.com/MarkLagodych/CyberspaceEmissary/component"
	"github.com/MarkLagodych/CyberspaceEmissary/engine"
	"github.com/MarkLagodych/CyberspaceEmissary/logger"
	"github.com/MarkLagodych/CyberspaceEmissary/physics"
)

// ResolveStrike hides every visible defeatable entity of the room the weapon overlaps
// Returns the defeated entity IDs in room order
func ResolveStrike(w *engine.World, room *engine.Room, weapon engine.EntityID) []engine.EntityID {
	weaponFig := w.Figure(weapon)
	if !weaponFig.Visible {
		return nil
	}

	var defeated []engine.EntityID
	for _, id := range room.Entities {
		if id == weapon {
			continue
		}
		target := w.Entity(id)
		if !target.Defeatable() || !target.Figure().Visible {
			continue
		}
		if physics.Collides(weaponFig, target.Figure()) {
			target.Figure().Visible = false
			defeated = append(defeated, id)
		}
	}

	if len(defeated) > 0 {
		logger.For("combat").WithField("defeated", defeated).Info("enemies defeated")
	}
	return defeated
}

// Classify inspects which room entities the figure overlaps; hazards win over solids
// Entities listed in skip (the hero itself, its sword) are ignored
func Classify(w *engine.World, room *engine.Room, fig *component.Figure, skip ...engine.EntityID) Hit {
	hit := HitNone
	for _, id := range room.Entities {
		if contains(skip, id) {
			continue
		}
		other := w.Entity(id)
		if other.Damage() == 0 && !other.Solid() {
			continue
		}
		if !physics.Collides(fig, other.Figure()) {
			continue
		}
		if other.Damage() > 0 {
			return HitHazard
		}
		hit = HitSolid
	}
	return hit
}

func contains(ids []engine.EntityID, id engine.EntityID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}
