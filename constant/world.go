package constant

import "github.com/MarkLagodych/CyberspaceEmissary/core"

// World Geometry
const (
	// WorldHeight is the height of every room in rows
	WorldHeight = 25

	// WorldMinWidth is the narrowest room width; rooms are multiples of it
	WorldMinWidth = 80

	// WorldRightMargin keeps the hero this many columns away from the room's right edge
	// and triggers view scrolling when the hero gets this close to the view edge
	WorldRightMargin = 10

	// FloorY is the row the floor line occupies
	FloorY = WorldHeight - 1
)

// MinViewSize is the smallest viewport that renders the world instead of the size warning
var MinViewSize = core.Size{Width: WorldMinWidth / 2, Height: WorldHeight}
