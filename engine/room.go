package engine

import "github.com/MarkLagodych/CyberspaceEmissary/core"

// RoomID indexes a room in the World arena
type RoomID = int

// Room references the entities drawn and collided in it, in draw order
// Entities are owned by the World; a room only holds their IDs
type Room struct {
	Name     string
	Entities []EntityID
	Size     core.Size
}

// Place appends entities to the room's draw order
func (r *Room) Place(ids ...EntityID) {
	r.Entities = append(r.Entities, ids...)
}

// Contains reports whether the entity is referenced by the room
func (r *Room) Contains(id EntityID) bool {
	for _, e := range r.Entities {
		if e == id {
			return true
		}
	}
	return false
}
