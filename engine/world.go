package engine

import (
	"fmt"

	"github.com/MarkLagodych/CyberspaceEmissary/component"
	"github.com/MarkLagodych/CyberspaceEmissary/core"
)

// World owns every entity and room; everything else refers to them by index
// Entities and rooms are appended during construction and never removed
type World struct {
	entities []Entity
	rooms    []Room
}

// NewWorld creates an empty arena
func NewWorld() *World {
	return &World{
		entities: make([]Entity, 0, 32),
		rooms:    make([]Room, 0, 4),
	}
}

// AddEntity stores an entity and returns its stable ID
func (w *World) AddEntity(e Entity) EntityID {
	w.entities = append(w.entities, e)
	return len(w.entities) - 1
}

// AddRoom creates an empty room and returns its ID
func (w *World) AddRoom(name string, size core.Size) RoomID {
	w.rooms = append(w.rooms, Room{Name: name, Size: size})
	return len(w.rooms) - 1
}

// Entity returns the entity with the given ID
func (w *World) Entity(id EntityID) Entity {
	if id < 0 || id >= len(w.entities) {
		panic(fmt.Sprintf("engine: entity %d does not exist (%d entities)", id, len(w.entities)))
	}
	return w.entities[id]
}

// Figure is shorthand for Entity(id).Figure()
func (w *World) Figure(id EntityID) *component.Figure {
	return w.Entity(id).Figure()
}

// Room returns the room with the given ID
func (w *World) Room(id RoomID) *Room {
	if id < 0 || id >= len(w.rooms) {
		panic(fmt.Sprintf("engine: room %d does not exist (%d rooms)", id, len(w.rooms)))
	}
	return &w.rooms[id]
}

// EntityCount returns the number of entities in the arena
func (w *World) EntityCount() int {
	return len(w.entities)
}

// RoomCount returns the number of rooms in the arena
func (w *World) RoomCount() int {
	return len(w.rooms)
}

// Animate advances every entity's animation by one tick, in ID order
func (w *World) Animate() {
	for _, e := range w.entities {
		e.Animate()
	}
}
