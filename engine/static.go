package engine

import (
	"github.com/MarkLagodych/CyberspaceEmissary/component"
	"github.com/MarkLagodych/CyberspaceEmissary/core"
)

// StaticEntity is a single fixed sprite that never animates
type StaticEntity struct {
	Base
	figure component.Figure
	solid  bool
}

// NewStaticEntity creates scenery: rendered, but passed through by the hero
func NewStaticEntity(content string, color core.Color, pos core.Position) *StaticEntity {
	fig := component.NewFigure(pos)
	fig.Sprites = []component.Sprite{component.NewSprite(content, color)}
	return &StaticEntity{figure: fig}
}

// NewObstacle creates a static entity that blocks movement (floors, walls, platforms)
func NewObstacle(content string, color core.Color, pos core.Position) *StaticEntity {
	e := NewStaticEntity(content, color, pos)
	e.solid = true
	return e
}

func (e *StaticEntity) Figure() *component.Figure { return &e.figure }

func (e *StaticEntity) Size() core.Size { return e.figure.Sprites[0].Size }

func (e *StaticEntity) Solid() bool { return e.solid }

// HostileEntity is a static entity whose contact is lethal to the hero
type HostileEntity struct {
	StaticEntity
	damage int
}

// NewHostileEntity creates a hazard; damage must be positive
func NewHostileEntity(content string, color core.Color, pos core.Position, damage int) *HostileEntity {
	if damage <= 0 {
		panic("engine: hostile entity needs positive damage")
	}
	return &HostileEntity{
		StaticEntity: *NewStaticEntity(content, color, pos),
		damage:       damage,
	}
}

func (e *HostileEntity) Damage() int { return e.damage }

// DefeatableEntity is a hazard that an active weapon can remove
type DefeatableEntity struct {
	HostileEntity
}

// NewDefeatableEntity creates a defeatable hazard
func NewDefeatableEntity(content string, color core.Color, pos core.Position, damage int) *DefeatableEntity {
	return &DefeatableEntity{HostileEntity: *NewHostileEntity(content, color, pos, damage)}
}

func (e *DefeatableEntity) Defeatable() bool { return true }
