package archetypes

import (
	"github.com/hexbit/sparkle/components"
	cfg "github.com/hexbit/sparkle/config"
	"github.com/hexbit/sparkle/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Point = newArchetype(
		tags.Point,
		components.Point,
	)
	Overlay = newArchetype(
		components.Overlay,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
