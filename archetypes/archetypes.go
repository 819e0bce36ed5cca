package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/vantage/components"
	cfg "github.com/automoto/vantage/config"
	"github.com/automoto/vantage/tags"
)

var (
	Camera = newArchetype(
		components.Camera,
	)
	Target = newArchetype(
		tags.Target,
		components.Object,
		components.Velocity,
		components.Sprite,
	)
	Prop = newArchetype(
		components.Object,
		components.Sprite,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
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
