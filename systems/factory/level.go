package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/vantage/archetypes"
	"github.com/automoto/vantage/components"
	"github.com/automoto/vantage/levels"
)

func CreateLevel(ecs *ecs.ECS, bounds levels.Bounds) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{Bounds: bounds})
	return level
}
