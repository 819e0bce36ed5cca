package factory

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/vantage/archetypes"
	"github.com/automoto/vantage/components"
)

// CreateTarget spawns the entity the camera follows.
func CreateTarget(ecs *ecs.ECS, object *resolv.Object, img *ebiten.Image) *donburi.Entry {
	target := archetypes.Target.Spawn(ecs)
	object.Data = target
	components.Object.SetValue(target, components.ObjectData{Object: object})
	components.Sprite.SetValue(target, components.SpriteData{Image: img})
	return target
}

// CreateProp spawns a static decorative entity that renders through the
// camera but is not followed.
func CreateProp(ecs *ecs.ECS, object *resolv.Object, img *ebiten.Image) *donburi.Entry {
	prop := archetypes.Prop.Spawn(ecs)
	object.Data = prop
	components.Object.SetValue(prop, components.ObjectData{Object: object})
	components.Sprite.SetValue(prop, components.SpriteData{Image: img})
	return prop
}
