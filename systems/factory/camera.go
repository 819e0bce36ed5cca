package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/vantage/archetypes"
	"github.com/automoto/vantage/camera"
	"github.com/automoto/vantage/components"
)

func CreateCamera(ecs *ecs.ECS, viewportWidth, viewportHeight float64) *donburi.Entry {
	entry := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(entry, &components.CameraData{
		Camera: camera.New(viewportWidth, viewportHeight),
	})
	return entry
}
