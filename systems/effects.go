package systems

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/vantage/components"
	"github.com/automoto/vantage/config"
)

// tickDelta is the fixed timestep fed to tweens, assuming the default
// Ebitengine tick rate of 60 TPS.
const tickDelta = 1.0 / 60.0

// StartZoomTween eases the camera zoom toward target over the given number
// of seconds, replacing any tween already in flight. The target is clamped
// to the configured zoom range, which keeps the view matrix invertible.
func StartZoomTween(e *ecs.ECS, target, seconds float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	cam := components.Camera.Get(cameraEntry)

	target = math.Max(config.Camera.MinZoom, math.Min(config.Camera.MaxZoom, target))
	tw := gween.New(float32(cam.Camera.Zoom), float32(target), float32(seconds), ease.OutQuad)

	if cameraEntry.HasComponent(components.ZoomTween) {
		components.ZoomTween.Get(cameraEntry).Tween = tw
	} else {
		cameraEntry.AddComponent(components.ZoomTween)
		components.ZoomTween.Set(cameraEntry, &components.ZoomTweenData{Tween: tw})
	}
}

// UpdateZoomTweens advances the active zoom tween, if any. Register it
// before UpdateCamera so the matrix recompute picks up the new zoom in the
// same frame.
func UpdateZoomTweens(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok || !cameraEntry.HasComponent(components.ZoomTween) {
		return
	}
	cam := components.Camera.Get(cameraEntry)
	tween := components.ZoomTween.Get(cameraEntry)

	value, finished := tween.Tween.Update(tickDelta)
	cam.Camera.Zoom = float64(value)
	if finished {
		cameraEntry.RemoveComponent(components.ZoomTween)
	}
}
