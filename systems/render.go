package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/vantage/components"
	"github.com/automoto/vantage/config"
	"github.com/automoto/vantage/render"
)

var renderer = render.NewRenderer()

// Viewport culling skips the draw calls for entities that are currently
// off-screen. A small padding prevents sprites from popping in/out at the
// edges.

// DrawSprites renders Sprite entities through the camera's transform,
// culling anything whose object box falls outside the visible rect.
func DrawSprites(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return // No camera yet
	}
	cam := components.Camera.Get(cameraEntry).Camera

	// Culling bounds
	padding := config.Culling.Padding
	minX, minY, maxX, maxY := cam.VisibleRect()
	minX -= padding
	minY -= padding
	maxX += padding
	maxY += padding

	renderer.SetTransformMatrix(cam.Matrix())
	defer renderer.ResetTransformMatrix()

	components.Sprite.Each(e.World, func(entry *donburi.Entry) {
		sprite := components.Sprite.Get(entry)
		if sprite.Image == nil || !entry.HasComponent(components.Object) {
			return
		}
		o := components.Object.Get(entry)

		// Viewport culling
		if o.X+o.W < minX || o.X > maxX || o.Y+o.H < minY || o.Y > maxY {
			return
		}

		op := &ebiten.DrawImageOptions{}
		// Flip the sprite if facing left.
		if sprite.FlipX {
			op.GeoM.Scale(-1, 1)
			op.GeoM.Translate(float64(sprite.Image.Bounds().Dx()), 0)
		}
		op.GeoM.Translate(o.X, o.Y)
		renderer.DrawImage(screen, sprite.Image, op)
	})
}
