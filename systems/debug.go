package systems

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/vantage/camera"
	"github.com/automoto/vantage/components"
	"github.com/automoto/vantage/config"
	"github.com/automoto/vantage/fonts"
	"github.com/automoto/vantage/tags"
)

// DrawDebug renders collision object outlines and a camera state overlay
// when the debug flag is on.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !config.Debug.Enabled {
		return
	}

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return // No camera yet
	}
	cam := components.Camera.Get(cameraEntry).Camera

	// Draw collision object outlines. The boxes are projected into viewport
	// space but kept axis-aligned, so camera rotation is not reflected here.
	if spaceEntry, ok := components.Space.First(e.World); ok {
		space := components.Space.Get(spaceEntry)
		minX, minY, maxX, maxY := cam.VisibleRect()

		for _, obj := range space.Objects() {
			// Cull objects outside viewport
			if obj.X+obj.W < minX || obj.X > maxX || obj.Y+obj.H < minY || obj.Y > maxY {
				continue
			}

			topLeft := cam.Project(mgl64.Vec2{obj.X, obj.Y})

			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{100, 100, 100, 255} // Grey
			} else if obj.HasTags(tags.ResolvTarget) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			}

			vector.StrokeRect(screen,
				float32(topLeft.X()), float32(topLeft.Y()),
				float32(obj.W*cam.Zoom), float32(obj.H*cam.Zoom),
				1, c, false)
		}
	}

	// Camera state overlay
	face := fonts.Debug.Get()
	mouse := cam.MousePosition(camera.Cursor{})
	lines := []string{
		fmt.Sprintf("camera: (%.1f, %.1f) zoom %.2f rot %.2f",
			cam.Position.X(), cam.Position.Y(), cam.Zoom, cam.Rotation),
		fmt.Sprintf("mouse world: (%.1f, %.1f)", mouse.X(), mouse.Y()),
	}
	for i, line := range lines {
		text.Draw(screen, line, face, 8, 16+i*16, color.White)
	}
}
