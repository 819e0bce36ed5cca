// Package levels describes the pixel extents of a playable world, used to
// keep the camera from showing anything beyond the level edges.
package levels

import (
	"math"

	"github.com/lafriks/go-tiled"
)

// Bounds is the pixel size of the playable world.
type Bounds struct {
	Width  float64
	Height float64
}

// FromTiledMap returns the pixel bounds of a TMX map.
func FromTiledMap(m *tiled.Map) Bounds {
	return Bounds{
		Width:  float64(m.Width * m.TileWidth),
		Height: float64(m.Height * m.TileHeight),
	}
}

// ClampCamera constrains a camera center position so that a viewport of the
// given size always stays filled by the level. When the level is smaller
// than the viewport along an axis, the camera centers on the level instead.
func (b Bounds) ClampCamera(x, y, viewportWidth, viewportHeight float64) (float64, float64) {
	return clampAxis(x, viewportWidth, b.Width), clampAxis(y, viewportHeight, b.Height)
}

func clampAxis(center, viewport, level float64) float64 {
	if level <= viewport {
		return level / 2
	}
	return math.Max(viewport/2, math.Min(level-viewport/2, center))
}
