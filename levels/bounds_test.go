package levels

import (
	"testing"

	"github.com/lafriks/go-tiled"
	"github.com/stretchr/testify/assert"
)

func TestFromTiledMap(t *testing.T) {
	m := &tiled.Map{
		Width:      125,
		Height:     75,
		TileWidth:  16,
		TileHeight: 16,
	}

	b := FromTiledMap(m)
	assert.Equal(t, 2000.0, b.Width)
	assert.Equal(t, 1200.0, b.Height)
}

func TestClampCameraKeepsViewportInsideLevel(t *testing.T) {
	b := Bounds{Width: 2000, Height: 1200}

	// Interior positions pass through untouched.
	x, y := b.ClampCamera(1000, 600, 800, 600)
	assert.Equal(t, 1000.0, x)
	assert.Equal(t, 600.0, y)

	// Positions near the edges clamp so the level fills the viewport.
	x, y = b.ClampCamera(10, 10, 800, 600)
	assert.Equal(t, 400.0, x)
	assert.Equal(t, 300.0, y)

	x, y = b.ClampCamera(1990, 1190, 800, 600)
	assert.Equal(t, 1600.0, x)
	assert.Equal(t, 900.0, y)
}

func TestClampCameraCentersSmallLevels(t *testing.T) {
	b := Bounds{Width: 500, Height: 1200}

	// Level narrower than the viewport: center horizontally, clamp vertically.
	x, y := b.ClampCamera(480, 10, 800, 600)
	assert.Equal(t, 250.0, x)
	assert.Equal(t, 300.0, y)
}
