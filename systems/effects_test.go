package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/vantage/components"
	"github.com/automoto/vantage/config"
)

func TestZoomTweenReachesTarget(t *testing.T) {
	e, cam := newTestECS(t)
	cameraEntry, ok := components.Camera.First(e.World)
	require.True(t, ok)

	StartZoomTween(e, 2, 0.1)
	require.True(t, cameraEntry.HasComponent(components.ZoomTween))

	for i := 0; i < 12; i++ {
		UpdateZoomTweens(e)
	}

	assert.InDelta(t, 2, cam.Camera.Zoom, 1e-3)
	assert.False(t, cameraEntry.HasComponent(components.ZoomTween),
		"tween component should be removed on completion")
}

func TestZoomTweenReplacedInFlight(t *testing.T) {
	e, cam := newTestECS(t)

	StartZoomTween(e, 4, 1)
	UpdateZoomTweens(e)
	StartZoomTween(e, 1, 0.05)

	for i := 0; i < 10; i++ {
		UpdateZoomTweens(e)
	}

	assert.InDelta(t, 1, cam.Camera.Zoom, 1e-3)
}

func TestZoomTweenTargetClamped(t *testing.T) {
	e, cam := newTestECS(t)

	StartZoomTween(e, 100, 0.01)
	for i := 0; i < 5; i++ {
		UpdateZoomTweens(e)
	}
	assert.InDelta(t, config.Camera.MaxZoom, cam.Camera.Zoom, 1e-3)

	StartZoomTween(e, 0, 0.01)
	for i := 0; i < 5; i++ {
		UpdateZoomTweens(e)
	}
	assert.InDelta(t, config.Camera.MinZoom, cam.Camera.Zoom, 1e-3)
}
