package systems

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/vantage/components"
	"github.com/automoto/vantage/levels"
	"github.com/automoto/vantage/systems/factory"
)

func newTestECS(t *testing.T) (*ecs.ECS, *components.CameraData) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	entry := factory.CreateCamera(e, 800, 600)
	return e, components.Camera.Get(entry)
}

func spawnTarget(e *ecs.ECS, x, y float64) *donburi.Entry {
	return factory.CreateTarget(e, resolv.NewObject(x, y, 32, 32), nil)
}

func TestCameraFollowsTarget(t *testing.T) {
	e, cam := newTestECS(t)
	spawnTarget(e, 1000, 400)

	for i := 0; i < 400; i++ {
		UpdateCamera(e)
	}

	// Converges on the target's center.
	assert.InDelta(t, 1016, cam.Camera.Position.X(), 1e-3)
	assert.InDelta(t, 416, cam.Camera.Position.Y(), 1e-3)

	// The matrix was recomputed this frame: the viewport center unprojects
	// back to the camera position.
	world := cam.Camera.Unproject(mgl64.Vec2{400, 300})
	assert.InDelta(t, cam.Camera.Position.X(), world.X(), 1e-3)
	assert.InDelta(t, cam.Camera.Position.Y(), world.Y(), 1e-3)
}

func TestCameraClampedToLevelBounds(t *testing.T) {
	e, cam := newTestECS(t)
	spawnTarget(e, 0, 0)
	factory.CreateLevel(e, levels.Bounds{Width: 1000, Height: 700})

	for i := 0; i < 400; i++ {
		UpdateCamera(e)
	}

	// A target in the level corner still leaves the viewport inside the level.
	assert.InDelta(t, 400, cam.Camera.Position.X(), 1e-3)
	assert.InDelta(t, 300, cam.Camera.Position.Y(), 1e-3)
}

func TestCameraWithoutTargetKeepsView(t *testing.T) {
	e, cam := newTestECS(t)
	cam.Camera.Position = mgl64.Vec2{123, 456}

	UpdateCamera(e)

	assert.Equal(t, mgl64.Vec2{123, 456}, cam.Camera.Position)
	// The matrix is still refreshed so manual field edits take effect.
	world := cam.Camera.Unproject(mgl64.Vec2{400, 300})
	assert.InDelta(t, 123, world.X(), 1e-3)
	assert.InDelta(t, 456, world.Y(), 1e-3)
}

func TestScreenShakeRunsOutAndDetaches(t *testing.T) {
	e, cam := newTestECS(t)
	cameraEntry, ok := components.Camera.First(e.World)
	require.True(t, ok)

	TriggerScreenShake(e, 10, 5)
	require.True(t, cameraEntry.HasComponent(components.ScreenShake))

	moved := false
	for i := 0; i < 5; i++ {
		UpdateCamera(e)
		if cam.Camera.Position.Len() > 0.01 {
			moved = true
		}
	}

	assert.True(t, moved, "shake should displace the camera while active")
	assert.False(t, cameraEntry.HasComponent(components.ScreenShake),
		"shake component should be removed once the duration elapses")
}

func TestTriggerScreenShakeWeakerDoesNotOverride(t *testing.T) {
	e, _ := newTestECS(t)
	cameraEntry, ok := components.Camera.First(e.World)
	require.True(t, ok)

	TriggerScreenShake(e, 10, 5)
	TriggerScreenShake(e, 3, 50)

	shake := components.ScreenShake.Get(cameraEntry)
	assert.Equal(t, 10.0, shake.Intensity)
	assert.Equal(t, 5, shake.Duration)
}
