package systems

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/vantage/components"
	"github.com/automoto/vantage/config"
	"github.com/automoto/vantage/tags"
)

// UpdateCamera follows the tagged target, applies screen shake, constrains
// the view to the level bounds and recalculates the camera matrix so this
// frame's draws see a fresh transform.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	cam := components.Camera.Get(cameraEntry)

	// Process screen shake
	updateScreenShake(cameraEntry, cam)

	// The matrix recompute is the last thing that happens this tick, after
	// every mutation below.
	defer cam.Camera.Update()

	targetEntry, ok := tags.Target.First(e.World)
	if !ok {
		return // no target, keep the current view
	}
	targetObject := components.Object.Get(targetEntry)

	// Only update look-ahead when the target is moving - freeze offset when idle
	if targetEntry.HasComponent(components.Velocity) {
		vel := components.Velocity.Get(targetEntry)
		if math.Abs(vel.SpeedX) > config.Camera.LookAheadSpeedThreshold {
			dir := 1.0
			if vel.SpeedX < 0 {
				dir = -1.0
			}
			targetLookAhead := dir * config.Camera.LookAheadDistanceX * config.Camera.LookAheadMovingScale
			cam.LookAheadX += (targetLookAhead - cam.LookAheadX) * config.Camera.LookAheadSmoothing
		}
	}

	// Target camera position: the center of the followed object, with look-ahead
	targetX := targetObject.X + targetObject.W/2 + cam.LookAheadX
	targetY := targetObject.Y + targetObject.H/2

	// Constrain the target position so the level always fills the viewport
	if levelEntry, ok := components.Level.First(e.World); ok {
		level := components.Level.Get(levelEntry)
		targetX, targetY = level.Bounds.ClampCamera(
			targetX, targetY,
			cam.Camera.ViewportWidth, cam.Camera.ViewportHeight,
		)
	}

	// Ease the camera toward the constrained target position
	pos := cam.Camera.Position
	cam.Camera.Position = mgl64.Vec2{
		pos.X() + (targetX-pos.X())*config.Camera.FollowSmoothing,
		pos.Y() + (targetY-pos.Y())*config.Camera.FollowSmoothing,
	}
}

// updateScreenShake applies the shake offset to the camera position and
// decrements the effect's remaining duration
func updateScreenShake(cameraEntry *donburi.Entry, cam *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	// Calculate decaying intensity
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	// Apply oscillating offset using sine/cosine for smooth shake
	offsetX := math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	offsetY := math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	cam.Camera.Position = cam.Camera.Position.Add(mgl64.Vec2{offsetX, offsetY})

	// Remove component when shake is complete
	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect on the camera
func TriggerScreenShake(e *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}

	// Add or update screen shake component
	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
	} else {
		cameraEntry.AddComponent(components.ScreenShake)
		components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
			Intensity: intensity,
			Duration:  duration,
			Elapsed:   0,
		})
	}
}
