package config

import "github.com/yohamta/donburi/ecs"

// Default is the ECS layer all systems and renderers are registered on.
const Default = ecs.LayerDefault

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing         float64 // How fast camera follows target (0.0-1.0)
	LookAheadDistanceX      float64 // Max horizontal look-ahead offset in pixels
	LookAheadSmoothing      float64 // How fast look-ahead offset changes (0.0-1.0)
	LookAheadMovingScale    float64 // Scale when target is moving (1.0)
	LookAheadSpeedThreshold float64 // Minimum speed to update look-ahead
	MinZoom                 float64 // Lower zoom clamp; zoom at 0 makes the view matrix singular
	MaxZoom                 float64 // Upper zoom clamp
}

// ScreenShakeConfig contains screen shake defaults
type ScreenShakeConfig struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames
}

// CullingConfig contains viewport culling configuration
type CullingConfig struct {
	Padding float64 // Extra world-space margin so sprites don't pop at the viewport edges
}

// DebugConfig contains debug overlay options
type DebugConfig struct {
	Enabled bool // Draw collision outlines and the camera state overlay
}

// Global configuration instances
var C *Config
var Camera CameraConfig
var ScreenShake ScreenShakeConfig
var Culling CullingConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	// Camera Config
	Camera = CameraConfig{
		FollowSmoothing:         0.1,
		LookAheadDistanceX:      60.0, // ~10% of 640px screen width
		LookAheadSmoothing:      0.05, // Slower than follow for smooth feel
		LookAheadMovingScale:    1.0,
		LookAheadSpeedThreshold: 0.1, // Minimum speed to update look-ahead
		MinZoom:                 0.1,
		MaxZoom:                 8.0,
	}

	ScreenShake = ScreenShakeConfig{
		Intensity: 4.0,
		Duration:  20,
	}

	Culling = CullingConfig{
		Padding: 64.0,
	}

	Debug = DebugConfig{
		Enabled: false,
	}
}
