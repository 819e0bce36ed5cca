package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks an active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// ZoomTweenData eases the camera zoom toward a target level
type ZoomTweenData struct {
	Tween *gween.Tween
}

var ZoomTween = donburi.NewComponentType[ZoomTweenData]()
