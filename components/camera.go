package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/vantage/camera"
)

type CameraData struct {
	Camera     *camera.Camera
	LookAheadX float64 // Current smoothed X offset for look-ahead
}

var Camera = donburi.NewComponentType[CameraData]()
