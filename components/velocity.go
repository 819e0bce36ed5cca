package components

import "github.com/yohamta/donburi"

// VelocityData is the per-tick movement of an entity, used by the camera
// look-ahead to tell a moving target from an idle one.
type VelocityData struct {
	SpeedX float64
	SpeedY float64
}

var Velocity = donburi.NewComponentType[VelocityData]()
