package tags

import "github.com/yohamta/donburi"

var (
	Target = donburi.NewTag().SetName("Target")
)

// Resolv tags for collision objects
const (
	ResolvSolid  = "solid"
	ResolvTarget = "Target"
)
