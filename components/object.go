package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space holds the resolv collision space shared by all Objects.
var Space = donburi.NewComponentType[resolv.Space]()
