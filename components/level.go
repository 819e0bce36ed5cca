package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/vantage/levels"
)

type LevelData struct {
	Bounds levels.Bounds
}

var Level = donburi.NewComponentType[LevelData]()
