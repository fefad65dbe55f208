package components

import (
	"github.com/milkrun/ascent/shared/kinematic"
	"github.com/milkrun/ascent/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.CollisionData
	LevelName    string
	LevelNames   []string
	Levels       map[string]*leveldata.CollisionData

	// Space holds the level's collision surfaces; Triggers holds the
	// overlap-only volumes (dead zones, checkpoints).
	Space    *kinematic.Space
	Triggers *resolv.Space

	ActiveCheckpoint *ActiveCheckpointData // Last activated checkpoint for respawn
}

var Level = donburi.NewComponentType[LevelData]()
