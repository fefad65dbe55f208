package factory

import (
	"github.com/milkrun/ascent/components"
	"github.com/milkrun/ascent/shared/kinematic"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// Trigger space cell size in pixels. Triggers are sparse, so cells can
// be coarse.
const triggerCellSize = 16

// BuildSpaces populates the level's surface space and trigger space
// from the parsed collision data, spawning the trigger and platform
// entities the level defines.
func BuildSpaces(ecs *ecs.ECS, level *components.LevelData) {
	data := level.CurrentLevel

	level.Space = kinematic.NewSpace()
	level.Triggers = resolv.NewSpace(data.MapWidth, data.MapHeight, triggerCellSize, triggerCellSize)

	for _, tile := range data.Tiles {
		level.Space.Add(CreateTileSurface(tile))
	}
	for _, region := range data.DeadZones {
		CreateDeadZone(ecs, level, region)
	}
	for _, region := range data.Checkpoints {
		CreateCheckpoint(ecs, level, region)
	}
	for _, platform := range data.Platforms {
		CreateFloatingPlatform(ecs, level, platform)
	}
}
