package factory

import (
	"github.com/milkrun/ascent/archetypes"
	"github.com/milkrun/ascent/components"
	"github.com/milkrun/ascent/shared/leveldata"
	"github.com/milkrun/ascent/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCheckpoint creates a checkpoint trigger for the given region.
// Touching it records the region center as the respawn position.
func CreateCheckpoint(ecs *ecs.ECS, level *components.LevelData, r leveldata.Region) *donburi.Entry {
	checkpoint := archetypes.Checkpoint.Spawn(ecs)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvCheckpoint)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = checkpoint
	level.Triggers.Add(obj)

	components.Trigger.SetValue(checkpoint, components.TriggerData{Object: obj})
	components.Checkpoint.SetValue(checkpoint, components.CheckpointData{
		Name:      r.Name,
		Activated: false,
		SpawnX:    r.X + r.W/2,
		SpawnY:    r.Y + r.H/2,
	})

	return checkpoint
}
