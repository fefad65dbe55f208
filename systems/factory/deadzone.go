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

// CreateDeadZone creates an invisible trigger that kills the player on
// contact.
func CreateDeadZone(ecs *ecs.ECS, level *components.LevelData, r leveldata.Region) *donburi.Entry {
	deadZone := archetypes.DeadZone.Spawn(ecs)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvDeadZone)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = deadZone
	level.Triggers.Add(obj)

	components.Trigger.SetValue(deadZone, components.TriggerData{Object: obj})

	return deadZone
}
