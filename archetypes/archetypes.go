package archetypes

import (
	"github.com/milkrun/ascent/components"
	cfg "github.com/milkrun/ascent/config"
	"github.com/milkrun/ascent/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Controller,
		components.Physics,
		components.State,
		components.Trigger,
	)
	FloatingPlatform = newArchetype(
		tags.FloatingPlatform,
		components.Platform,
	)
	Checkpoint = newArchetype(
		tags.Checkpoint,
		components.Checkpoint,
		components.Trigger,
	)
	DeadZone = newArchetype(
		tags.DeadZone,
		components.Trigger,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
