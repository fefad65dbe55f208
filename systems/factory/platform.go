package factory

import (
	"github.com/milkrun/ascent/archetypes"
	"github.com/milkrun/ascent/components"
	"github.com/milkrun/ascent/shared/geom"
	"github.com/milkrun/ascent/shared/kinematic"
	"github.com/milkrun/ascent/shared/leveldata"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFloatingPlatform creates a one-way platform that travels up by
// p.Travel pixels and back, one leg per p.Period seconds. The platform
// system moves the surface and carries riders.
func CreateFloatingPlatform(ecs *ecs.ECS, level *components.LevelData, p leveldata.FloatingPlatform) *donburi.Entry {
	platform := archetypes.FloatingPlatform.Spawn(ecs)

	surface := kinematic.NewSurface(geom.NewBox(p.X, p.Y, p.W, p.H), kinematic.TagOneWay)
	surface.Data = platform
	level.Space.Add(surface)

	// The platform moves along a looping sequence of tweens, up and
	// back down.
	tw := gween.NewSequence()
	tw.Add(
		gween.New(float32(p.Y), float32(p.Y-p.Travel), float32(p.Period), ease.Linear),
		gween.New(float32(p.Y-p.Travel), float32(p.Y), float32(p.Period), ease.Linear),
	)

	components.Platform.SetValue(platform, components.PlatformData{
		Surface: surface,
		Tween:   tw,
		LastY:   p.Y,
	})

	return platform
}
