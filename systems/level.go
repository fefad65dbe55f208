package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milkrun/ascent/components"
	cfg "github.com/milkrun/ascent/config"
	"github.com/milkrun/ascent/systems/factory"
	"github.com/milkrun/ascent/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawBackground clears the screen to the world background color.
// Registered first so everything else draws over it.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)
}

// SwitchLevel tears down the current level, its trigger entities and
// the player, then rebuilds everything for the named level. The camera
// entity survives the switch. Unknown names are ignored.
func SwitchLevel(ecs *ecs.ECS, name string) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	if _, known := components.Level.Get(levelEntry).Levels[name]; !known {
		return
	}

	removeTagged(ecs.World, tags.FloatingPlatform)
	removeTagged(ecs.World, tags.Checkpoint)
	removeTagged(ecs.World, tags.DeadZone)
	removeTagged(ecs.World, tags.Player)
	ecs.World.Remove(levelEntry.Entity())

	newEntry := factory.CreateLevelByName(ecs, name)
	level := components.Level.Get(newEntry)

	x, y := 0.0, 0.0
	if len(level.CurrentLevel.SpawnPoints) > 0 {
		spawn := level.CurrentLevel.SpawnPoints[0]
		x, y = spawn.X, spawn.Y
	}
	factory.CreatePlayer(ecs, x, y)
}

// entityQuery is the subset of a donburi tag used for teardown.
type entityQuery interface {
	Each(donburi.World, func(*donburi.Entry))
}

// removeTagged deletes every entity carrying the tag. Entities are
// collected first since removing mid-iteration is not safe.
func removeTagged(w donburi.World, tag entityQuery) {
	var doomed []donburi.Entity
	tag.Each(w, func(e *donburi.Entry) {
		doomed = append(doomed, e.Entity())
	})
	for _, entity := range doomed {
		w.Remove(entity)
	}
}
