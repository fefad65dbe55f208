package systems

import (
	"github.com/milkrun/ascent/components"
	cfg "github.com/milkrun/ascent/config"
	"github.com/milkrun/ascent/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTriggers syncs the player's trigger proxy with the collision
// body and fires any overlapping dead zones and checkpoints. Trigger
// volumes never affect movement; they live in a separate resolv space
// from the raycast surfaces.
func UpdateTriggers(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	if playerEntry.HasComponent(components.Death) {
		return
	}

	body := components.Controller.Get(playerEntry).Bounds()
	proxy := components.Trigger.Get(playerEntry).Object
	proxy.X = body.Min.X()
	proxy.Y = body.Min.Y()
	proxy.W = body.W()
	proxy.H = body.H()
	proxy.Update()

	if proxy.Check(0, 0, tags.ResolvDeadZone) != nil {
		handleDeadZoneHit(ecs, playerEntry)
		return
	}

	checkCheckpoints(ecs, proxy)
}

func checkCheckpoints(ecs *ecs.ECS, proxy *resolv.Object) {
	check := proxy.Check(0, 0, tags.ResolvCheckpoint)
	if check == nil {
		return
	}

	checkpointObjs := check.ObjectsByTags(tags.ResolvCheckpoint)
	if len(checkpointObjs) == 0 {
		return
	}

	checkpointEntry, ok := checkpointObjs[0].Data.(*donburi.Entry)
	if !ok || checkpointEntry == nil {
		return
	}

	checkpoint := components.Checkpoint.Get(checkpointEntry)
	if checkpoint.Activated {
		return
	}
	checkpoint.Activated = true

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	levelData.ActiveCheckpoint = &components.ActiveCheckpointData{
		Name:   checkpoint.Name,
		SpawnX: checkpoint.SpawnX,
		SpawnY: checkpoint.SpawnY,
	}

	SaveGameProgress(levelData.LevelName, levelData.ActiveCheckpoint)
}

// handleDeadZoneHit starts the respawn countdown with a screen shake.
func handleDeadZoneHit(ecs *ecs.ECS, e *donburi.Entry) {
	if e.HasComponent(components.Death) {
		return
	}

	player := components.Player.Get(e)
	player.Lives--

	TriggerScreenShake(ecs, cfg.ScreenShake.DeathIntensity, cfg.ScreenShake.DeathDuration)

	physics := components.Physics.Get(e)
	physics.SpeedX = 0
	physics.SpeedY = 0

	e.AddComponent(components.Death)
	components.Death.Set(e, &components.DeathData{
		Timer: cfg.DeathZone.RespawnDelayFrames,
	})
}
