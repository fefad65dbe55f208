package systems

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milkrun/ascent/components"
	cfg "github.com/milkrun/ascent/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths counts down the respawn timer and puts the player back
// at the active checkpoint (or the level spawn) when it expires.
func UpdateDeaths(ecs *ecs.ECS) {
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		death.Timer--
		if death.Timer > 0 {
			return
		}

		donburi.Remove[components.DeathData](e, components.Death)
		RespawnPlayer(ecs, e)
	})
}

// RespawnPlayer resets the player at the active checkpoint, falling
// back to the level's first spawn point. Running out of lives restarts
// the level: lives refill and the checkpoint is cleared.
func RespawnPlayer(ecs *ecs.ECS, e *donburi.Entry) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)

	player := components.Player.Get(e)
	if player.Lives <= 0 {
		player.Lives = cfg.Player.StartingLives
		levelData.ActiveCheckpoint = nil
		resetCheckpoints(ecs)
	}

	spawnX, spawnY := levelSpawn(levelData)
	if cp := levelData.ActiveCheckpoint; cp != nil {
		spawnX, spawnY = cp.SpawnX, cp.SpawnY
	}

	resetPlayerAtPosition(e, spawnX, spawnY)
}

func levelSpawn(levelData *components.LevelData) (float64, float64) {
	if levelData.CurrentLevel != nil && len(levelData.CurrentLevel.SpawnPoints) > 0 {
		spawn := levelData.CurrentLevel.SpawnPoints[0]
		return spawn.X, spawn.Y
	}
	return 0, 0
}

func resetCheckpoints(ecs *ecs.ECS) {
	components.Checkpoint.Each(ecs.World, func(e *donburi.Entry) {
		components.Checkpoint.Get(e).Activated = false
	})
}

func resetPlayerAtPosition(e *donburi.Entry, spawnX, spawnY float64) {
	ctrl := components.Controller.Get(e)
	ctrl.SetPosition(mgl64.Vec2{spawnX, spawnY})

	physics := components.Physics.Get(e)
	physics.SpeedX = 0
	physics.SpeedY = 0
	physics.OnGround = false
	physics.WallSliding = 0
	physics.DropThrough = false

	state := components.State.Get(e)
	state.CurrentState = cfg.Idle
	state.StateTimer = 0
}
