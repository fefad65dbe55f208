package systems

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milkrun/ascent/archetypes"
	"github.com/milkrun/ascent/components"
	cfg "github.com/milkrun/ascent/config"
	"github.com/milkrun/ascent/shared/leveldata"
	"github.com/milkrun/ascent/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

// buildWorld wires a minimal playable world: level spaces built from
// data, a camera, and the player at (px, py).
func buildWorld(t *testing.T, data *leveldata.CollisionData, px, py float64) (*ecs.ECS, *donburi.Entry) {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())

	levelEntry := archetypes.Level.Spawn(e)
	levelData := &components.LevelData{
		CurrentLevel: data,
		LevelName:    "test",
		LevelNames:   []string{"test"},
		Levels:       map[string]*leveldata.CollisionData{"test": data},
	}
	components.Level.Set(levelEntry, levelData)
	factory.BuildSpaces(e, levelData)
	factory.CreateCamera(e)

	player := factory.CreatePlayer(e, px, py)
	return e, player
}

// flatWorld is a 200px wide floor with its top at y=100 and a spawn
// point above it.
func flatWorld(t *testing.T, px, py float64) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	return buildWorld(t, &leveldata.CollisionData{
		Tiles: []leveldata.TileRect{
			{X: 0, Y: 100, W: 200, H: 16},
		},
		SpawnPoints: []leveldata.SpawnPoint{{X: 20, Y: 60}},
		MapWidth:    640,
		MapHeight:   360,
	}, px, py)
}

// press marks an action held this frame; pass previous=true to model a
// hold instead of a fresh press.
func press(e *ecs.ECS, a cfg.ActionID, previous bool) {
	input := getOrCreateInput(e)
	input.Current[a] = true
	input.Previous[a] = previous
}

func clearInput(e *ecs.ECS) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
}

func stepUntilGrounded(t *testing.T, e *ecs.ECS, player *donburi.Entry) {
	t.Helper()
	physics := components.Physics.Get(player)
	for i := 0; i < 120; i++ {
		UpdatePhysics(e)
		UpdateKinematics(e)
		if physics.OnGround {
			return
		}
	}
	t.Fatalf("player never landed, body at %v", components.Controller.Get(player).Bounds().Min)
}

func TestFallAndLand(t *testing.T) {
	e, player := flatWorld(t, 20, 40)
	physics := components.Physics.Get(player)

	stepUntilGrounded(t, e, player)

	feet := components.Controller.Get(player).Bounds().Max.Y()
	if !approx(feet, 100, 1e-6) {
		t.Errorf("feet at %v, want flush with floor at 100", feet)
	}
	if physics.SpeedY != 0 {
		t.Errorf("vertical speed %v after landing, want 0", physics.SpeedY)
	}
}

func TestRunStateAndFriction(t *testing.T) {
	e, player := flatWorld(t, 20, 40)
	stepUntilGrounded(t, e, player)

	physics := components.Physics.Get(player)
	state := components.State.Get(player)

	press(e, cfg.ActionMoveRight, false)
	UpdatePlayer(e)
	UpdatePhysics(e)
	UpdateKinematics(e)

	if physics.SpeedX <= 0 {
		t.Errorf("speed x = %v while holding right, want > 0", physics.SpeedX)
	}
	if state.CurrentState != cfg.Running {
		t.Errorf("state = %s, want Running", state.CurrentState)
	}

	// Releasing input bleeds speed off through friction.
	clearInput(e)
	for i := 0; i < 30; i++ {
		UpdatePlayer(e)
		UpdatePhysics(e)
		UpdateKinematics(e)
	}
	if physics.SpeedX != 0 {
		t.Errorf("speed x = %v after coasting, want 0", physics.SpeedX)
	}
	if state.CurrentState != cfg.Idle {
		t.Errorf("state = %s after stopping, want Idle", state.CurrentState)
	}
}

func TestJumpFromGround(t *testing.T) {
	e, player := flatWorld(t, 20, 40)
	stepUntilGrounded(t, e, player)

	physics := components.Physics.Get(player)
	state := components.State.Get(player)
	groundedY := components.Controller.Get(player).Bounds().Min.Y()

	press(e, cfg.ActionJump, false)
	UpdatePlayer(e)
	if !approx(physics.SpeedY, -cfg.Player.JumpSpeed, 1e-6) {
		t.Fatalf("jump speed = %v, want %v", physics.SpeedY, -cfg.Player.JumpSpeed)
	}

	UpdatePhysics(e)
	UpdateKinematics(e)
	clearInput(e)
	UpdatePlayer(e)

	if state.CurrentState != cfg.Jump {
		t.Errorf("state = %s while rising, want Jump", state.CurrentState)
	}
	if y := components.Controller.Get(player).Bounds().Min.Y(); y >= groundedY {
		t.Errorf("body y = %v, want above grounded y %v", y, groundedY)
	}
}

func TestCrouchDropThroughOneWay(t *testing.T) {
	e, player := buildWorld(t, &leveldata.CollisionData{
		Tiles: []leveldata.TileRect{
			{X: 0, Y: 100, W: 200, H: 8, OneWay: true},
			{X: 0, Y: 160, W: 200, H: 16},
		},
		SpawnPoints: []leveldata.SpawnPoint{{X: 20, Y: 60}},
		MapWidth:    640,
		MapHeight:   360,
	}, 20, 40)
	stepUntilGrounded(t, e, player)

	feet := components.Controller.Get(player).Bounds().Max.Y()
	if !approx(feet, 100, 1e-6) {
		t.Fatalf("feet at %v, want resting on the one-way platform at 100", feet)
	}

	// Crouch held, jump freshly pressed: drop through the platform.
	press(e, cfg.ActionCrouch, true)
	press(e, cfg.ActionJump, false)
	UpdatePlayer(e)

	physics := components.Physics.Get(player)
	if !physics.DropThrough {
		t.Fatal("crouch+jump on a one-way platform should request drop-through")
	}

	UpdatePhysics(e)
	UpdateKinematics(e)
	clearInput(e)
	stepUntilGrounded(t, e, player)

	feet = components.Controller.Get(player).Bounds().Max.Y()
	if !approx(feet, 160, 1e-6) {
		t.Errorf("feet at %v after dropping, want the lower floor at 160", feet)
	}
}

func TestWallSlideAndWallJump(t *testing.T) {
	e, player := buildWorld(t, &leveldata.CollisionData{
		Tiles: []leveldata.TileRect{
			{X: 0, Y: 200, W: 200, H: 16},
			{X: 100, Y: 0, W: 16, H: 200},
		},
		SpawnPoints: []leveldata.SpawnPoint{{X: 20, Y: 100}},
		MapWidth:    640,
		MapHeight:   360,
	}, 80, 40)

	physics := components.Physics.Get(player)
	state := components.State.Get(player)

	// Fall while pushing into the wall on the right.
	var sliding bool
	for i := 0; i < 60; i++ {
		press(e, cfg.ActionMoveRight, true)
		UpdatePlayer(e)
		UpdatePhysics(e)
		UpdateKinematics(e)
		if physics.WallSliding == 1 {
			sliding = true
			break
		}
	}
	if !sliding {
		t.Fatalf("never engaged wall slide, body at %v", components.Controller.Get(player).Bounds().Min)
	}

	// One more full frame so the slide state and fall cap settle.
	press(e, cfg.ActionMoveRight, true)
	UpdatePlayer(e)
	UpdatePhysics(e)
	UpdateKinematics(e)
	if state.CurrentState != cfg.WallSlide {
		t.Errorf("state = %s against the wall, want WallSlide", state.CurrentState)
	}
	if physics.SpeedY > cfg.Physics.WallSlideSpeed {
		t.Errorf("fall speed %v while wall sliding, want capped at %v", physics.SpeedY, cfg.Physics.WallSlideSpeed)
	}

	// Wall jump kicks away from the wall.
	clearInput(e)
	press(e, cfg.ActionJump, false)
	UpdatePlayer(e)
	if !approx(physics.SpeedX, -physics.MaxSpeed, 1e-6) {
		t.Errorf("wall jump speed x = %v, want %v", physics.SpeedX, -physics.MaxSpeed)
	}
	if !approx(physics.SpeedY, -cfg.Player.JumpSpeed, 1e-6) {
		t.Errorf("wall jump speed y = %v, want %v", physics.SpeedY, -cfg.Player.JumpSpeed)
	}
}

func TestDeadZoneKillsAndRespawns(t *testing.T) {
	data := &leveldata.CollisionData{
		Tiles: []leveldata.TileRect{
			{X: 0, Y: 100, W: 200, H: 16},
		},
		SpawnPoints: []leveldata.SpawnPoint{{X: 20, Y: 60}},
		DeadZones:   []leveldata.Region{{X: 0, Y: 300, W: 640, H: 16, Name: "pit"}},
		MapWidth:    640,
		MapHeight:   360,
	}
	e, player := buildWorld(t, data, 20, 40)

	ctrl := components.Controller.Get(player)
	playerData := components.Player.Get(player)
	startingLives := playerData.Lives

	ctrl.SetPosition(mgl64.Vec2{50, 290})
	UpdateTriggers(e)

	if !player.HasComponent(components.Death) {
		t.Fatal("dead zone contact should start the respawn countdown")
	}
	if playerData.Lives != startingLives-1 {
		t.Errorf("lives = %d, want %d", playerData.Lives, startingLives-1)
	}

	// A second overlap during the countdown must not double-kill.
	UpdateTriggers(e)
	if playerData.Lives != startingLives-1 {
		t.Errorf("lives = %d after repeat overlap, want %d", playerData.Lives, startingLives-1)
	}

	for i := 0; i < cfg.DeathZone.RespawnDelayFrames; i++ {
		UpdateDeaths(e)
	}

	if player.HasComponent(components.Death) {
		t.Fatal("countdown expired but death component still present")
	}
	pos := ctrl.Bounds().Min
	if !approx(pos.X(), 20, 1e-6) || !approx(pos.Y(), 60, 1e-6) {
		t.Errorf("respawned at %v, want the spawn point (20, 60)", pos)
	}
	if state := components.State.Get(player); state.CurrentState != cfg.Idle {
		t.Errorf("state = %s after respawn, want Idle", state.CurrentState)
	}
}

func TestCheckpointRespawn(t *testing.T) {
	data := &leveldata.CollisionData{
		Tiles: []leveldata.TileRect{
			{X: 0, Y: 100, W: 200, H: 16},
		},
		SpawnPoints: []leveldata.SpawnPoint{{X: 20, Y: 60}},
		DeadZones:   []leveldata.Region{{X: 0, Y: 300, W: 640, H: 16, Name: "pit"}},
		Checkpoints: []leveldata.Region{{X: 100, Y: 60, W: 16, H: 40, Name: "mid"}},
		MapWidth:    640,
		MapHeight:   360,
	}
	e, player := buildWorld(t, data, 20, 40)
	ctrl := components.Controller.Get(player)

	ctrl.SetPosition(mgl64.Vec2{100, 60})
	UpdateTriggers(e)

	levelEntry, _ := components.Level.First(e.World)
	levelData := components.Level.Get(levelEntry)
	if levelData.ActiveCheckpoint == nil || levelData.ActiveCheckpoint.Name != "mid" {
		t.Fatalf("active checkpoint = %+v, want mid", levelData.ActiveCheckpoint)
	}

	// Die in the pit; the checkpoint center is the respawn point now.
	ctrl.SetPosition(mgl64.Vec2{50, 290})
	UpdateTriggers(e)
	for i := 0; i < cfg.DeathZone.RespawnDelayFrames; i++ {
		UpdateDeaths(e)
	}

	pos := ctrl.Bounds().Min
	if !approx(pos.X(), 108, 1e-6) || !approx(pos.Y(), 80, 1e-6) {
		t.Errorf("respawned at %v, want the checkpoint center (108, 80)", pos)
	}
}

func TestOutOfLivesClearsCheckpoint(t *testing.T) {
	data := &leveldata.CollisionData{
		Tiles:       []leveldata.TileRect{{X: 0, Y: 100, W: 200, H: 16}},
		SpawnPoints: []leveldata.SpawnPoint{{X: 20, Y: 60}},
		Checkpoints: []leveldata.Region{{X: 100, Y: 60, W: 16, H: 40, Name: "mid"}},
		MapWidth:    640,
		MapHeight:   360,
	}
	e, player := buildWorld(t, data, 20, 40)

	ctrl := components.Controller.Get(player)
	ctrl.SetPosition(mgl64.Vec2{100, 60})
	UpdateTriggers(e)

	playerData := components.Player.Get(player)
	playerData.Lives = 0
	RespawnPlayer(e, player)

	if playerData.Lives != cfg.Player.StartingLives {
		t.Errorf("lives = %d after losing the last one, want refilled to %d", playerData.Lives, cfg.Player.StartingLives)
	}

	levelEntry, _ := components.Level.First(e.World)
	if components.Level.Get(levelEntry).ActiveCheckpoint != nil {
		t.Error("running out of lives should clear the active checkpoint")
	}
	pos := ctrl.Bounds().Min
	if !approx(pos.X(), 20, 1e-6) || !approx(pos.Y(), 60, 1e-6) {
		t.Errorf("respawned at %v, want the level spawn (20, 60)", pos)
	}

	var reactivated bool
	components.Checkpoint.Each(e.World, func(entry *donburi.Entry) {
		if components.Checkpoint.Get(entry).Activated {
			reactivated = true
		}
	})
	if reactivated {
		t.Error("checkpoints should deactivate when the run restarts")
	}
}

func TestFloatingPlatformCarriesRider(t *testing.T) {
	data := &leveldata.CollisionData{
		SpawnPoints: []leveldata.SpawnPoint{{X: 8, Y: 60}},
		Platforms:   []leveldata.FloatingPlatform{{X: 0, Y: 100, W: 48, H: 8, Travel: 48, Period: 1}},
		MapWidth:    640,
		MapHeight:   360,
	}
	e, player := buildWorld(t, data, 8, 60)

	// Stand on the platform top.
	ctrl := components.Controller.Get(player)
	physics := components.Physics.Get(player)
	physics.OnGround = true

	platformEntry, ok := components.Platform.First(e.World)
	if !ok {
		t.Fatal("no floating platform spawned")
	}
	platform := components.Platform.Get(platformEntry)

	UpdatePlatforms(e)

	surfTop := platform.Surface.Shape.Bounds().Min.Y()
	if surfTop >= 100 {
		t.Fatalf("platform top = %v after one frame, want above its anchor 100", surfTop)
	}
	feet := ctrl.Bounds().Max.Y()
	if !approx(feet, surfTop, 0.01) {
		t.Errorf("rider feet at %v, platform top at %v; rider should be carried", feet, surfTop)
	}
}

func TestPauseRestartRefillsLivesAtSpawn(t *testing.T) {
	e, player := flatWorld(t, 20, 40)
	stepUntilGrounded(t, e, player)

	playerData := components.Player.Get(player)
	playerData.Lives = 1

	press(e, cfg.ActionPause, false)
	UpdatePause(e)
	pause := GetOrCreatePause(e)
	if !pause.IsPaused {
		t.Fatal("pause action should pause the game")
	}

	clearInput(e)
	pause.SelectedOption = components.MenuRestart
	press(e, cfg.ActionMenuSelect, false)
	UpdatePause(e)

	if pause.IsPaused {
		t.Error("restart should unpause")
	}
	if playerData.Lives != cfg.Player.StartingLives {
		t.Errorf("lives = %d after restart, want %d", playerData.Lives, cfg.Player.StartingLives)
	}
	pos := components.Controller.Get(player).Bounds().Min
	if !approx(pos.X(), 20, 1e-6) || !approx(pos.Y(), 60, 1e-6) {
		t.Errorf("player at %v after restart, want the level spawn (20, 60)", pos)
	}
}
