package scenes

import (
	"image/color"
	"sync"

	"github.com/milkrun/ascent/components"
	cfg "github.com/milkrun/ascent/config"
	"github.com/milkrun/ascent/systems"
	"github.com/milkrun/ascent/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	resume       *systems.SavedGameProgress
	once         sync.Once
}

// NewPlatformerScene starts a fresh run on the first level.
func NewPlatformerScene(sc SceneChanger) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc}
}

// NewPlatformerSceneWithSave resumes from saved progress: its level, and
// its checkpoint as the spawn position.
func NewPlatformerSceneWithSave(sc SceneChanger, progress *systems.SavedGameProgress) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, resume: progress}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)

	// Game systems halt while paused. Ordering matters: intent first,
	// then forces, then the moving level, then collision resolution,
	// then everything that reads the resolved positions.
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePlatforms))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateKinematics))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateTriggers))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateDeaths))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))

	// Renderers
	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ps.ecs = ecs

	levelName := ""
	if ps.resume != nil {
		levelName = ps.resume.LevelName
	}
	levelEntry := factory.CreateLevelByName(ps.ecs, levelName)
	levelData := components.Level.Get(levelEntry)

	factory.CreateCamera(ps.ecs)

	spawnX, spawnY := 0.0, 0.0
	if len(levelData.CurrentLevel.SpawnPoints) > 0 {
		spawn := levelData.CurrentLevel.SpawnPoints[0]
		spawnX, spawnY = spawn.X, spawn.Y
	}
	if ps.resume != nil {
		spawnX, spawnY = ps.applyResume(levelData)
	}

	factory.CreatePlayer(ps.ecs, spawnX, spawnY)

	// Snap camera to the spawn position to prevent panning from (0,0)
	if cameraEntry, ok := components.Camera.First(ps.ecs.World); ok {
		camera := components.Camera.Get(cameraEntry)
		camera.Position.X = spawnX
		camera.Position.Y = spawnY
	}
}

// applyResume restores the saved checkpoint as already activated and
// returns its spawn position.
func (ps *PlatformerScene) applyResume(levelData *components.LevelData) (float64, float64) {
	levelData.ActiveCheckpoint = &components.ActiveCheckpointData{
		Name:   ps.resume.CheckpointName,
		SpawnX: ps.resume.CheckpointSpawnX,
		SpawnY: ps.resume.CheckpointSpawnY,
	}

	components.Checkpoint.Each(ps.ecs.World, func(e *donburi.Entry) {
		checkpoint := components.Checkpoint.Get(e)
		if checkpoint.Name == ps.resume.CheckpointName {
			checkpoint.Activated = true
		}
	})

	return ps.resume.CheckpointSpawnX, ps.resume.CheckpointSpawnY
}
