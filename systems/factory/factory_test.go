package factory

import (
	"testing"

	"github.com/milkrun/ascent/archetypes"
	"github.com/milkrun/ascent/components"
	cfg "github.com/milkrun/ascent/config"
	"github.com/milkrun/ascent/shared/geom"
	"github.com/milkrun/ascent/shared/kinematic"
	"github.com/milkrun/ascent/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestCreateTileSurfaceShapes(t *testing.T) {
	flat := CreateTileSurface(leveldata.TileRect{X: 0, Y: 0, W: 16, H: 16})
	if _, ok := flat.Shape.(*geom.Box); !ok {
		t.Errorf("flat tile shape = %T, want *geom.Box", flat.Shape)
	}
	if !flat.HasTags(kinematic.TagSolid) {
		t.Error("flat tile should carry the solid tag")
	}

	ramp := CreateTileSurface(leveldata.TileRect{X: 0, Y: 0, W: 16, H: 16, SlopeType: leveldata.Slope45UpRight})
	if _, ok := ramp.Shape.(*geom.Polygon); !ok {
		t.Errorf("slope tile shape = %T, want *geom.Polygon", ramp.Shape)
	}

	oneWay := CreateTileSurface(leveldata.TileRect{X: 0, Y: 0, W: 16, H: 8, OneWay: true})
	if !oneWay.HasTags(kinematic.TagOneWay) {
		t.Error("one-way tile should carry the one-way tag")
	}
	if oneWay.HasTags(kinematic.TagSolid) {
		t.Error("one-way tile must not also be solid")
	}
}

func testLevel(t *testing.T, e *ecs.ECS, data *leveldata.CollisionData) *components.LevelData {
	t.Helper()
	entry := archetypes.Level.Spawn(e)
	level := &components.LevelData{
		CurrentLevel: data,
		LevelName:    "test",
		LevelNames:   []string{"test"},
		Levels:       map[string]*leveldata.CollisionData{"test": data},
	}
	components.Level.Set(entry, level)
	return level
}

func TestBuildSpaces(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	level := testLevel(t, e, &leveldata.CollisionData{
		Tiles: []leveldata.TileRect{
			{X: 0, Y: 100, W: 64, H: 16},
			{X: 64, Y: 84, W: 16, H: 16, SlopeType: leveldata.Slope45UpRight},
		},
		DeadZones:   []leveldata.Region{{X: 0, Y: 200, W: 100, H: 16, Name: "pit"}},
		Checkpoints: []leveldata.Region{{X: 30, Y: 60, W: 16, H: 40, Name: "mid"}},
		Platforms:   []leveldata.FloatingPlatform{{X: 100, Y: 80, W: 48, H: 8, Travel: 32, Period: 2}},
		MapWidth:    640,
		MapHeight:   360,
	})

	BuildSpaces(e, level)

	// Tiles plus the floating platform surface.
	if got := len(level.Space.Surfaces()); got != 3 {
		t.Errorf("surface count = %d, want 3", got)
	}
	if got := len(level.Triggers.Objects()); got != 2 {
		t.Errorf("trigger object count = %d, want 2 (dead zone and checkpoint)", got)
	}

	count := func(q interface {
		Each(donburi.World, func(*donburi.Entry))
	}) int {
		n := 0
		q.Each(e.World, func(*donburi.Entry) { n++ })
		return n
	}
	if got := count(components.Checkpoint); got != 1 {
		t.Errorf("checkpoint entities = %d, want 1", got)
	}
	if got := count(components.Platform); got != 1 {
		t.Errorf("platform entities = %d, want 1", got)
	}
}

func TestCreatePlayerWiring(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	level := testLevel(t, e, &leveldata.CollisionData{
		Tiles:     []leveldata.TileRect{{X: 0, Y: 100, W: 64, H: 16}},
		MapWidth:  640,
		MapHeight: 360,
	})
	BuildSpaces(e, level)

	player := CreatePlayer(e, 10, 20)

	body := components.Controller.Get(player).Bounds()
	if body.Min.X() != 10 || body.Min.Y() != 20 {
		t.Errorf("body at %v, want (10, 20)", body.Min)
	}
	if body.W() != cfg.Player.CollisionWidth || body.H() != cfg.Player.CollisionHeight {
		t.Errorf("body size %vx%v, want %vx%v", body.W(), body.H(),
			cfg.Player.CollisionWidth, cfg.Player.CollisionHeight)
	}

	proxy := components.Trigger.Get(player).Object
	if proxy.Space != level.Triggers {
		t.Error("player trigger proxy should live in the level's trigger space")
	}
	if entry, ok := proxy.Data.(*donburi.Entry); !ok || entry != player {
		t.Error("trigger proxy should point back at the player entry")
	}

	if lives := components.Player.Get(player).Lives; lives != cfg.Player.StartingLives {
		t.Errorf("lives = %d, want %d", lives, cfg.Player.StartingLives)
	}
}

func TestCreateFloatingPlatformTween(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	level := testLevel(t, e, &leveldata.CollisionData{MapWidth: 640, MapHeight: 360})
	BuildSpaces(e, level)

	entry := CreateFloatingPlatform(e, level, leveldata.FloatingPlatform{
		X: 100, Y: 80, W: 48, H: 8, Travel: 32, Period: 2,
	})
	platform := components.Platform.Get(entry)

	if platform.LastY != 80 {
		t.Errorf("tween anchor = %v, want 80", platform.LastY)
	}
	if !platform.Surface.HasTags(kinematic.TagOneWay) {
		t.Error("floating platforms should be one-way surfaces")
	}

	// A full first leg ends at the top of the travel range.
	y, _, _ := platform.Tween.Update(2.0)
	if y != 48 {
		t.Errorf("tween value after first leg = %v, want 48", y)
	}
}

func TestCreateLevelByNameEmbedded(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())

	entry := CreateLevelByName(e, "ascent-1")
	level := components.Level.Get(entry)

	if level.LevelName != "ascent-1" {
		t.Fatalf("level name = %q, want ascent-1", level.LevelName)
	}
	if len(level.LevelNames) < 2 {
		t.Fatalf("embedded level names = %v, want at least 2", level.LevelNames)
	}
	if level.CurrentLevel.MapWidth != 640 || level.CurrentLevel.MapHeight != 368 {
		t.Errorf("map size %dx%d, want 640x368",
			level.CurrentLevel.MapWidth, level.CurrentLevel.MapHeight)
	}
	if len(level.CurrentLevel.SpawnPoints) == 0 {
		t.Error("level has no spawn points")
	}
	if len(level.Space.Surfaces()) == 0 {
		t.Error("level has no collision surfaces")
	}

	// Unknown names fall back to the first level.
	e2 := ecs.NewECS(donburi.NewWorld())
	fallback := components.Level.Get(CreateLevelByName(e2, "no-such-level"))
	if fallback.LevelName != fallback.LevelNames[0] {
		t.Errorf("fallback level = %q, want %q", fallback.LevelName, fallback.LevelNames[0])
	}
}
