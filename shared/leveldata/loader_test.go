package leveldata

import (
	"os"
	"testing"
)

func TestLoadCollisionData(t *testing.T) {
	data, err := LoadCollisionData(os.DirFS("testdata"), "basic.tmx")
	if err != nil {
		t.Fatalf("LoadCollisionData: %v", err)
	}

	if data.MapWidth != 64 || data.MapHeight != 48 {
		t.Errorf("map size = %dx%d, want 64x48", data.MapWidth, data.MapHeight)
	}

	if len(data.Tiles) != 6 {
		t.Fatalf("got %d tiles, want 6", len(data.Tiles))
	}

	// Row-major order: the one-way tile at (48,0) comes first.
	first := data.Tiles[0]
	if first.X != 48 || first.Y != 0 || !first.OneWay {
		t.Errorf("tile 0 = %+v, want one-way tile at (48,0)", first)
	}

	ramp := data.Tiles[1]
	if ramp.X != 16 || ramp.Y != 16 || ramp.SlopeType != Slope45UpRight {
		t.Errorf("tile 1 = %+v, want %s ramp at (16,16)", ramp, Slope45UpRight)
	}

	for _, tile := range data.Tiles[2:] {
		if tile.Y != 32 || tile.SlopeType != "" || tile.OneWay {
			t.Errorf("floor tile = %+v, want plain solid at y=32", tile)
		}
	}
}

func TestLoadCollisionDataObjects(t *testing.T) {
	data, err := LoadCollisionData(os.DirFS("testdata"), "basic.tmx")
	if err != nil {
		t.Fatalf("LoadCollisionData: %v", err)
	}

	if len(data.SpawnPoints) != 2 {
		t.Fatalf("got %d spawns, want 2", len(data.SpawnPoints))
	}
	// Spawns sort left-to-right regardless of authoring order.
	if data.SpawnPoints[0].X != 8 || data.SpawnPoints[0].Index != 0 {
		t.Errorf("spawn 0 = %+v, want index 0 at x=8", data.SpawnPoints[0])
	}
	if data.SpawnPoints[1].X != 40 || data.SpawnPoints[1].Index != 1 {
		t.Errorf("spawn 1 = %+v, want index 1 at x=40", data.SpawnPoints[1])
	}

	if len(data.DeadZones) != 1 || data.DeadZones[0].Name != "pit" {
		t.Fatalf("dead zones = %+v, want one named pit", data.DeadZones)
	}
	dz := data.DeadZones[0]
	if dz.X != 0 || dz.Y != 48 || dz.W != 64 || dz.H != 16 {
		t.Errorf("dead zone rect = %+v", dz)
	}

	if len(data.Checkpoints) != 1 || data.Checkpoints[0].Name != "mid" {
		t.Fatalf("checkpoints = %+v, want one named mid", data.Checkpoints)
	}

	if len(data.Platforms) != 1 {
		t.Fatalf("platforms = %+v, want 1", data.Platforms)
	}
	p := data.Platforms[0]
	if p.Travel != 48 || p.Period != 3 {
		t.Errorf("platform travel/period = %v/%v, want 48/3", p.Travel, p.Period)
	}
}

func TestLoadAllLevels(t *testing.T) {
	levels, names, err := LoadAllLevels(os.DirFS("."), "testdata")
	if err != nil {
		t.Fatalf("LoadAllLevels: %v", err)
	}
	if len(names) != 1 || names[0] != "basic" {
		t.Fatalf("names = %v, want [basic]", names)
	}
	if levels["basic"] == nil || len(levels["basic"].Tiles) == 0 {
		t.Errorf("level basic missing tile data")
	}
}
