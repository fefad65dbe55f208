package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names the loader understands.
const (
	collisionLayer     = "collision"
	spawnGroup         = "PlayerSpawn"
	deadZoneGroup      = "DeadZone"
	checkpointGroup    = "Checkpoint"
	platformGroup      = "FloatingPlatform"
	defaultTravel      = 128.0
	defaultTravelTime  = 2.0
	travelProperty     = "travel"
	travelTimeProperty = "period"
)

// LoadCollisionData parses a TMX file and returns the level's collision
// tiles, trigger regions, and spawn points. It takes an fs.FS so
// callers can pass embed.FS or os.DirFS.
func LoadCollisionData(fsys fs.FS, tmxPath string) (*CollisionData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &CollisionData{
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != collisionLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				var slopeType string
				var oneWay bool
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					slopeType = tilesetTile.Properties.GetString("slope")
					oneWay = tilesetTile.Properties.GetBool("oneway")
				}

				data.Tiles = append(data.Tiles, TileRect{
					X:         float64(x) * tileW,
					Y:         float64(y) * tileH,
					W:         tileW,
					H:         tileH,
					SlopeType: slopeType,
					OneWay:    oneWay,
				})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case spawnGroup:
			for _, o := range og.Objects {
				data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case deadZoneGroup:
			for _, o := range og.Objects {
				data.DeadZones = append(data.DeadZones, region(o))
			}
		case checkpointGroup:
			for _, o := range og.Objects {
				data.Checkpoints = append(data.Checkpoints, region(o))
			}
		case platformGroup:
			for _, o := range og.Objects {
				p := FloatingPlatform{
					X: o.X, Y: o.Y, W: o.Width, H: o.Height,
					Travel: float64(o.Properties.GetInt(travelProperty)),
					Period: float64(o.Properties.GetInt(travelTimeProperty)),
				}
				if p.Travel == 0 {
					p.Travel = defaultTravel
				}
				if p.Period == 0 {
					p.Period = defaultTravelTime
				}
				data.Platforms = append(data.Platforms, p)
			}
		}
	}

	// Sort spawns left-to-right for consistent assignment.
	sort.Slice(data.SpawnPoints, func(i, j int) bool {
		return data.SpawnPoints[i].X < data.SpawnPoints[j].X
	})

	return data, nil
}

func region(o *tiled.Object) Region {
	return Region{X: o.X, Y: o.Y, W: o.Width, H: o.Height, Name: o.Name}
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys,
// loads collision data for each, and returns a map keyed by stem name
// plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*CollisionData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*CollisionData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadCollisionData(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		levels[stem] = data
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}
