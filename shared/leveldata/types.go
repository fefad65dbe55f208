// Package leveldata provides TMX level parsing for the platformer. It
// has no dependencies on ebitengine, donburi, or the kinematic
// controller — pure data only, so tools and tests can consume it too.
package leveldata

// Slope type values recognized on tileset tiles.
const (
	Slope45UpRight = "45_up_right"
	Slope45UpLeft  = "45_up_left"
)

// CollisionData holds all collision-relevant data parsed from a TMX
// level file.
type CollisionData struct {
	Tiles       []TileRect
	SpawnPoints []SpawnPoint
	DeadZones   []Region
	Checkpoints []Region
	Platforms   []FloatingPlatform
	MapWidth    int
	MapHeight   int
}

// TileRect is one collision tile. SlopeType is empty for flat tiles;
// OneWay marks drop-through platforms.
type TileRect struct {
	X, Y, W, H float64
	SlopeType  string
	OneWay     bool
}

// SpawnPoint is a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// Region is a named rectangular trigger area (dead zone, checkpoint).
type Region struct {
	X, Y, W, H float64
	Name       string
}

// FloatingPlatform is a one-way platform that travels vertically from
// its anchor position and back.
type FloatingPlatform struct {
	X, Y, W, H float64
	Travel     float64 // vertical travel distance in pixels
	Period     float64 // seconds for one leg of the trip
}
