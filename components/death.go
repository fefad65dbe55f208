package components

import "github.com/yohamta/donburi"

// DeathData marks the player's respawn countdown after a dead zone
// hit. Timer counts down each frame; at 0 the player respawns at the
// active checkpoint.
type DeathData struct {
	Timer int
}

var Death = donburi.NewComponentType[DeathData]()
