package tags

import "github.com/yohamta/donburi"

var (
	Player           = donburi.NewTag().SetName("Player")
	FloatingPlatform = donburi.NewTag().SetName("FloatingPlatform")
	Checkpoint       = donburi.NewTag().SetName("Checkpoint")
	DeadZone         = donburi.NewTag().SetName("DeadZone")
)

// Resolv tags for trigger volume lookups
const (
	ResolvPlayer     = "Player"
	ResolvDeadZone   = "deadzone"
	ResolvCheckpoint = "checkpoint"
)
