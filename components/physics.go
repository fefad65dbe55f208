package components

import (
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	Gravity  float64
	Friction float64
	MaxSpeed float64

	OnGround    bool
	WallSliding int  // -1 wall on left, 1 wall on right, 0 none
	DropThrough bool // request to fall through one-way platforms this frame
}

var Physics = donburi.NewComponentType[PhysicsData]()
