package systems

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milkrun/ascent/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateKinematics moves every controlled body by its requested speed
// and folds the collision flags back into the physics state. Runs
// after UpdatePhysics, before the trigger and camera systems.
func UpdateKinematics(ecs *ecs.ECS) {
	components.Controller.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}

		physics := components.Physics.Get(e)
		ctrl := components.Controller.Get(e)

		state := ctrl.Move(mgl64.Vec2{physics.SpeedX, physics.SpeedY}, physics.DropThrough)

		physics.OnGround = state.Below
		if state.Below || state.Above {
			physics.SpeedY = 0
		}
		if state.Left || state.Right {
			// Slopes clamp the requested X without putting a wall
			// beside the body, so keep speed unless truly blocked.
			if !state.AscendingSlope && !state.DescendingSlope {
				physics.SpeedX = 0
			}
		}

		updateWallSliding(physics, state.Left, state.Right)
	})
}

// updateWallSliding engages the wall slide while airborne against a
// wall and moving downward, and clears it otherwise.
func updateWallSliding(physics *components.PhysicsData, left, right bool) {
	if physics.OnGround || physics.SpeedY < 0 {
		physics.WallSliding = 0
		return
	}

	switch {
	case left:
		physics.WallSliding = -1
	case right:
		physics.WallSliding = 1
	default:
		physics.WallSliding = 0
	}
}
