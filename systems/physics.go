package systems

import (
	"github.com/milkrun/ascent/components"
	cfg "github.com/milkrun/ascent/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics applies friction, gravity, and speed clamps. It runs
// after UpdatePlayer (which sets acceleration) and before
// UpdateKinematics (which moves the body).
func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		// Freeze in place during the respawn countdown
		if e.HasComponent(components.Player) && e.HasComponent(components.Death) {
			return
		}

		physics := components.Physics.Get(e)

		applyFriction(physics, physics.Friction)

		if physics.SpeedX > physics.MaxSpeed {
			physics.SpeedX = physics.MaxSpeed
		} else if physics.SpeedX < -physics.MaxSpeed {
			physics.SpeedX = -physics.MaxSpeed
		}

		// Apply gravity
		physics.SpeedY += physics.Gravity
		if physics.WallSliding != 0 && physics.SpeedY > cfg.Physics.WallSlideSpeed {
			physics.SpeedY = cfg.Physics.WallSlideSpeed
		}

		if physics.SpeedY > cfg.Physics.VerticalSpeedClamp {
			physics.SpeedY = cfg.Physics.VerticalSpeedClamp
		} else if physics.SpeedY < -cfg.Physics.VerticalSpeedClamp {
			physics.SpeedY = -cfg.Physics.VerticalSpeedClamp
		}

		// Track last safe ground position for player respawn
		if e.HasComponent(components.Player) && physics.OnGround && e.HasComponent(components.Controller) {
			body := components.Controller.Get(e).Bounds()
			player := components.Player.Get(e)
			player.LastSafeX = body.Min.X()
			player.LastSafeY = body.Min.Y()
		}
	})
}

func applyFriction(physics *components.PhysicsData, friction float64) {
	switch {
	case physics.SpeedX > friction:
		physics.SpeedX -= friction
	case physics.SpeedX < -friction:
		physics.SpeedX += friction
	default:
		physics.SpeedX = 0
	}
}
