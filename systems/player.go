package systems

import (
	cfg "github.com/milkrun/ascent/config"

	"github.com/milkrun/ascent/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(ecs, playerEntry)
	})
}

func updateSinglePlayer(ecs *ecs.ECS, playerEntry *donburi.Entry) {
	// The death system handles the respawn countdown
	if playerEntry.HasComponent(components.Death) {
		return
	}

	input := getOrCreateInput(ecs)
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	state := components.State.Get(playerEntry)

	handlePlayerInput(input, player, physics, state)
	updatePlayerState(input, player, physics, state)
}

func handlePlayerInput(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData, state *components.StateData) {
	physics.DropThrough = false

	handleJumpInput(input, physics)
	handleMovementInput(input, player, physics, state)
}

func handleJumpInput(input *components.InputData, physics *components.PhysicsData) {
	if !input.JustPressed(cfg.ActionJump) {
		return
	}

	// Crouch + jump drops through one-way platforms
	if input.Pressed(cfg.ActionCrouch) && physics.OnGround {
		physics.DropThrough = true
		return
	}

	// Normal jump from ground
	if physics.OnGround {
		physics.SpeedY = -cfg.Player.JumpSpeed
		return
	}

	// Wall jump: kick away from the wall
	if physics.WallSliding == 0 {
		return
	}
	physics.SpeedY = -cfg.Player.JumpSpeed
	physics.SpeedX = float64(-physics.WallSliding) * physics.MaxSpeed
	physics.WallSliding = 0
}

func handleMovementInput(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData, state *components.StateData) {
	if physics.WallSliding != 0 {
		return
	}

	// Crouch-walk speed is handled in the state machine
	if state.CurrentState == cfg.Crouch {
		return
	}

	accel := cfg.Player.Acceleration
	if input.Pressed(cfg.ActionMoveRight) {
		physics.SpeedX += accel
		player.Direction.X = cfg.DirectionRight
	}
	if input.Pressed(cfg.ActionMoveLeft) {
		physics.SpeedX -= accel
		player.Direction.X = cfg.DirectionLeft
	}
}

func updatePlayerState(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData, state *components.StateData) {
	state.StateTimer++

	switch state.CurrentState {
	case cfg.Idle, cfg.Running:
		if input.JustPressed(cfg.ActionCrouch) && physics.OnGround {
			enterState(state, cfg.Crouch)
		} else {
			transitionToMovementState(physics, state)
		}

	case cfg.Crouch:
		applyCrouchMovement(input, player, physics)

		if !physics.OnGround {
			transitionToMovementState(physics, state)
			break
		}
		if !input.Pressed(cfg.ActionCrouch) {
			transitionToMovementState(physics, state)
		}

	case cfg.Jump, cfg.Fall:
		if physics.SpeedY > 0 && state.CurrentState == cfg.Jump {
			enterState(state, cfg.Fall)
			break
		}
		if physics.OnGround {
			transitionToMovementState(physics, state)
		} else if physics.WallSliding != 0 {
			enterState(state, cfg.WallSlide)
		}

	case cfg.WallSlide:
		if physics.WallSliding == 0 {
			transitionToMovementState(physics, state)
		}

	default:
		transitionToMovementState(physics, state)
	}
}

func transitionToMovementState(physics *components.PhysicsData, state *components.StateData) {
	var next cfg.StateID
	switch {
	case physics.WallSliding != 0:
		next = cfg.WallSlide
	case !physics.OnGround && physics.SpeedY < 0:
		next = cfg.Jump
	case !physics.OnGround:
		next = cfg.Fall
	case physics.SpeedX != 0:
		next = cfg.Running
	default:
		next = cfg.Idle
	}
	if next != state.CurrentState {
		enterState(state, next)
	}
}

func enterState(state *components.StateData, next cfg.StateID) {
	state.PreviousState = state.CurrentState
	state.CurrentState = next
	state.StateTimer = 0
}

func applyCrouchMovement(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData) {
	left := input.Pressed(cfg.ActionMoveLeft)
	right := input.Pressed(cfg.ActionMoveRight)

	switch {
	case right:
		physics.SpeedX = cfg.Player.CrouchWalkSpeed
		player.Direction.X = cfg.DirectionRight
	case left:
		physics.SpeedX = -cfg.Player.CrouchWalkSpeed
		player.Direction.X = cfg.DirectionLeft
	default:
		applyFriction(physics, physics.Friction)
	}
}
