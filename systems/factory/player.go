package factory

import (
	"github.com/milkrun/ascent/archetypes"
	"github.com/milkrun/ascent/components"
	cfg "github.com/milkrun/ascent/config"
	"github.com/milkrun/ascent/shared/geom"
	"github.com/milkrun/ascent/shared/kinematic"
	"github.com/milkrun/ascent/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player at x, y (top-left of the collision
// body). The level entity must exist first; the player's controller
// probes the level's surface space and its trigger proxy lives in the
// level's trigger space.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		panic("CreatePlayer called before CreateLevel")
	}
	level := components.Level.Get(levelEntry)

	player := archetypes.Player.Spawn(ecs)

	body := geom.NewBox(x, y, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight)
	ctrl := kinematic.NewController(level.Space, *body, controllerConfig())
	components.Controller.SetValue(player, components.ControllerData{Controller: ctrl})

	proxy := resolv.NewObject(x, y, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight, tags.ResolvPlayer)
	proxy.SetShape(resolv.NewRectangle(0, 0, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight))
	proxy.Data = player
	level.Triggers.Add(proxy)
	components.Trigger.SetValue(player, components.TriggerData{Object: proxy})

	components.Player.SetValue(player, components.PlayerData{
		Direction: components.Vector{X: cfg.DirectionRight, Y: 0},
		Lives:     cfg.Player.StartingLives,
		LastSafeX: x,
		LastSafeY: y,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
		StateTimer:    0,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:  cfg.Player.Gravity,
		Friction: cfg.Player.Friction,
		MaxSpeed: cfg.Player.MaxSpeed,
	})

	return player
}

func controllerConfig() kinematic.Config {
	return kinematic.Config{
		SkinWidth:          cfg.Controller.SkinWidth,
		HorizontalRayCount: cfg.Controller.HorizontalRayCount,
		VerticalRayCount:   cfg.Controller.VerticalRayCount,
		MaxClimbAngle:      cfg.Controller.MaxClimbAngle,
		MaxDescendAngle:    cfg.Controller.MaxDescendAngle,
		SolidTags:          []string{kinematic.TagSolid},
		OneWayTags:         []string{kinematic.TagOneWay},
	}
}
