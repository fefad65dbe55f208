package systems

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milkrun/ascent/components"
	"github.com/milkrun/ascent/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatforms advances the floating platform tweens and moves
// their collision surfaces. Platforms move before the kinematics
// system runs so riders resolve against the surface's new position,
// and any rider is carried by the platform's delta.
func UpdatePlatforms(ecs *ecs.ECS) {
	components.Platform.Each(ecs.World, func(e *donburi.Entry) {
		platform := components.Platform.Get(e)

		y, _, seqDone := platform.Tween.Update(1.0 / 60.0)
		if seqDone {
			platform.Tween.Reset()
		}

		newY := float64(y)
		delta := newY - platform.LastY
		if delta == 0 {
			return
		}

		topBefore := platform.Surface.Shape.Bounds().Min.Y()
		platform.Surface.Shape.Translate(mgl64.Vec2{0, delta})
		platform.LastY = newY

		carryRider(ecs, platform, topBefore, delta)
	})
}

// carryRider moves the player with the platform when standing on it.
func carryRider(ecs *ecs.ECS, platform *components.PlatformData, topBefore, delta float64) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || playerEntry.HasComponent(components.Death) {
		return
	}

	ctrl := components.Controller.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	if !physics.OnGround {
		return
	}

	body := ctrl.Bounds()
	surfBounds := platform.Surface.Shape.Bounds()
	if body.Max.X() <= surfBounds.Min.X() || body.Min.X() >= surfBounds.Max.X() {
		return
	}

	// Standing on the platform's top edge, give or take the skin.
	skin := ctrl.Config().SkinWidth
	if body.Max.Y() < topBefore-2*skin || body.Max.Y() > topBefore+2*skin {
		return
	}

	ctrl.Move(mgl64.Vec2{0, delta}, false)
}
