package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milkrun/ascent/components"
	cfg "github.com/milkrun/ascent/config"
	"github.com/milkrun/ascent/fonts"
	"github.com/milkrun/ascent/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug overlays trigger volumes and the player's collision flags.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawBoxes {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX := float64(width)/2 - camera.Position.X
	camY := float64(height)/2 - camera.Position.Y

	// Trigger volumes as outlines
	components.Trigger.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Trigger.Get(e).Object
		c := cfg.UI.DebugTriggerColor
		if obj.HasTags(tags.ResolvDeadZone) {
			c = cfg.Red
		}
		drawRectOutline(screen, obj.X+camX, obj.Y+camY, obj.W, obj.H, c)
	})

	drawCollisionFlags(ecs, screen)
}

func drawRectOutline(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, c, false)
}

// drawCollisionFlags prints the controller's state for the player in
// the bottom-left corner.
func drawCollisionFlags(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}

	state := components.Controller.Get(playerEntry).State()
	playerState := components.State.Get(playerEntry)

	line := fmt.Sprintf("above=%t below=%t left=%t right=%t slope=%.1f state=%s",
		state.Above, state.Below, state.Left, state.Right,
		state.SlopeAngle, playerState.CurrentState)

	face := fonts.Small.Get()
	text.Draw(screen, line, face, 8, screen.Bounds().Dy()-8, cfg.White)
}
