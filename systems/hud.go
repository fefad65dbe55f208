package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/milkrun/ascent/components"
	cfg "github.com/milkrun/ascent/config"
	"github.com/milkrun/ascent/fonts"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the lives counter and active checkpoint in the
// top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	face := fonts.HUD.Get()
	margin := int(cfg.UI.HUDMargin)
	lineHeight := int(cfg.UI.HUDFontSize) + 4

	text.Draw(screen, fmt.Sprintf("Lives: %d", player.Lives),
		face, margin, margin+lineHeight, cfg.UI.HUDTextColor)

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	line := level.LevelName
	if level.ActiveCheckpoint != nil {
		line = fmt.Sprintf("%s  [%s]", level.LevelName, level.ActiveCheckpoint.Name)
	}
	text.Draw(screen, line, face, margin, margin+2*lineHeight, cfg.UI.HUDTextColor)
}
