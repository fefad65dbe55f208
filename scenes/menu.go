package scenes

import (
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milkrun/ascent/systems"
	"github.com/milkrun/ascent/ui"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu
type MenuScene struct {
	menu         *ui.MenuUI
	sceneChanger SceneChanger
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.menu.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	if ms.menu == nil {
		return
	}
	ms.menu.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.menu = ui.NewMenuUI(
		systems.HasSaveGame(),
		ms.startNewGame,
		ms.continueGame,
		ms.toggleFullscreen,
		func() { os.Exit(0) },
	)
}

func (ms *MenuScene) startNewGame() {
	// A fresh run abandons any previous progress.
	if err := systems.ClearGameProgress(); err != nil {
		ms.menu.SetStatus("could not clear old save")
	}
	ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.sceneChanger))
}

func (ms *MenuScene) continueGame() {
	progress, err := systems.LoadGameProgress()
	if err != nil || progress == nil {
		ms.menu.SetStatus("no saved game found")
		return
	}
	ms.sceneChanger.ChangeScene(NewPlatformerSceneWithSave(ms.sceneChanger, progress))
}

func (ms *MenuScene) toggleFullscreen(enabled bool) {
	ebiten.SetFullscreen(enabled)

	saved, _ := systems.LoadSettings()
	if saved == nil {
		saved = &systems.SavedSettings{}
	}
	saved.Fullscreen = enabled
	if err := systems.SaveSettings(saved); err != nil {
		ms.menu.SetStatus("could not save settings")
	}
}
