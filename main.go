package main

import (
	"flag"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milkrun/ascent/config"
	"github.com/milkrun/ascent/fonts"
	"github.com/milkrun/ascent/scenes"
	"github.com/milkrun/ascent/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadDefaults()

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewPlatformerScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	var tuningPath string
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", false, "skip the main menu and start playing")
	flag.BoolVar(&config.Debug.DrawBoxes, "debug-draw", false, "draw trigger volumes and collision flags")
	flag.StringVar(&tuningPath, "tuning", "tuning.yaml", "path to the tuning overlay file")
	flag.Parse()

	// The tuning overlay is optional; a missing file keeps the built-in
	// defaults. When present it is also watched for live editing.
	if err := config.LoadTuning(tuningPath); err != nil {
		log.Printf("Warning: Could not load tuning file: %v", err)
	}
	if watcher, err := config.WatchTuning(tuningPath); err != nil {
		log.Printf("Warning: Could not watch tuning file: %v", err)
	} else {
		defer watcher.Close()
		go func() {
			for {
				select {
				case path, ok := <-watcher.Events:
					if !ok {
						return
					}
					log.Printf("Reloaded tuning from %s", path)
				case err, ok := <-watcher.Errors:
					if !ok {
						return
					}
					log.Printf("Tuning watcher error: %v", err)
				}
			}
		}()
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
