package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	cfg "github.com/milkrun/ascent/config"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI holds the ebitenui interface for the main menu.
type MenuUI struct {
	UI *ebitenui.UI

	OnStart      func()
	OnContinue   func()
	OnFullscreen func(enabled bool)
	OnQuit       func()

	continueBtn *widget.Button
	statusLabel *widget.Label
	fullscreen  bool

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewMenuUI(hasSave bool, onStart, onContinue func(), onFullscreen func(bool), onQuit func()) *MenuUI {
	ui := &MenuUI{
		OnStart:      onStart,
		OnContinue:   onContinue,
		OnFullscreen: onFullscreen,
		OnQuit:       onQuit,
	}
	ui.loadFonts()
	ui.buildUI(hasSave)
	return ui
}

func (ui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 28}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (ui *MenuUI) buildUI(hasSave bool) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &ui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	)
	contentContainer.AddChild(titleLabel)

	contentContainer.AddChild(ui.menuButton("Start", func() {
		if ui.OnStart != nil {
			ui.OnStart()
		}
	}))

	ui.continueBtn = ui.menuButton("Continue", func() {
		if ui.OnContinue != nil {
			ui.OnContinue()
		}
	})
	if !hasSave {
		ui.continueBtn.GetWidget().Disabled = true
	}
	contentContainer.AddChild(ui.continueBtn)

	contentContainer.AddChild(ui.menuButton("Fullscreen", func() {
		ui.fullscreen = !ui.fullscreen
		if ui.OnFullscreen != nil {
			ui.OnFullscreen(ui.fullscreen)
		}
	}))

	contentContainer.AddChild(ui.menuButton("Quit", func() {
		if ui.OnQuit != nil {
			ui.OnQuit()
		}
	}))

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	contentContainer.AddChild(ui.statusLabel)

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *MenuUI) menuButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 48, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    cfg.LightBlue,
			Pressed:  cfg.DarkBlue,
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// SetStatus shows a short message under the buttons.
func (ui *MenuUI) SetStatus(format string, args ...any) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = fmt.Sprintf(format, args...)
	}
}

func (ui *MenuUI) Update() {
	ui.UI.Update()
}
