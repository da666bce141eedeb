// Package ui builds the desktop menus with ebitenui.
package ui

import (
	"fmt"
	"image/color"

	"github.com/automoto/hedgecop/fonts"
	"github.com/automoto/hedgecop/leveldata"
	"github.com/automoto/hedgecop/progress"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// LevelSelectUI lists the levels as buttons. Locked levels are disabled.
type LevelSelectUI struct {
	UI *ebitenui.UI

	OnSelect func(level int)
	OnGoBack func()

	levels  []*leveldata.Level
	buttons []*widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewLevelSelectUI(levels []*leveldata.Level, onSelect func(level int), onGoBack func()) *LevelSelectUI {
	ui := &LevelSelectUI{
		OnSelect: onSelect,
		OnGoBack: onGoBack,
		levels:   levels,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *LevelSelectUI) loadFonts() {
	ui.titleFace = text.NewGoXFace(fonts.Title.Get())
	ui.normalFace = text.NewGoXFace(fonts.HUD.Get())
	ui.smallFace = text.NewGoXFace(fonts.Small.Get())
}

func (ui *LevelSelectUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("SELECT LEVEL", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	for i, level := range ui.levels {
		n := i + 1
		btn := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(220, 26)),
			widget.ButtonOpts.Image(&widget.ButtonImage{
				Idle:     image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
				Hover:    image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
				Pressed:  image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
				Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
			}),
			widget.ButtonOpts.Text(fmt.Sprintf("%d. %s", n, level.Name), &ui.normalFace, &widget.ButtonTextColor{
				Idle:     color.RGBA{255, 255, 255, 255},
				Hover:    color.RGBA{200, 255, 200, 255},
				Pressed:  color.RGBA{150, 200, 150, 255},
				Disabled: color.RGBA{100, 100, 100, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if ui.OnSelect != nil {
					ui.OnSelect(n)
				}
			}),
		)
		ui.buttons = append(ui.buttons, btn)
		contentContainer.AddChild(btn)
	}

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("1-9 or click to play, M mutes, F1 shows hitboxes", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{160, 160, 180, 255},
		}),
	))

	backButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text("Back", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnGoBack != nil {
				ui.OnGoBack()
			}
		}),
	)
	contentContainer.AddChild(backButton)

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

// Refresh enables the buttons of unlocked levels.
func (ui *LevelSelectUI) Refresh(p progress.Progress) {
	for i, btn := range ui.buttons {
		btn.GetWidget().Disabled = !p.IsUnlocked(i + 1)
	}
}

func (ui *LevelSelectUI) Update() {
	ui.UI.Update()
}

func (ui *LevelSelectUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
