package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/jungle/common"
	"github.com/milk9111/jungle/levels"
	"golang.org/x/image/font/basicfont"
)

var (
	overlayPanelColor = color.NRGBA{A: 200}
	overlayButton     = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	overlayText       = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

type overlayButtonSpec struct {
	label   string
	onClick func()
}

// newOverlay builds a centred panel with a column of labels followed by a
// column of buttons. Panel size is half of the scaled screen.
func newOverlay(scale float64, lines []string, buttons []overlayButtonSpec) *ebitenui.UI {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	panelImg := imageui.NewNineSliceColor(overlayPanelColor)
	btnImg := imageui.NewNineSliceColor(overlayButton)
	btnTextColor := &widget.ButtonTextColor{Idle: overlayText}
	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(int(common.WindowWidth*scale/2), int(common.WindowHeight*scale/2)),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	for _, line := range lines {
		panel.AddChild(widget.NewText(
			widget.TextOpts.Text(line, &face, overlayText),
			widget.TextOpts.WidgetOpts(centered),
		))
	}
	for _, b := range buttons {
		onClick := b.onClick
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(b.label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(centered),
			widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
				onClick()
			}),
		))
	}

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

// NewPauseUI shows Resume, Restart and Quit while the session is paused.
func NewPauseUI(g *Game) *ebitenui.UI {
	return newOverlay(g.scale, []string{"Paused"}, []overlayButtonSpec{
		{"Resume", g.session.TogglePause},
		{"Restart", g.Restart},
		{"Quit", g.Quit},
	})
}

// NewFinishUI shows the run's totals once the checkpoint is reached.
func NewFinishUI(g *Game) *ebitenui.UI {
	return newOverlay(g.scale, finishLines(g), []overlayButtonSpec{
		{"Restart", g.Restart},
		{"Quit", g.Quit},
	})
}

func finishLines(g *Game) []string {
	return []string{
		"Level complete",
		fmt.Sprintf("Coins: %d / %d", g.session.Coins, g.level.Count(levels.EntityCoin)),
		fmt.Sprintf("Time: %.1f", g.session.Elapsed.Seconds()),
		fmt.Sprintf("Deaths: %d", g.session.Deaths),
	}
}
