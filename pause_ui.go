package main

import (
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/boxshadow/system"
)

var (
	uiTextColor   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	uiPanelColor  = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	uiButtonColor = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	uiHoverColor  = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255}
)

// uiKit holds what every menu button and label shares.
type uiKit struct {
	face      ebtext.Face
	btnImage  *widget.ButtonImage
	btnText   *widget.ButtonTextColor
	panel     *imageui.NineSlice
	centerRow widget.RowLayoutData
}

func newUIKit() *uiKit {
	btnImg := imageui.NewNineSliceColor(uiButtonColor)
	kit := &uiKit{
		face:      ebtext.NewGoXFace(basicfont.Face7x13),
		btnText:   &widget.ButtonTextColor{Idle: uiTextColor},
		panel:     imageui.NewNineSliceColor(uiPanelColor),
		centerRow: widget.RowLayoutData{Position: widget.RowLayoutPositionCenter},
	}
	kit.btnImage = &widget.ButtonImage{
		Idle:    btnImg,
		Hover:   imageui.NewNineSliceColor(uiHoverColor),
		Pressed: btnImg,
	}
	return kit
}

func (k *uiKit) text(label string) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, &k.face, uiTextColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(k.centerRow)),
	)
}

func (k *uiKit) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(k.btnImage),
		widget.ButtonOpts.Text(label, &k.face, k.btnText),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(k.centerRow)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// centeredPanel returns a root with a vertical panel anchored in its middle.
func (k *uiKit) centeredPanel(minW, minH int) (*widget.Container, *widget.Container) {
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(k.panel),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(minW, minH),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)
	return root, panel
}

type pauseWidgets struct {
	title  *widget.Text
	hint   *widget.Text
	resume *widget.Button
}

// refresh retitles the overlay for a pause or a decided match.
func (p *pauseWidgets) refresh(g *Game) {
	switch g.world.Outcome() {
	case system.Player1Win:
		p.title.Label = "Player 1 wins"
	case system.Player2Win:
		p.title.Label = "Player 2 wins"
	case system.Draw:
		p.title.Label = "Draw"
	default:
		p.title.Label = "Paused"
		p.hint.Label = "ESC to resume"
		return
	}
	p.hint.Label = "SPACE to restart, BACKSPACE for main menu"
}

// NewPauseUI builds the overlay shown while paused and after a match ends.
func NewPauseUI(g *Game) (*ebitenui.UI, *pauseWidgets) {
	kit := newUIKit()
	w := &pauseWidgets{
		title: kit.text("Paused"),
		hint:  kit.text("ESC to resume"),
	}
	w.resume = kit.button("Resume", func() {
		if g.world.Outcome() == system.Ongoing {
			g.paused = false
		}
	})

	cfg := g.world.Config()
	root, panel := kit.centeredPanel(int(cfg.ArenaWidth/2), int(cfg.ArenaHeight/3))
	panel.AddChild(w.title)
	panel.AddChild(w.hint)
	panel.AddChild(w.resume)
	panel.AddChild(kit.button("Restart", g.restart))
	panel.AddChild(kit.button("Main menu", g.backToMenu))

	return &ebitenui.UI{Container: root}, w
}
