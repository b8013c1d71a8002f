package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/milk9111/boxshadow/common"
)

type menuWidgets struct {
	stamina [2]*widget.Text
}

func (m *menuWidgets) refresh(g *Game) {
	for i, t := range m.stamina {
		s := g.stamina[i]
		t.Label = fmt.Sprintf("Player %d  life %d  stamina %d", i+1, common.LifeBudget-s, s)
	}
}

// NewMenuUI builds the main menu: mode selection plus the per-player
// life/stamina split.
func NewMenuUI(g *Game) (*ebitenui.UI, *menuWidgets) {
	kit := newUIKit()
	w := &menuWidgets{}

	cfg := g.world.Config()
	root, panel := kit.centeredPanel(int(cfg.ArenaWidth/2), int(cfg.ArenaHeight/2))
	panel.AddChild(kit.text("BOX SHADOW"))

	for i := range w.stamina {
		player := i
		w.stamina[i] = kit.text("")
		row := widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
			)),
			widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(kit.centerRow)),
		)
		row.AddChild(kit.button("-", func() { g.adjustStamina(player, -1) }))
		row.AddChild(w.stamina[i])
		row.AddChild(kit.button("+", func() { g.adjustStamina(player, 1) }))
		panel.AddChild(row)
	}

	panel.AddChild(kit.button("1 Player", func() { g.startMatch(true) }))
	panel.AddChild(kit.button("2 Players", func() { g.startMatch(false) }))
	panel.AddChild(kit.text("P1: WASD move, F sword, G shield"))
	panel.AddChild(kit.text("P2: arrows move, . sword, / shield"))

	w.refresh(g)
	return &ebitenui.UI{Container: root}, w
}

// adjustStamina moves one point between a player's life and stamina. Life
// never drops below one.
func (g *Game) adjustStamina(player, delta int) {
	g.stamina[player] = common.ClampInt(g.stamina[player]+delta, 0, common.LifeBudget-1)
	g.menu.refresh(g)
}
