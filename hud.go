package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/boxshadow/common"
	"github.com/milk9111/boxshadow/component"
	"github.com/milk9111/boxshadow/obj"
	"github.com/milk9111/boxshadow/prefabs"
	"golang.org/x/image/colornames"
)

type palette struct {
	background color.Color
	ground     color.Color
	players    [2]color.Color
	sword      color.Color
	shield     color.Color
}

func paletteFromSpec(spec prefabs.ColorSpec) palette {
	return palette{
		background: spec.Background.Or(colornames.Black),
		ground:     spec.Ground.Or(colornames.Saddlebrown),
		players: [2]color.Color{
			spec.Player1.Or(colornames.Royalblue),
			spec.Player2.Or(colornames.Firebrick),
		},
		sword:  spec.Sword.Or(colornames.Lightgrey),
		shield: spec.Shield.Or(colornames.Goldenrod),
	}
}

// hud layout in logical units
const (
	hudIconSize   = 22
	hudIconStep   = 30
	hudLifeY      = 23
	hudStaminaY   = 60
	hudSideMargin = 30
)

func (g *Game) drawArena(screen *ebiten.Image) {
	cfg := g.world.Config()
	ground := float32(cfg.Ground())
	vector.FillRect(screen, 0, ground, float32(cfg.ArenaWidth), float32(cfg.Scale(10)), g.palette.ground, false)

	for i := 0; i < 2; i++ {
		c := g.world.Combatant(i)
		if c == nil || c.Defeated {
			continue
		}
		// blink while invincible
		if c.Invincible() && (g.frames/4)%2 == 0 {
			continue
		}
		drawRect(screen, c.Body(), g.palette.players[i], true)

		hb := c.Hitbox()
		switch hb.Kind {
		case component.HitboxSword, component.HitboxDownstrike:
			drawRect(screen, hb.Rect, g.palette.sword, true)
		case component.HitboxShield:
			drawRect(screen, hb.Rect, g.palette.shield, true)
		}
		if c.Motion() == obj.MotionKnockback {
			drawRect(screen, c.Body(), colornames.White, false)
		}
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	cfg := g.world.Config()
	for i := 0; i < 2; i++ {
		c := g.world.Combatant(i)
		if c == nil {
			continue
		}
		g.drawPips(screen, i, hudLifeY, c.Life(), common.LifeBudget-c.MaxStamina(), g.palette.players[i], cfg.ArenaWidth)
		g.drawPips(screen, i, hudStaminaY, c.Stamina(), c.MaxStamina(), g.palette.shield, cfg.ArenaWidth)
	}
}

// drawPips draws filled pips for value and outlines for the rest of max.
// Player 1 grows from the left edge, player 2 from the right.
func (g *Game) drawPips(screen *ebiten.Image, player int, y float64, value, max int, clr color.Color, width float64) {
	for i := 0; i < max; i++ {
		x := float64(hudSideMargin + hudIconStep*i)
		if player == 1 {
			x = width - hudSideMargin - hudIconSize - float64(hudIconStep*i)
		}
		r := common.Rect{X: x, Y: y, Width: hudIconSize, Height: hudIconSize}
		drawRect(screen, r, clr, i < value)
	}
}

func drawRect(screen *ebiten.Image, r common.Rect, clr color.Color, filled bool) {
	if filled {
		vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), clr, false)
		return
	}
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1.5, clr, false)
}
