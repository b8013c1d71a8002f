package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/boxshadow/assets"
	"github.com/milk9111/boxshadow/component"
	"github.com/milk9111/boxshadow/obj"
	"github.com/milk9111/boxshadow/prefabs"
	"github.com/milk9111/boxshadow/system"
)

type gameScreen int

const (
	screenMenu gameScreen = iota
	screenFight
)

type Game struct {
	frames int
	debug  bool

	world   *system.World
	media   *assets.Media
	keys    [2]*KeyboardInput
	ai      *obj.AIController
	vsAI    bool
	stamina [2]int
	palette palette

	screen  gameScreen
	paused  bool
	menuUI  *ebitenui.UI
	pauseUI *ebitenui.UI
	menu    *menuWidgets
	pause   *pauseWidgets

	watcher *prefabs.Watcher
}

func NewGame(debug, mute bool) (*Game, error) {
	cfg, err := system.LoadConfig()
	if err != nil {
		return nil, err
	}
	arena, err := prefabs.LoadArenaSpec()
	if err != nil {
		return nil, err
	}
	aiSpec, err := prefabs.LoadAISpec()
	if err != nil {
		return nil, err
	}
	scheme, aiTuning := obj.AITuningFromSpec(aiSpec)
	ai, err := obj.NewAIController(scheme, aiTuning)
	if err != nil {
		return nil, fmt.Errorf("ai: %w", err)
	}

	g := &Game{
		debug:   debug,
		world:   system.NewWorld(cfg),
		media:   assets.NewMedia(),
		keys:    [2]*KeyboardInput{{Keys: player1Keys}, {Keys: player2Keys}},
		ai:      ai,
		vsAI:    true,
		stamina: [2]int{cfg.Tuning.MaxStamina, cfg.Tuning.MaxStamina},
		palette: paletteFromSpec(arena.Colors),
		screen:  screenMenu,
	}
	g.media.Muted = mute
	g.world.Emitter().Subscribe(g.media.HandleEvent)
	if debug {
		g.world.Emitter().Subscribe(func(evt component.CombatEvent) {
			log.Printf("frame %d: %s attacker=%d target=%d", evt.Frame, evt.Type, evt.AttackerID, evt.TargetID)
		})
	}

	g.menuUI, g.menu = NewMenuUI(g)
	g.pauseUI, g.pause = NewPauseUI(g)

	if debug {
		w, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Printf("prefab hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

// startMatch begins a fresh match with the stamina split chosen in the menu.
func (g *Game) startMatch(vsAI bool) {
	g.vsAI = vsAI
	_ = g.world.SetInput(0, g.keys[0])
	if vsAI {
		_ = g.world.SetInput(1, g.ai)
	} else {
		_ = g.world.SetInput(1, g.keys[1])
	}
	if err := g.world.Reset(false); err != nil {
		log.Printf("reset: %v", err)
	}
	for i, s := range g.stamina {
		if err := g.world.SetMaxStamina(i, s); err != nil {
			log.Printf("player %d stamina: %v", i+1, err)
		}
	}
	g.screen = screenFight
	g.paused = false
}

// restart replays with the same life/stamina split.
func (g *Game) restart() {
	if err := g.world.Reset(true); err != nil {
		log.Printf("reset: %v", err)
	}
	g.paused = false
}

func (g *Game) backToMenu() {
	if err := g.world.Reset(false); err != nil {
		log.Printf("reset: %v", err)
	}
	g.paused = false
	g.screen = screenMenu
	g.menu.refresh(g)
}

func (g *Game) Update() error {
	g.frames++
	g.reloadPrefabs()

	switch g.screen {
	case screenMenu:
		g.menuUI.Update()
		return nil
	}

	over := g.world.Outcome() != system.Ongoing
	if over {
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.restart()
			return nil
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
			g.backToMenu()
			return nil
		}
	} else if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}

	if g.paused {
		g.pause.refresh(g)
		g.pauseUI.Update()
		return nil
	}

	// the survivor keeps moving after the match is decided
	g.world.Tick()
	if over {
		g.pause.refresh(g)
		g.pauseUI.Update()
	}
	return nil
}

func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		log.Printf("prefab watcher: %v", err)
	default:
	}
	for _, name := range g.watcher.Poll() {
		if err := g.applyPrefab(name); err != nil {
			log.Printf("hot reload %s: %v", name, err)
			continue
		}
		log.Printf("hot reloaded %s", name)
	}
}

func (g *Game) applyPrefab(name string) error {
	switch name {
	case prefabs.AIFile:
		spec, err := prefabs.LoadAISpec()
		if err != nil {
			return err
		}
		scheme, t := obj.AITuningFromSpec(spec)
		if scheme != g.ai.Scheme() {
			return fmt.Errorf("%w: %q", obj.ErrUnknownScheme, scheme)
		}
		g.ai.SetTuning(t)
	case prefabs.CombatantFile, prefabs.ArenaFile:
		cfg, err := system.LoadConfig()
		if err != nil {
			return err
		}
		arena, err := prefabs.LoadArenaSpec()
		if err != nil {
			return err
		}
		g.palette = paletteFromSpec(arena.Colors)
		g.world.SetConfig(cfg)
		if g.screen == screenFight {
			g.restart()
		}
	default:
		return errors.New("not a known prefab")
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.palette.background)

	switch g.screen {
	case screenMenu:
		g.menuUI.Draw(screen)
		return
	}

	g.drawArena(screen)
	g.drawHUD(screen)

	if g.world.Outcome() != system.Ongoing || g.paused {
		g.pauseUI.Draw(screen)
	}

	if g.debug {
		a, b := g.world.Combatant(0), g.world.Combatant(1)
		y := int(g.world.Config().ArenaHeight)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f  frame: %d", ebiten.ActualFPS(), g.world.Frame()), 0, y-60)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("P1 %s/%s onTop=%v", a.Motion(), a.Weapon(), a.OnTop), 0, y-40)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("P2 %s/%s onTop=%v", b.Motion(), b.Weapon(), b.OnTop), 0, y-20)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	cfg := g.world.Config()
	return cfg.ArenaWidth, cfg.ArenaHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
