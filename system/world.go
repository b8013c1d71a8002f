package system

import (
	"errors"
	"fmt"

	"github.com/milk9111/boxshadow/common"
	"github.com/milk9111/boxshadow/component"
	"github.com/milk9111/boxshadow/obj"
	"github.com/milk9111/boxshadow/prefabs"
)

var (
	ErrMatchInProgress = errors.New("system: max stamina can only change before the first tick")
	ErrInvalidStamina  = errors.New("system: max stamina out of range")
	ErrNoCombatant     = errors.New("system: no such combatant")
)

// Config describes the arena and the fighters' tuning.
type Config struct {
	ArenaWidth  float64
	ArenaHeight float64
	GroundRatio float64
	// SpawnInset is the distance from each side wall to the nearest edge of
	// the combatant spawned there.
	SpawnInset float64
	// EdgeTolerance is the on-top band in logical units, scaled by Scale.
	EdgeTolerance float64
	Scale         common.Scaler
	Tuning        obj.Tuning
}

func DefaultConfig() Config {
	return Config{
		ArenaWidth:    common.BaseWidth,
		ArenaHeight:   common.BaseHeight,
		GroundRatio:   common.GroundRatio,
		SpawnInset:    180,
		EdgeTolerance: DefaultEdgeTolerance,
		Scale:         common.Unscaled,
		Tuning:        obj.DefaultTuning(),
	}
}

// ConfigFromSpecs builds a Config from the combatant and arena prefabs. Unset
// arena fields keep their defaults.
func ConfigFromSpecs(combatant prefabs.CombatantSpec, arena prefabs.ArenaSpec) Config {
	cfg := DefaultConfig()
	cfg.Tuning = obj.TuningFromSpec(combatant)
	if arena.Width > 0 {
		cfg.ArenaWidth = arena.Width
	}
	if arena.Height > 0 {
		cfg.ArenaHeight = arena.Height
	}
	if arena.GroundRatio > 0 && arena.GroundRatio <= 1 {
		cfg.GroundRatio = arena.GroundRatio
	}
	if arena.SpawnInset > 0 {
		cfg.SpawnInset = arena.SpawnInset
	}
	if arena.EdgeTolerance > 0 {
		cfg.EdgeTolerance = arena.EdgeTolerance
	}
	return cfg
}

// LoadConfig reads combatant.yaml and arena.yaml.
func LoadConfig() (Config, error) {
	combatant, err := prefabs.LoadCombatantSpec()
	if err != nil {
		return Config{}, err
	}
	arena, err := prefabs.LoadArenaSpec()
	if err != nil {
		return Config{}, err
	}
	return ConfigFromSpecs(combatant, arena), nil
}

// Ground is the y of the ground line.
func (c Config) Ground() float64 {
	return c.ArenaHeight * c.GroundRatio
}

// World owns both combatants, the match lifecycle and the tick's event queue.
type World struct {
	cfg        Config
	combatants [2]*obj.Combatant
	inputs     [2]obj.InputSource
	maxStamina [2]int

	events   component.EventQueue
	emitter  component.CombatEventEmitter
	resolver *CollisionResolver
	match    *Match
	frame    int
}

// NewWorld spawns player 1 on the left facing right and player 2 on the
// right facing left.
func NewWorld(cfg Config) *World {
	if cfg.Scale == nil {
		cfg.Scale = common.Unscaled
	}
	w := &World{cfg: cfg, match: NewMatch()}
	w.resolver = NewCollisionResolver(cfg.Scale(cfg.EdgeTolerance), &w.events)
	w.maxStamina = [2]int{cfg.Tuning.MaxStamina, cfg.Tuning.MaxStamina}
	w.spawn()
	return w
}

func (w *World) spawn() {
	cfg := w.cfg
	ground := cfg.Ground()
	for i := range w.combatants {
		t := cfg.Tuning
		t.MaxStamina = w.maxStamina[i]
		x := cfg.SpawnInset
		facingLeft := i == 1
		if facingLeft {
			x = cfg.ArenaWidth - cfg.SpawnInset - t.Width
		}
		w.combatants[i] = obj.NewCombatant(i+1, x, ground, facingLeft, t, &w.events)
	}
}

func (w *World) Config() Config {
	return w.cfg
}

// SetConfig replaces the tuning used by the next Reset.
func (w *World) SetConfig(cfg Config) {
	if w == nil {
		return
	}
	if cfg.Scale == nil {
		cfg.Scale = common.Unscaled
	}
	w.cfg = cfg
	w.resolver.EdgeTolerance = cfg.Scale(cfg.EdgeTolerance)
}

// SetInput assigns the intent source for combatant idx (0 or 1).
func (w *World) SetInput(idx int, src obj.InputSource) error {
	if w == nil || idx < 0 || idx >= len(w.inputs) {
		return fmt.Errorf("%w: %d", ErrNoCombatant, idx)
	}
	w.inputs[idx] = src
	return nil
}

// Combatant returns combatant idx (0 or 1), or nil.
func (w *World) Combatant(idx int) *obj.Combatant {
	if w == nil || idx < 0 || idx >= len(w.combatants) {
		return nil
	}
	return w.combatants[idx]
}

func (w *World) Outcome() Outcome {
	if w == nil {
		return Ongoing
	}
	return w.match.Outcome()
}

func (w *World) Frame() int {
	if w == nil {
		return 0
	}
	return w.frame
}

// Emitter receives every event produced by Tick.
func (w *World) Emitter() *component.CombatEventEmitter {
	if w == nil {
		return nil
	}
	return &w.emitter
}

// SetMaxStamina changes a combatant's life/stamina split. It is only allowed
// before the first tick of a match.
func (w *World) SetMaxStamina(idx, value int) error {
	if w == nil || idx < 0 || idx >= len(w.combatants) {
		return fmt.Errorf("%w: %d", ErrNoCombatant, idx)
	}
	if w.frame > 0 {
		return ErrMatchInProgress
	}
	if value < 0 || value >= common.LifeBudget {
		return fmt.Errorf("%w: %d", ErrInvalidStamina, value)
	}
	w.maxStamina[idx] = value
	w.combatants[idx].SetMaxStamina(value)
	return nil
}

// Reset starts a new match. With preserveMaxStamina the per-combatant
// life/stamina split is kept, otherwise it returns to the configured one.
func (w *World) Reset(preserveMaxStamina bool) error {
	if w == nil {
		return nil
	}
	if !preserveMaxStamina {
		w.maxStamina = [2]int{w.cfg.Tuning.MaxStamina, w.cfg.Tuning.MaxStamina}
	}
	if err := w.match.Reset(); err != nil {
		return err
	}
	w.frame = 0
	w.events.Drain()
	w.spawn()
	for _, src := range w.inputs {
		if r, ok := src.(obj.Resetter); ok {
			r.Reset()
		}
	}
	return nil
}

// Tick advances the simulation one frame and returns the events it raised.
// Order: intents, timers and velocity, collisions, movement, terminal check.
func (w *World) Tick() []component.CombatEvent {
	if w == nil {
		return nil
	}
	w.frame++
	a, b := w.combatants[0], w.combatants[1]

	// both intents are read from the same pre-tick snapshot
	va, vb := a.View(), b.View()
	ia := w.intent(0, va, vb)
	ib := w.intent(1, vb, va)
	a.HandleInput(ia)
	b.HandleInput(ib)

	a.Update()
	b.Update()

	w.resolver.Resolve(w.frame, a, b)

	a.Move(w.cfg.ArenaWidth)
	b.Move(w.cfg.ArenaWidth)

	w.checkOutcome()

	evts := w.events.Drain()
	for _, evt := range evts {
		w.emitter.Emit(evt)
	}
	return evts
}

func (w *World) intent(idx int, self, opponent obj.CombatantView) obj.Intent {
	src := w.inputs[idx]
	if src == nil {
		return obj.Intent{}
	}
	in, ok := src.NextIntent(self, opponent)
	if !ok {
		return obj.Intent{}
	}
	return in
}

func (w *World) checkOutcome() {
	if w.match.Over() {
		return
	}
	a, b := w.combatants[0], w.combatants[1]
	aDown, bDown := a.Life() <= 0, b.Life() <= 0

	var outcome Outcome
	switch {
	case aDown && bDown:
		outcome = Draw
	case aDown:
		outcome = Player2Win
	case bDown:
		outcome = Player1Win
	default:
		return
	}
	// Finish cannot fail here: the match was ongoing a moment ago.
	_ = w.match.Finish(outcome)

	if aDown {
		w.defeat(a, b)
	}
	if bDown {
		w.defeat(b, a)
	}
}

func (w *World) defeat(loser, winner *obj.Combatant) {
	loser.SetDefeated(true)
	body := loser.Body()
	w.events.Push(component.CombatEvent{
		Type:       component.EventCombatantDefeated,
		AttackerID: winner.ID,
		TargetID:   loser.ID,
		Frame:      w.frame,
		PosX:       body.CenterX(),
		PosY:       body.CenterY(),
	})
}
