package system

import (
	"math/rand"
	"testing"

	"github.com/milk9111/boxshadow/component"
	"github.com/milk9111/boxshadow/obj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func TestNewWorldSpawn(t *testing.T) {
	w := NewWorld(DefaultConfig())
	a, b := w.Combatant(0), w.Combatant(1)
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.Nil(t, w.Combatant(2))

	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)
	assert.Equal(t, 180.0, a.Pos.X)
	assert.Equal(t, 730.0, b.Pos.X)
	assert.False(t, a.FacingLeft)
	assert.True(t, b.FacingLeft)
	assert.InDelta(t, w.Config().Ground(), a.Body().Bottom(), 1e-9)
	assert.Equal(t, 7, a.Life())
	assert.Equal(t, 3, b.Stamina())
	assert.Equal(t, Ongoing, w.Outcome())
	assert.Equal(t, 0, w.Frame())
}

func TestLoadConfigMatchesDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	def := DefaultConfig()
	assert.Equal(t, def.ArenaWidth, cfg.ArenaWidth)
	assert.Equal(t, def.ArenaHeight, cfg.ArenaHeight)
	assert.Equal(t, def.GroundRatio, cfg.GroundRatio)
	assert.Equal(t, def.SpawnInset, cfg.SpawnInset)
	assert.Equal(t, def.EdgeTolerance, cfg.EdgeTolerance)
	assert.Equal(t, def.Tuning, cfg.Tuning)
}

// glassWorld returns a world where both combatants die to a single hit,
// standing within sword reach of each other.
func glassWorld(t *testing.T) *World {
	t.Helper()
	w := NewWorld(DefaultConfig())
	require.NoError(t, w.SetMaxStamina(0, 9))
	require.NoError(t, w.SetMaxStamina(1, 9))
	w.Combatant(0).Pos.X = 400
	w.Combatant(1).Pos.X = 470
	return w
}

func TestTerminalOutcomes(t *testing.T) {
	swing := obj.StaticInput{Sword: true}
	cases := []struct {
		name    string
		p1, p2  obj.InputSource
		outcome Outcome
	}{
		{"player2_wins", nil, swing, Player2Win},
		{"player1_wins", swing, nil, Player1Win},
		{"draw", swing, swing, Draw},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := glassWorld(t)
			require.NoError(t, w.SetInput(0, c.p1))
			require.NoError(t, w.SetInput(1, c.p2))

			evts := w.Tick()
			assert.Equal(t, c.outcome, w.Outcome())

			defeated := 0
			for _, evt := range evts {
				if evt.Type == component.EventCombatantDefeated {
					defeated++
				}
			}
			want := 1
			if c.outcome == Draw {
				want = 2
			}
			assert.Equal(t, want, defeated)

			// the decision sticks while the world keeps running
			for i := 0; i < 60; i++ {
				w.Tick()
			}
			assert.Equal(t, c.outcome, w.Outcome())
		})
	}
}

func TestDefeatedCombatantStaysDown(t *testing.T) {
	w := glassWorld(t)
	require.NoError(t, w.SetInput(0, obj.StaticInput{Right: true, Jump: true}))
	require.NoError(t, w.SetInput(1, obj.StaticInput{Sword: true}))

	w.Tick()
	require.Equal(t, Player2Win, w.Outcome())
	a := w.Combatant(0)
	assert.True(t, a.Defeated)
	assert.Equal(t, 0, a.Life())

	for i := 0; i < 120; i++ {
		w.Tick()
	}
	assert.True(t, a.Grounded())
	assert.Equal(t, obj.MotionIdle, a.Motion())
	assert.Equal(t, 0, a.Life())
}

func TestSetMaxStamina(t *testing.T) {
	w := NewWorld(DefaultConfig())

	assert.ErrorIs(t, w.SetMaxStamina(0, 10), ErrInvalidStamina)
	assert.ErrorIs(t, w.SetMaxStamina(0, -1), ErrInvalidStamina)
	assert.ErrorIs(t, w.SetMaxStamina(2, 3), ErrNoCombatant)

	require.NoError(t, w.SetMaxStamina(0, 0))
	require.NoError(t, w.SetMaxStamina(1, 6))
	assert.Equal(t, 10, w.Combatant(0).Life())
	assert.Equal(t, 4, w.Combatant(1).Life())
	assert.Equal(t, 6, w.Combatant(1).Stamina())

	w.Tick()
	assert.ErrorIs(t, w.SetMaxStamina(0, 3), ErrMatchInProgress)

	require.NoError(t, w.Reset(true))
	assert.NoError(t, w.SetMaxStamina(0, 3))
}

func TestResetKeepsOrRestoresSplit(t *testing.T) {
	w := glassWorld(t)
	require.NoError(t, w.SetInput(1, obj.StaticInput{Sword: true}))
	w.Tick()
	require.Equal(t, Player2Win, w.Outcome())

	require.NoError(t, w.Reset(true))
	assert.Equal(t, Ongoing, w.Outcome())
	assert.Equal(t, 0, w.Frame())
	for i := 0; i < 2; i++ {
		c := w.Combatant(i)
		assert.Equal(t, 9, c.MaxStamina())
		assert.Equal(t, 1, c.Life())
		assert.False(t, c.Defeated)
	}
	assert.Equal(t, 180.0, w.Combatant(0).Pos.X, "back at the spawn point")

	require.NoError(t, w.Reset(false))
	for i := 0; i < 2; i++ {
		c := w.Combatant(i)
		assert.Equal(t, 3, c.MaxStamina())
		assert.Equal(t, 7, c.Life())
		assert.Equal(t, 10, c.Life()+c.MaxStamina())
	}
}

func TestResetRewindsScriptedInput(t *testing.T) {
	w := NewWorld(DefaultConfig())
	script := &obj.ScriptedInput{Steps: []obj.Intent{{Right: true}, {Right: true}}}
	require.NoError(t, w.SetInput(0, script))

	w.Tick()
	w.Tick()
	w.Tick()
	moved := w.Combatant(0).Pos.X - 180
	assert.Equal(t, 10.0, moved)

	require.NoError(t, w.Reset(true))
	w.Tick()
	assert.Equal(t, 185.0, w.Combatant(0).Pos.X)
}

func TestEmitterSeesTickEvents(t *testing.T) {
	w := glassWorld(t)
	require.NoError(t, w.SetInput(0, obj.StaticInput{Sword: true}))

	var seen []component.CombatEvent
	w.Emitter().Subscribe(func(evt component.CombatEvent) {
		seen = append(seen, evt)
	})

	evts := w.Tick()
	require.NotEmpty(t, evts)
	assert.Equal(t, evts, seen)
	for _, evt := range evts {
		assert.Equal(t, 1, evt.Frame)
	}
}

func TestSetInputBounds(t *testing.T) {
	w := NewWorld(DefaultConfig())
	assert.ErrorIs(t, w.SetInput(-1, nil), ErrNoCombatant)
	assert.ErrorIs(t, w.SetInput(2, nil), ErrNoCombatant)
}

func TestRandomPlayHoldsInvariants(t *testing.T) {
	rng := testRNG()
	w := NewWorld(DefaultConfig())
	cfg := w.Config()

	random := obj.InputFunc(func(self, opponent obj.CombatantView) (obj.Intent, bool) {
		if rng.Intn(10) == 0 {
			return obj.Intent{}, false
		}
		return obj.Intent{
			Left:   rng.Intn(3) == 0,
			Right:  rng.Intn(3) == 0,
			Jump:   rng.Intn(8) == 0,
			Down:   rng.Intn(8) == 0,
			Sword:  rng.Intn(6) == 0,
			Shield: rng.Intn(6) == 0,
		}, true
	})
	require.NoError(t, w.SetInput(0, random))
	require.NoError(t, w.SetInput(1, random))

	lastLife := [2]int{w.Combatant(0).Life(), w.Combatant(1).Life()}
	finished := 0
	for tick := 0; tick < 20000; tick++ {
		w.Tick()

		for i := 0; i < 2; i++ {
			c := w.Combatant(i)
			body := c.Body()
			assert.LessOrEqual(t, body.Bottom(), cfg.Ground()+1e-9, "tick %d: below ground", tick)
			assert.GreaterOrEqual(t, body.X, 0.0, "tick %d: left wall", tick)
			assert.LessOrEqual(t, body.Right(), cfg.ArenaWidth, "tick %d: right wall", tick)
			assert.True(t, obj.WeaponAllowed(c.Motion(), c.Weapon()), "tick %d: %s with %s", tick, c.Motion(), c.Weapon())
			assert.GreaterOrEqual(t, c.Stamina(), 0)
			assert.LessOrEqual(t, c.Stamina(), c.MaxStamina())
			assert.GreaterOrEqual(t, c.Life(), 0)
			assert.LessOrEqual(t, c.Life(), lastLife[i], "tick %d: life went up", tick)
			lastLife[i] = c.Life()
		}

		if w.Outcome() == Ongoing {
			assert.Positive(t, w.Combatant(0).Life())
			assert.Positive(t, w.Combatant(1).Life())
			continue
		}
		finished++
		require.NoError(t, w.Reset(false))
		lastLife = [2]int{w.Combatant(0).Life(), w.Combatant(1).Life()}
	}
	t.Logf("%d matches finished", finished)
}

func TestNilWorldIsSafe(t *testing.T) {
	var w *World
	assert.Nil(t, w.Tick())
	assert.Equal(t, Ongoing, w.Outcome())
	assert.NoError(t, w.Reset(true))
	assert.Nil(t, w.Combatant(0))
}
