package obj

import (
	"math/rand"
	"testing"

	"github.com/milk9111/boxshadow/common"
	"github.com/milk9111/boxshadow/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func newTestAI(t *testing.T) *AIController {
	t.Helper()
	ai, err := NewAIController(SchemeHeuristic, DefaultAITuning())
	require.NoError(t, err)
	return ai
}

// view builds a standing combatant snapshot with its left edge at x.
func view(x float64, facingLeft bool) CombatantView {
	return CombatantView{
		Body:        common.Rect{X: x, Y: 300, Width: 50, Height: 100},
		FacingLeft:  facingLeft,
		Life:        7,
		Stamina:     3,
		MaxStamina:  3,
		Grounded:    true,
		AttackReady: true,
	}
}

func TestNewAIControllerRejectsUnknownScheme(t *testing.T) {
	_, err := NewAIController("berserk", DefaultAITuning())
	require.ErrorIs(t, err, ErrUnknownScheme)
}

func TestAITuningFromSpec(t *testing.T) {
	spec, err := prefabs.LoadAISpec()
	require.NoError(t, err)
	scheme, tuning := AITuningFromSpec(spec)
	assert.Equal(t, SchemeHeuristic, scheme)
	assert.Equal(t, DefaultAITuning(), tuning)

	scheme, tuning = AITuningFromSpec(prefabs.AISpec{})
	assert.Equal(t, SchemeHeuristic, scheme)
	assert.True(t, tuning.JumpOverShield, "an absent key keeps the default")

	zero, off := 0, false
	_, tuning = AITuningFromSpec(prefabs.AISpec{ReactionFrames: &zero, JumpOverShield: &off})
	assert.Equal(t, 0, tuning.ReactionFrames)
	assert.False(t, tuning.JumpOverShield)
	assert.Equal(t, DefaultAITuning().RetreatLife, tuning.RetreatLife)
}

func TestAIDecisions(t *testing.T) {
	cases := []struct {
		name string
		self func() CombatantView
		opp  func() CombatantView
		want Intent
	}{
		{
			name: "approach",
			self: func() CombatantView { return view(100, false) },
			opp:  func() CombatantView { return view(600, true) },
			want: Intent{Right: true},
		},
		{
			name: "wait_for_stamina",
			self: func() CombatantView {
				v := view(100, false)
				v.Stamina = 1
				return v
			},
			opp:  func() CombatantView { return view(600, true) },
			want: Intent{},
		},
		{
			name: "shield_against_swing",
			self: func() CombatantView { return view(100, false) },
			opp: func() CombatantView {
				v := view(200, true)
				v.Weapon = WeaponSword
				return v
			},
			want: Intent{Shield: true},
		},
		{
			name: "no_shield_when_empty",
			self: func() CombatantView {
				v := view(100, false)
				v.Stamina = 0
				return v
			},
			opp: func() CombatantView {
				v := view(230, true)
				v.Weapon = WeaponSword
				return v
			},
			want: Intent{Right: true},
		},
		{
			name: "swing_in_reach",
			self: func() CombatantView { return view(100, false) },
			opp:  func() CombatantView { return view(180, true) },
			want: Intent{Sword: true},
		},
		{
			name: "turn_before_swing",
			self: func() CombatantView { return view(100, true) },
			opp:  func() CombatantView { return view(180, true) },
			want: Intent{Right: true},
		},
		{
			name: "hold_while_opponent_invincible",
			self: func() CombatantView { return view(100, false) },
			opp: func() CombatantView {
				v := view(180, true)
				v.Invincible = true
				return v
			},
			want: Intent{},
		},
		{
			name: "downstrike_from_above",
			self: func() CombatantView {
				v := view(110, false)
				v.Body.Y = 100
				v.Grounded = false
				v.Motion = MotionJumping
				return v
			},
			opp:  func() CombatantView { return view(100, true) },
			want: Intent{Down: true},
		},
		{
			name: "retreat_when_losing",
			self: func() CombatantView {
				v := view(400, false)
				v.Life = 2
				return v
			},
			opp:  func() CombatantView { return view(800, true) },
			want: Intent{Left: true},
		},
		{
			name: "jump_over_shield",
			self: func() CombatantView { return view(100, false) },
			opp: func() CombatantView {
				v := view(250, true)
				v.Weapon = WeaponShield
				return v
			},
			want: Intent{Right: true, Jump: true},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ai := newTestAI(t)
			got, ok := ai.NextIntent(c.self(), c.opp())
			require.True(t, ok)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestAIReactionDelay(t *testing.T) {
	ai := newTestAI(t)
	self, opp := view(100, false), view(180, true)

	in, ok := ai.NextIntent(self, opp)
	require.True(t, ok)
	require.True(t, in.Sword)

	// one-shot presses are not repeated while waiting
	for i := 0; i < DefaultAITuning().ReactionFrames; i++ {
		in, ok = ai.NextIntent(self, opp)
		require.True(t, ok)
		assert.Equal(t, Intent{}, in)
	}

	in, _ = ai.NextIntent(self, opp)
	assert.True(t, in.Sword)
}

func TestAIHoldsMovementThroughDelay(t *testing.T) {
	ai := newTestAI(t)
	self, opp := view(100, false), view(600, true)

	in, _ := ai.NextIntent(self, opp)
	require.Equal(t, Intent{Right: true}, in)

	// the opponent swinging is not noticed until the next decision
	opp.Weapon = WeaponSword
	in, _ = ai.NextIntent(self, opp)
	assert.Equal(t, Intent{Right: true}, in)

	ai.Reset()
	self.Body.X = 500
	in, _ = ai.NextIntent(self, opp)
	assert.Equal(t, Intent{Shield: true}, in)
}

func TestAINoOverride(t *testing.T) {
	ai := newTestAI(t)

	self, opp := view(100, false), view(600, true)
	self.Motion = MotionKnockback
	_, ok := ai.NextIntent(self, opp)
	assert.False(t, ok)

	self.Motion = MotionIdle
	opp.Defeated = true
	_, ok = ai.NextIntent(self, opp)
	assert.False(t, ok)

	var nilAI *AIController
	_, ok = nilAI.NextIntent(self, opp)
	assert.False(t, ok)
}

func TestAIIntentsAreWellFormed(t *testing.T) {
	rng := testRNG()
	ai := newTestAI(t)
	motions := []Motion{MotionIdle, MotionMoving, MotionJumping, MotionDashing, MotionDownstriking}
	weapons := []Weapon{WeaponNone, WeaponSword, WeaponShield}

	randomView := func() CombatantView {
		v := view(rng.Float64()*910, rng.Intn(2) == 0)
		v.Body.Y = 100 + rng.Float64()*200
		v.Grounded = v.Body.Y >= 300
		v.Life = 1 + rng.Intn(9)
		v.MaxStamina = 10 - v.Life
		v.Stamina = rng.Intn(v.MaxStamina + 1)
		v.Motion = motions[rng.Intn(len(motions))]
		v.Weapon = weapons[rng.Intn(len(weapons))]
		v.Invincible = rng.Intn(4) == 0
		v.AttackReady = rng.Intn(2) == 0
		return v
	}

	for i := 0; i < 5000; i++ {
		in, ok := ai.NextIntent(randomView(), randomView())
		if !ok {
			continue
		}
		assert.False(t, in.Left && in.Right, "tick %d: left and right together", i)
		assert.LessOrEqual(t, in.Actions(), 1, "tick %d: %+v", i, in)
	}
}
