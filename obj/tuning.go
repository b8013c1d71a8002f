package obj

import "github.com/milk9111/boxshadow/prefabs"

// Tuning holds the per-combatant gameplay constants. Speeds are logical
// units per tick; durations are ticks.
type Tuning struct {
	Width  float64
	Height float64

	Speed        float64
	Gravity      float64
	MaxFallSpeed float64

	JumpSpeed float64
	JumpCost  int

	DashMultiplier   float64
	DashFrames       int
	DashWindowFrames int
	DashCost         int

	DownstrikeSpeed  float64
	DownstrikeFrames int

	AttackActiveFrames   int
	AttackRecoveryFrames int

	ShieldDrainFrames  int
	StaminaRegenFrames int

	KnockbackSpeed    float64
	KnockbackLift     float64
	KnockbackFriction float64
	KnockbackFrames   int
	InvincibleFrames  int

	MaxStamina int

	SwordWidth       float64
	SwordHeight      float64
	SwordOffsetY     float64
	ShieldWidth      float64
	ShieldHeight     float64
	DownstrikeHeight float64
}

// DefaultTuning returns the built-in tuning used when no prefab overrides it.
func DefaultTuning() Tuning {
	return Tuning{
		Width:  50,
		Height: 100,

		Speed:        5,
		Gravity:      1,
		MaxFallSpeed: 20,

		JumpSpeed: 18,
		JumpCost:  1,

		DashMultiplier:   3,
		DashFrames:       10,
		DashWindowFrames: 15,
		DashCost:         1,

		DownstrikeSpeed:  22,
		DownstrikeFrames: 30,

		AttackActiveFrames:   12,
		AttackRecoveryFrames: 20,

		ShieldDrainFrames:  30,
		StaminaRegenFrames: 90,

		KnockbackSpeed:    15,
		KnockbackLift:     6,
		KnockbackFriction: 1,
		KnockbackFrames:   20,
		InvincibleFrames:  40,

		MaxStamina: 3,

		SwordWidth:       60,
		SwordHeight:      14,
		SwordOffsetY:     35,
		ShieldWidth:      15,
		ShieldHeight:     80,
		DownstrikeHeight: 30,
	}
}

// TuningFromSpec overlays spec onto DefaultTuning. Zero values and absent
// optional keys keep the default.
func TuningFromSpec(spec prefabs.CombatantSpec) Tuning {
	t := DefaultTuning()

	setF(&t.Width, spec.Body.Width)
	setF(&t.Height, spec.Body.Height)

	setF(&t.Speed, spec.Movement.Speed)
	setF(&t.Gravity, spec.Movement.Gravity)
	setF(&t.MaxFallSpeed, spec.Movement.MaxFallSpeed)
	setF(&t.JumpSpeed, spec.Movement.JumpSpeed)

	setF(&t.DashMultiplier, spec.Dash.Multiplier)
	setI(&t.DashFrames, spec.Dash.Frames)
	setI(&t.DashWindowFrames, spec.Dash.WindowFrames)
	setIP(&t.DashCost, spec.Dash.Cost)

	setF(&t.DownstrikeSpeed, spec.Downstrike.Speed)
	setI(&t.DownstrikeFrames, spec.Downstrike.Frames)
	setF(&t.DownstrikeHeight, spec.Downstrike.Height)

	setF(&t.SwordWidth, spec.Sword.Width)
	setF(&t.SwordHeight, spec.Sword.Height)
	setF(&t.SwordOffsetY, spec.Sword.OffsetY)
	setI(&t.AttackActiveFrames, spec.Sword.ActiveFrames)
	setI(&t.AttackRecoveryFrames, spec.Sword.RecoveryFrames)

	setF(&t.ShieldWidth, spec.Shield.Width)
	setF(&t.ShieldHeight, spec.Shield.Height)
	setI(&t.ShieldDrainFrames, spec.Shield.DrainFrames)

	setIP(&t.MaxStamina, spec.Stamina.Max)
	setI(&t.StaminaRegenFrames, spec.Stamina.RegenFrames)
	setIP(&t.JumpCost, spec.Stamina.JumpCost)

	setF(&t.KnockbackSpeed, spec.Knockback.Speed)
	setF(&t.KnockbackLift, spec.Knockback.Lift)
	setF(&t.KnockbackFriction, spec.Knockback.Friction)
	setI(&t.KnockbackFrames, spec.Knockback.Frames)
	setI(&t.InvincibleFrames, spec.Knockback.InvincibleFrames)

	return t
}

func setF(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}

func setI(dst *int, v int) {
	if v > 0 {
		*dst = v
	}
}

// setIP overlays an optional count where zero is meaningful.
func setIP(dst *int, v *int) {
	if v != nil && *v >= 0 {
		*dst = *v
	}
}
