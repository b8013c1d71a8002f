package obj

import (
	"errors"
	"fmt"
	"math"

	"github.com/milk9111/boxshadow/prefabs"
)

// SchemeHeuristic is the only built-in decision scheme.
const SchemeHeuristic = "heuristic"

var ErrUnknownScheme = errors.New("obj: unknown ai scheme")

// AITuning holds the decision thresholds. Distances are gaps between the two
// bodies in logical units.
type AITuning struct {
	ReactionFrames int
	EngageDistance float64
	AttackReach    float64
	ShieldDistance float64
	RetreatLife    int
	RetreatStamina int
	JumpOverShield bool
}

func DefaultAITuning() AITuning {
	return AITuning{
		ReactionFrames: 8,
		EngageDistance: 260,
		AttackReach:    55,
		ShieldDistance: 90,
		RetreatLife:    2,
		RetreatStamina: 1,
		JumpOverShield: true,
	}
}

// AITuningFromSpec returns the scheme name and thresholds from spec, with
// absent or zero distances taken from DefaultAITuning.
func AITuningFromSpec(spec prefabs.AISpec) (string, AITuning) {
	t := DefaultAITuning()
	setIP(&t.ReactionFrames, spec.ReactionFrames)
	setF(&t.EngageDistance, spec.EngageDistance)
	setF(&t.AttackReach, spec.AttackReach)
	setF(&t.ShieldDistance, spec.ShieldDistance)
	setIP(&t.RetreatLife, spec.RetreatLife)
	setIP(&t.RetreatStamina, spec.RetreatStamina)
	if spec.JumpOverShield != nil {
		t.JumpOverShield = *spec.JumpOverShield
	}
	scheme := spec.Scheme
	if scheme == "" {
		scheme = SchemeHeuristic
	}
	return scheme, t
}

// AIController drives a combatant by producing the same intents a keyboard
// would. Its only memory is the reaction countdown and the intent it is
// holding through it.
type AIController struct {
	scheme   string
	tuning   AITuning
	cooldown int
	last     Intent
}

func NewAIController(scheme string, t AITuning) (*AIController, error) {
	if scheme != SchemeHeuristic {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}
	if t.ReactionFrames < 0 {
		t.ReactionFrames = 0
	}
	return &AIController{scheme: scheme, tuning: t}, nil
}

func (a *AIController) Scheme() string {
	if a == nil {
		return ""
	}
	return a.scheme
}

// SetTuning swaps thresholds, e.g. after a hot reload.
func (a *AIController) SetTuning(t AITuning) {
	if a == nil {
		return
	}
	a.tuning = t
}

func (a *AIController) Reset() {
	if a == nil {
		return
	}
	a.cooldown = 0
	a.last = Intent{}
}

// NextIntent re-evaluates every tick. Between decisions it keeps holding the
// continuous keys (movement, shield) of the last one; one-shot presses are
// never repeated.
func (a *AIController) NextIntent(self, opponent CombatantView) (Intent, bool) {
	if a == nil || self.Defeated || opponent.Defeated {
		return Intent{}, false
	}
	if self.Motion == MotionKnockback {
		a.cooldown = 0
		a.last = Intent{}
		return Intent{}, false
	}
	if a.cooldown > 0 {
		a.cooldown--
		return a.held(), true
	}
	in := a.decide(self, opponent)
	a.last = in
	a.cooldown = a.tuning.ReactionFrames
	return in, true
}

func (a *AIController) held() Intent {
	return Intent{Left: a.last.Left, Right: a.last.Right, Shield: a.last.Shield}
}

func (a *AIController) decide(self, opp CombatantView) Intent {
	t := a.tuning
	dx := opp.Body.CenterX() - self.Body.CenterX()
	gap := math.Abs(dx) - (self.Body.Width+opp.Body.Width)/2
	toward := Intent{Left: dx < 0, Right: dx > 0}
	away := Intent{Left: dx > 0, Right: dx < 0}
	facingOpp := dx == 0 || self.FacingLeft == (dx < 0)

	// blocking only works while facing the swing
	if opp.Weapon == WeaponSword && gap <= t.ShieldDistance && facingOpp &&
		self.Stamina > 0 && WeaponAllowed(self.Motion, WeaponShield) {
		return Intent{Shield: true}
	}

	if !self.Supported() && self.Motion != MotionDownstriking &&
		self.Body.Bottom() <= opp.Body.Y && math.Abs(dx) < opp.Body.Width {
		return Intent{Down: true}
	}

	if self.Life <= t.RetreatLife && self.Life < opp.Life {
		in := away
		if gap <= t.AttackReach && self.Supported() && self.Stamina > t.RetreatStamina {
			in.Jump = true
		}
		return in
	}

	if t.JumpOverShield && opp.Weapon == WeaponShield && gap <= t.EngageDistance/2 &&
		self.Supported() && self.Stamina > 0 {
		in := toward
		in.Jump = true
		return in
	}

	if gap <= t.AttackReach {
		if !facingOpp {
			return toward
		}
		if self.AttackReady && !opp.Invincible {
			return Intent{Sword: true}
		}
		return Intent{}
	}

	if gap > t.EngageDistance && self.Stamina < self.MaxStamina {
		// out of range: wait for stamina to come back
		return Intent{}
	}
	return toward
}
