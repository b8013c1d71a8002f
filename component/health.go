package component

import "github.com/milk9111/boxshadow/common"

// Health is a combatant's life pool.
type Health struct {
	Max     int
	Current int
	IFrames int
}

// NewHealth creates a Health with max/current initialized.
func NewHealth(max int) Health {
	max = common.ClampInt(max, 0, common.LifeBudget)
	return Health{Max: max, Current: max}
}

// IsAlive reports whether any life remains.
func (h *Health) IsAlive() bool {
	return h != nil && h.Current > 0
}

// Invincible reports whether i-frames are running.
func (h *Health) Invincible() bool {
	return h != nil && h.IFrames > 0
}

// ApplyDamage applies damage if not in i-frames. Returns true if damage was
// applied.
func (h *Health) ApplyDamage(amount int) bool {
	if h == nil || h.IFrames > 0 || amount <= 0 {
		return false
	}
	h.Current = common.ClampInt(h.Current-amount, 0, common.LifeBudget)
	return true
}

// StartIFrames sets invulnerability frames.
func (h *Health) StartIFrames(frames int) {
	if h == nil || frames <= 0 {
		return
	}
	h.IFrames = frames
}

// Tick advances the i-frame timer by one frame.
func (h *Health) Tick() {
	if h == nil || h.IFrames <= 0 {
		return
	}
	h.IFrames--
}

// Stamina is the resource spent on jumps, dashes and shielding.
type Stamina struct {
	Max     int
	Current int
}

// NewStamina creates a full Stamina pool.
func NewStamina(max int) Stamina {
	max = common.ClampInt(max, 0, common.LifeBudget)
	return Stamina{Max: max, Current: max}
}

// Spend deducts cost if enough stamina remains. Returns false, leaving the
// pool untouched, when it does not.
func (s *Stamina) Spend(cost int) bool {
	if s == nil || cost < 0 || s.Current < cost {
		return false
	}
	s.Current -= cost
	return true
}

// Restore adds amount, capped at Max.
func (s *Stamina) Restore(amount int) {
	if s == nil || amount <= 0 {
		return
	}
	s.Current = common.ClampInt(s.Current+amount, 0, s.Max)
}

// Zero empties the pool.
func (s *Stamina) Zero() {
	if s == nil {
		return
	}
	s.Current = 0
}

// Empty reports whether no stamina remains.
func (s *Stamina) Empty() bool {
	return s == nil || s.Current <= 0
}

// Full reports whether the pool is at Max.
func (s *Stamina) Full() bool {
	return s != nil && s.Current >= s.Max
}
