package component

import "github.com/milk9111/boxshadow/common"

// HitboxKind identifies which weapon box a combatant is exposing.
type HitboxKind int

const (
	HitboxNone HitboxKind = iota
	HitboxSword
	HitboxShield
	HitboxDownstrike
)

func (k HitboxKind) String() string {
	switch k {
	case HitboxSword:
		return "sword"
	case HitboxShield:
		return "shield"
	case HitboxDownstrike:
		return "downstrike"
	}
	return "none"
}

// Hitbox is the single weapon box a combatant exposes this frame.
type Hitbox struct {
	Kind    HitboxKind
	Rect    common.Rect
	OwnerID int
}

// Active reports whether the box takes part in collisions.
func (h Hitbox) Active() bool {
	return h.Kind != HitboxNone && !h.Rect.Empty()
}

// Is reports whether the box is active and of kind k.
func (h Hitbox) Is(k HitboxKind) bool {
	return h.Kind == k && h.Active()
}
