package system

import (
	"math"

	"github.com/milk9111/boxshadow/common"
	"github.com/milk9111/boxshadow/component"
	"github.com/milk9111/boxshadow/obj"
)

// DefaultEdgeTolerance is the logical band used to decide that one body
// rests on top of the other.
const DefaultEdgeTolerance = 30

// CollisionResolver adjudicates the interactions between the two combatants
// for a single tick. It keeps no state between ticks.
type CollisionResolver struct {
	// EdgeTolerance is already scaled to arena units.
	EdgeTolerance float64
	Events        *component.EventQueue
	frame         int
}

// NewCollisionResolver builds a resolver with an already scaled on-top band.
func NewCollisionResolver(edgeTolerance float64, events *component.EventQueue) *CollisionResolver {
	if edgeTolerance <= 0 {
		edgeTolerance = DefaultEdgeTolerance
	}
	return &CollisionResolver{
		EdgeTolerance: edgeTolerance,
		Events:        events,
	}
}

// Resolve runs the weapon, downstrike and body passes in that order. Later
// passes rely on velocities already zeroed by earlier ones.
func (r *CollisionResolver) Resolve(frame int, a, b *obj.Combatant) {
	if r == nil || a == nil || b == nil {
		return
	}
	r.frame = frame

	// boxes are read once so a hit landing first cannot cancel the reply
	boxA, boxB := a.Hitbox(), b.Hitbox()

	r.resolveWeapon(a, b, boxA, boxB)
	r.resolveWeapon(b, a, boxB, boxA)

	r.resolveDownstrike(a, b, boxA)
	r.resolveDownstrike(b, a, boxB)

	r.resolveBodies(a, b)
}

// resolveWeapon adjudicates one sword against the other combatant. A
// defender already in knockback is neither hit nor blocked again: a stagger
// grants no i-frames and the same swing is still out on the next ticks.
func (r *CollisionResolver) resolveWeapon(attacker, defender *obj.Combatant, sword, shield component.Hitbox) {
	if attacker.Defeated || defender.Defeated || !sword.Is(component.HitboxSword) {
		return
	}
	if defender.InKnockback() {
		return
	}
	onShield := shield.Is(component.HitboxShield) && sword.Rect.Intersects(shield.Rect)
	onBody := sword.Rect.Intersects(defender.Body())

	switch {
	case onBody && onShield && facing(defender, attacker):
		r.DoShieldHit(attacker, defender)
	case onBody:
		r.DoHit(attacker, defender, true)
	case onShield:
		r.DoShieldHit(attacker, defender)
	}
}

func (r *CollisionResolver) resolveDownstrike(attacker, defender *obj.Combatant, hb component.Hitbox) {
	if attacker.Defeated || defender.Defeated {
		return
	}
	if !hb.Is(component.HitboxDownstrike) || !hb.Rect.Intersects(defender.Body()) {
		return
	}
	r.DoHit(attacker, defender, false)
}

func (r *CollisionResolver) resolveBodies(a, b *obj.Combatant) {
	a.OnTop = false
	b.OnTop = false
	if a.Defeated || b.Defeated {
		return
	}
	ab, bb := a.Body(), b.Body()
	if !ab.Touches(bb) {
		return
	}

	switch {
	case r.restsOn(ab, bb):
		stack(a, b, bb.Y)
	case r.restsOn(bb, ab):
		stack(b, a, ab.Y)
	default:
		// side by side: neither may keep pushing into the other
		left, right := a, b
		if ab.CenterX() > bb.CenterX() {
			left, right = b, a
		}
		if left.Vel.X > 0 {
			left.Vel.X = 0
		}
		if right.Vel.X < 0 {
			right.Vel.X = 0
		}
	}
}

// restsOn is the edge-proximity test: upper's bottom lies within the band
// around lower's top.
func (r *CollisionResolver) restsOn(upper, lower common.Rect) bool {
	return upper.CenterY() < lower.CenterY() &&
		math.Abs(upper.Bottom()-lower.Y) < r.EdgeTolerance
}

func stack(top, below *obj.Combatant, surface float64) {
	top.OnTop = true
	top.SnapOnto(surface)
	if top.Vel.Y > 0 {
		top.Vel.Y = 0
	}
	if below.Vel.Y < 0 {
		below.Vel.Y = 0
	}
	if top.Vel.Y >= 0 {
		top.Land()
	}
}

// DoHit removes one life from target unless it is invincible, optionally
// knocking it away from attacker, and emits EventHitLanded.
func (r *CollisionResolver) DoHit(attacker, target *obj.Combatant, knockback bool) bool {
	if r == nil || target == nil || target.Invincible() {
		return false
	}
	dir := awayFrom(attacker, target)
	if !target.TakeHit(dir, knockback) {
		return false
	}
	evt := r.event(component.EventHitLanded, attacker, target)
	if knockback {
		evt.KnockbackX = target.Vel.X
	}
	r.Events.Push(evt)
	return true
}

// DoShieldHit punishes a block: the defender loses all stamina and is
// staggered away from the attacker. Nothing happens while either side is
// already in knockback.
func (r *CollisionResolver) DoShieldHit(attacker, defender *obj.Combatant) bool {
	if r == nil || defender == nil || defender.InKnockback() {
		return false
	}
	if attacker != nil && attacker.InKnockback() {
		return false
	}
	defender.Stagger(awayFrom(attacker, defender))
	evt := r.event(component.EventShieldBlocked, attacker, defender)
	evt.KnockbackX = defender.Vel.X
	r.Events.Push(evt)
	return true
}

func (r *CollisionResolver) event(t component.CombatEventType, attacker, target *obj.Combatant) component.CombatEvent {
	evt := component.CombatEvent{Type: t, Frame: r.frame, AttackerID: -1}
	if attacker != nil {
		evt.AttackerID = attacker.ID
	}
	if target != nil {
		evt.TargetID = target.ID
		body := target.Body()
		evt.PosX, evt.PosY = body.CenterX(), body.CenterY()
	}
	return evt
}

// awayFrom returns the horizontal direction pushing target away from
// attacker by center order. Coincident centers fall back to the attacker's
// facing.
func awayFrom(attacker, target *obj.Combatant) float64 {
	if attacker == nil {
		if target.FacingLeft {
			return 1
		}
		return -1
	}
	dir := common.Sign(target.Body().CenterX() - attacker.Body().CenterX())
	if dir != 0 {
		return dir
	}
	if attacker.FacingLeft {
		return -1
	}
	return 1
}

// facing reports whether c faces toward other.
func facing(c, other *obj.Combatant) bool {
	return c.FacingLeft == (other.Body().CenterX() < c.Body().CenterX())
}
