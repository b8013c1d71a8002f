package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/boxshadow/common"
	"github.com/milk9111/boxshadow/component"
)

// Motion is the exclusive body state of a combatant.
type Motion int

const (
	MotionIdle Motion = iota
	MotionMoving
	MotionJumping
	MotionDashing
	MotionDownstriking
	MotionKnockback
)

func (m Motion) String() string {
	switch m {
	case MotionMoving:
		return "moving"
	case MotionJumping:
		return "jumping"
	case MotionDashing:
		return "dashing"
	case MotionDownstriking:
		return "downstriking"
	case MotionKnockback:
		return "knockback"
	}
	return "idle"
}

// Weapon is the exclusive weapon state of a combatant. Downstriking owns its
// own box through the motion state.
type Weapon int

const (
	WeaponNone Weapon = iota
	WeaponSword
	WeaponShield
)

func (w Weapon) String() string {
	switch w {
	case WeaponSword:
		return "sword"
	case WeaponShield:
		return "shield"
	}
	return "none"
}

// weaponAllowed is the table of legal motion/weapon pairs.
var weaponAllowed = map[Motion][3]bool{
	MotionIdle:         {WeaponNone: true, WeaponSword: true, WeaponShield: true},
	MotionMoving:       {WeaponNone: true, WeaponSword: true, WeaponShield: true},
	MotionJumping:      {WeaponNone: true, WeaponSword: true, WeaponShield: true},
	MotionDashing:      {WeaponNone: true, WeaponSword: true},
	MotionDownstriking: {WeaponNone: true},
	MotionKnockback:    {WeaponNone: true},
}

// WeaponAllowed reports whether weapon w may be active during motion m.
func WeaponAllowed(m Motion, w Weapon) bool {
	row, ok := weaponAllowed[m]
	if !ok || w < 0 || int(w) >= len(row) {
		return false
	}
	return row[w]
}

// Combatant is one of the two fighters. Pos is the top-left of the body box.
type Combatant struct {
	ID         int
	Pos        cp.Vector
	Vel        cp.Vector
	Ground     float64
	FacingLeft bool

	// OnTop is recomputed by the collision pass every tick.
	OnTop bool
	// Defeated combatants ignore input and take no part in collisions.
	Defeated bool

	tuning  Tuning
	health  component.Health
	stamina component.Stamina
	events  *component.EventQueue

	state  motionState
	weapon Weapon

	weaponTimer     int
	attackCooldown  int
	shieldDrain     int
	regenTimer      int
	dashTimer       int
	dashDir         int
	dashWindow      int
	dashTapDir      int
	prevMoveX       int
	downstrikeTimer int
	knockbackTimer  int

	frame int
}

// NewCombatant places a combatant with its left edge at x, standing on the
// ground line. Starting life is LifeBudget minus the tuning's MaxStamina.
func NewCombatant(id int, x, ground float64, facingLeft bool, t Tuning, events *component.EventQueue) *Combatant {
	maxStamina := common.ClampInt(t.MaxStamina, 0, common.LifeBudget)
	c := &Combatant{
		ID:         id,
		Pos:        cp.Vector{X: x, Y: ground - t.Height},
		Ground:     ground,
		FacingLeft: facingLeft,
		tuning:     t,
		health:     component.NewHealth(common.LifeBudget - maxStamina),
		stamina:    component.NewStamina(maxStamina),
		events:     events,
		state:      stateIdle,
		regenTimer: t.StaminaRegenFrames,
	}
	c.state.Enter(c)
	return c
}

// SetMaxStamina re-derives the life/stamina split. Both pools are refilled.
func (c *Combatant) SetMaxStamina(max int) {
	if c == nil {
		return
	}
	max = common.ClampInt(max, 0, common.LifeBudget)
	c.tuning.MaxStamina = max
	c.stamina = component.NewStamina(max)
	c.health = component.NewHealth(common.LifeBudget - max)
}

func (c *Combatant) Life() int {
	return c.health.Current
}

func (c *Combatant) Stamina() int {
	return c.stamina.Current
}

func (c *Combatant) MaxStamina() int {
	return c.stamina.Max
}

func (c *Combatant) Motion() Motion {
	return c.state.Kind()
}

func (c *Combatant) Weapon() Weapon {
	return c.weapon
}

func (c *Combatant) Invincible() bool {
	return c.health.Invincible()
}

func (c *Combatant) InKnockback() bool {
	return c.state.Kind() == MotionKnockback
}

func (c *Combatant) Shielding() bool {
	return c.weapon == WeaponShield
}

func (c *Combatant) Attacking() bool {
	return c.weapon == WeaponSword
}

func (c *Combatant) Downstriking() bool {
	return c.state.Kind() == MotionDownstriking
}

// AttackReady reports whether a sword press would start an attack now.
func (c *Combatant) AttackReady() bool {
	return c.weapon == WeaponNone && c.attackCooldown == 0 && WeaponAllowed(c.Motion(), WeaponSword)
}

// Grounded reports whether the body rests on the ground line.
func (c *Combatant) Grounded() bool {
	return c.Pos.Y+c.tuning.Height >= c.Ground
}

func (c *Combatant) supported() bool {
	return c.Grounded() || c.OnTop
}

// Body returns the body hurtbox.
func (c *Combatant) Body() common.Rect {
	return common.Rect{X: c.Pos.X, Y: c.Pos.Y, Width: c.tuning.Width, Height: c.tuning.Height}
}

// Hitbox returns the single weapon box active this frame, if any.
func (c *Combatant) Hitbox() component.Hitbox {
	body := c.Body()
	t := c.tuning
	hb := component.Hitbox{OwnerID: c.ID}
	switch {
	case c.Downstriking():
		hb.Kind = component.HitboxDownstrike
		hb.Rect = common.Rect{X: body.X + 5, Y: body.Bottom(), Width: body.Width - 10, Height: t.DownstrikeHeight}
	case c.weapon == WeaponSword:
		hb.Kind = component.HitboxSword
		hb.Rect = common.Rect{X: body.Right(), Y: body.Y + t.SwordOffsetY, Width: t.SwordWidth, Height: t.SwordHeight}
		if c.FacingLeft {
			hb.Rect.X = body.X - t.SwordWidth
		}
	case c.weapon == WeaponShield:
		hb.Kind = component.HitboxShield
		hb.Rect = common.Rect{X: body.Right(), Y: body.Y + (body.Height-t.ShieldHeight)/2, Width: t.ShieldWidth, Height: t.ShieldHeight}
		if c.FacingLeft {
			hb.Rect.X = body.X - t.ShieldWidth
		}
	}
	return hb
}

// View returns a read-only snapshot for input sources and presentation.
func (c *Combatant) View() CombatantView {
	if c == nil {
		return CombatantView{}
	}
	return CombatantView{
		ID:          c.ID,
		Body:        c.Body(),
		Vel:         c.Vel,
		FacingLeft:  c.FacingLeft,
		Life:        c.Life(),
		Stamina:     c.Stamina(),
		MaxStamina:  c.MaxStamina(),
		Motion:      c.Motion(),
		Weapon:      c.weapon,
		Hitbox:      c.Hitbox(),
		Invincible:  c.Invincible(),
		Grounded:    c.Grounded(),
		OnTop:       c.OnTop,
		AttackReady: c.AttackReady(),
		Defeated:    c.Defeated,
	}
}

// HandleInput applies one tick of intent. Input is dropped entirely while
// in knockback or once defeated.
func (c *Combatant) HandleInput(in Intent) {
	if c == nil || c.Defeated {
		return
	}
	c.state.HandleInput(c, in)
}

// Update advances timers, the stamina economy and velocity. Positions are
// integrated later by Move so the collision pass can veto velocities first.
func (c *Combatant) Update() {
	if c == nil {
		return
	}
	c.frame++
	c.health.Tick()
	c.tickWeapon()
	c.tickStamina()
	if c.dashWindow > 0 {
		c.dashWindow--
	}
	c.state.OnPhysics(c)
}

// Move integrates velocity into position and clamps to the ground line and
// the arena side walls.
func (c *Combatant) Move(arenaWidth float64) {
	if c == nil {
		return
	}
	c.Pos = c.Pos.Add(c.Vel)

	if c.Grounded() {
		c.Pos.Y = c.Ground - c.tuning.Height
		if c.Vel.Y > 0 {
			c.Vel.Y = 0
		}
		c.Land()
	}

	if arenaWidth > 0 {
		maxX := arenaWidth - c.tuning.Width
		x := cp.Clamp(c.Pos.X, 0, maxX)
		if x != c.Pos.X {
			c.Pos.X = x
			c.Vel.X = 0
		}
	}
}

// Land ends airborne motion states. Called when the body reaches the ground
// line or comes to rest on the other combatant.
func (c *Combatant) Land() {
	if c == nil {
		return
	}
	switch c.Motion() {
	case MotionJumping, MotionDownstriking:
		c.setState(restingState(c))
	}
}

// SnapOnto rests the body exactly on top of a surface at y.
func (c *Combatant) SnapOnto(y float64) {
	if c == nil {
		return
	}
	c.Pos.Y = y - c.tuning.Height
}

// TakeHit removes one life unless invincible. It starts i-frames and, when
// knockback is set, pushes the combatant along dir (-1 or +1).
func (c *Combatant) TakeHit(dir float64, knockback bool) bool {
	if c == nil || c.Defeated || !c.health.ApplyDamage(1) {
		return false
	}
	c.health.StartIFrames(c.tuning.InvincibleFrames)
	if knockback {
		c.Knockback(dir)
	}
	return true
}

// Stagger punishes a block: stamina is emptied and knockback is forced.
func (c *Combatant) Stagger(dir float64) {
	if c == nil || c.Defeated {
		return
	}
	c.stamina.Zero()
	c.Knockback(dir)
}

// Knockback forces the input-ignoring knockback state along dir.
func (c *Combatant) Knockback(dir float64) {
	if c == nil {
		return
	}
	c.Vel = cp.Vector{X: common.Sign(dir) * c.tuning.KnockbackSpeed, Y: -c.tuning.KnockbackLift}
	c.setState(stateKnockback)
	// a fresh push restarts the timer when already in knockback
	c.knockbackTimer = c.tuning.KnockbackFrames
}

// SetDefeated marks the combatant out of the match and drops any active box.
func (c *Combatant) SetDefeated(defeated bool) {
	if c == nil {
		return
	}
	c.Defeated = defeated
	if defeated {
		c.endWeapon()
		c.OnTop = false
		if c.Motion() == MotionDashing || c.Motion() == MotionDownstriking {
			c.setState(restingState(c))
		}
	}
}

func (c *Combatant) setState(s motionState) {
	if c.state == s {
		return
	}
	c.state.Exit(c)
	c.state = s
	if !WeaponAllowed(s.Kind(), c.weapon) {
		c.endWeapon()
	}
	c.state.Enter(c)
}

func (c *Combatant) emit(t component.CombatEventType) {
	c.events.Push(component.CombatEvent{
		Type:       t,
		AttackerID: c.ID,
		TargetID:   c.ID,
		Frame:      c.frame,
		PosX:       c.Body().CenterX(),
		PosY:       c.Body().CenterY(),
	})
}

// steer applies left/right to velocity and facing.
func (c *Combatant) steer(in Intent) {
	dir := in.MoveX()
	c.Vel.X = float64(dir) * c.tuning.Speed
	if dir != 0 {
		c.face(dir < 0)
	}
}

func (c *Combatant) face(left bool) {
	if c.FacingLeft == left {
		return
	}
	c.FacingLeft = left
	c.emit(component.EventFacingChanged)
}

// checkDash starts a dash on a same-direction re-press inside the window.
// A release opens the window for the direction that was just held.
func (c *Combatant) checkDash(in Intent) {
	dir := in.MoveX()
	prev := c.prevMoveX
	c.prevMoveX = dir
	if dir == prev {
		return
	}
	if dir == 0 {
		c.dashTapDir = prev
		c.dashWindow = c.tuning.DashWindowFrames
		return
	}
	if c.dashWindow > 0 && c.dashTapDir == dir {
		c.dashWindow = 0
		c.dashTapDir = 0
		if c.stamina.Spend(c.tuning.DashCost) {
			c.dashDir = dir
			c.setState(stateDash)
		}
	}
}

func (c *Combatant) tryJump(in Intent) {
	if !in.Jump || !c.supported() || c.Vel.Y < 0 {
		return
	}
	if !c.stamina.Spend(c.tuning.JumpCost) {
		return
	}
	c.Vel.Y = -c.tuning.JumpSpeed
	c.OnTop = false
	c.emit(component.EventJumped)
	if c.Motion() != MotionDashing {
		c.setState(stateJump)
	}
}

func (c *Combatant) tryDownstrike(in Intent) {
	if !in.Down || c.supported() {
		return
	}
	c.setState(stateDownstrike)
}

// handleWeapons applies sword before shield; only one box may be active.
func (c *Combatant) handleWeapons(in Intent) {
	switch c.weapon {
	case WeaponShield:
		if !in.Shield || c.stamina.Empty() {
			c.endWeapon()
		}
	case WeaponNone:
		if in.Sword && c.AttackReady() {
			c.weapon = WeaponSword
			c.weaponTimer = c.tuning.AttackActiveFrames
			return
		}
		if in.Shield && !c.stamina.Empty() && WeaponAllowed(c.Motion(), WeaponShield) {
			c.weapon = WeaponShield
			c.shieldDrain = c.tuning.ShieldDrainFrames
		}
	}
}

func (c *Combatant) endWeapon() {
	if c.weapon == WeaponSword {
		c.attackCooldown = c.tuning.AttackRecoveryFrames
	}
	c.weapon = WeaponNone
	c.weaponTimer = 0
}

func (c *Combatant) tickWeapon() {
	if c.attackCooldown > 0 {
		c.attackCooldown--
	}
	if c.weapon != WeaponSword {
		return
	}
	if c.weaponTimer <= 0 {
		c.endWeapon()
		return
	}
	c.weaponTimer--
}

// tickStamina drains while shielding and regenerates while nothing spends.
func (c *Combatant) tickStamina() {
	if c.weapon == WeaponShield {
		c.regenTimer = c.tuning.StaminaRegenFrames
		c.shieldDrain--
		if c.shieldDrain <= 0 {
			c.stamina.Spend(1)
			c.shieldDrain = c.tuning.ShieldDrainFrames
		}
		if c.stamina.Empty() {
			c.endWeapon()
		}
		return
	}
	switch c.Motion() {
	case MotionDashing, MotionKnockback:
		c.regenTimer = c.tuning.StaminaRegenFrames
		return
	}
	if c.stamina.Full() || c.Defeated {
		c.regenTimer = c.tuning.StaminaRegenFrames
		return
	}
	c.regenTimer--
	if c.regenTimer <= 0 {
		c.stamina.Restore(1)
		c.regenTimer = c.tuning.StaminaRegenFrames
	}
}

func (c *Combatant) applyGravity() {
	if c.Grounded() && c.Vel.Y >= 0 {
		return
	}
	c.Vel.Y += c.tuning.Gravity
	if c.Vel.Y > c.tuning.MaxFallSpeed {
		c.Vel.Y = c.tuning.MaxFallSpeed
	}
}

// CombatantView is a read-only snapshot of a combatant.
type CombatantView struct {
	ID          int
	Body        common.Rect
	Vel         cp.Vector
	FacingLeft  bool
	Life        int
	Stamina     int
	MaxStamina  int
	Motion      Motion
	Weapon      Weapon
	Hitbox      component.Hitbox
	Invincible  bool
	Grounded    bool
	OnTop       bool
	AttackReady bool
	Defeated    bool
}

// Supported reports whether the combatant stands on the ground or the other
// combatant.
func (v CombatantView) Supported() bool {
	return v.Grounded || v.OnTop
}
