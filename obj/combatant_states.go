package obj

import (
	"math"

	"github.com/milk9111/boxshadow/common"
	"github.com/milk9111/boxshadow/component"
)

// motionState is the interface each concrete motion state implements.
type motionState interface {
	Kind() Motion
	Enter(c *Combatant)
	Exit(c *Combatant)
	HandleInput(c *Combatant, in Intent)
	OnPhysics(c *Combatant)
}

// singletons for each state to avoid allocating on every transition
var (
	stateIdle       motionState = &idleState{}
	stateMoving     motionState = &movingState{}
	stateJump       motionState = &jumpState{}
	stateDash       motionState = &dashState{}
	stateDownstrike motionState = &downstrikeState{}
	stateKnockback  motionState = &knockbackState{}
)

// restingState picks the state a combatant settles into once a timed or
// airborne state ends.
func restingState(c *Combatant) motionState {
	if !c.supported() {
		return stateJump
	}
	if c.Vel.X != 0 {
		return stateMoving
	}
	return stateIdle
}

type idleState struct{}

func (idleState) Kind() Motion { return MotionIdle }
func (idleState) Enter(c *Combatant) {
	c.Vel.X = 0
}
func (idleState) Exit(c *Combatant) {}
func (idleState) HandleInput(c *Combatant, in Intent) {
	groundedInput(c, in)
	if c.state == stateIdle && c.Vel.X != 0 {
		c.setState(stateMoving)
	}
}
func (idleState) OnPhysics(c *Combatant) {
	if !c.supported() {
		c.setState(stateJump)
	}
}

type movingState struct{}

func (movingState) Kind() Motion { return MotionMoving }
func (movingState) Enter(c *Combatant) {}
func (movingState) Exit(c *Combatant)  {}
func (movingState) HandleInput(c *Combatant, in Intent) {
	groundedInput(c, in)
	if c.state == stateMoving && c.Vel.X == 0 {
		c.setState(stateIdle)
	}
}
func (movingState) OnPhysics(c *Combatant) {
	if !c.supported() {
		c.setState(stateJump)
	}
}

// groundedInput runs the shared precedence for standing combatants:
// horizontal, dash, jump, then weapons.
func groundedInput(c *Combatant, in Intent) {
	c.steer(in)
	c.checkDash(in)
	c.tryJump(in)
	c.handleWeapons(in)
}

// jumpState covers every airborne phase, rising or falling.
type jumpState struct{}

func (jumpState) Kind() Motion { return MotionJumping }
func (jumpState) Enter(c *Combatant) {}
func (jumpState) Exit(c *Combatant)  {}
func (jumpState) HandleInput(c *Combatant, in Intent) {
	c.steer(in)
	c.checkDash(in)
	if c.state != stateJump {
		c.handleWeapons(in)
		return
	}
	// a combatant resting on the other may jump again
	c.tryJump(in)
	c.tryDownstrike(in)
	c.handleWeapons(in)
}
func (jumpState) OnPhysics(c *Combatant) {
	c.applyGravity()
}

type dashState struct{}

func (dashState) Kind() Motion { return MotionDashing }
func (dashState) Enter(c *Combatant) {
	c.dashTimer = c.tuning.DashFrames
	c.Vel.X = float64(c.dashDir) * c.tuning.Speed * c.tuning.DashMultiplier
	c.face(c.dashDir < 0)
	c.emit(component.EventDashed)
}
func (dashState) Exit(c *Combatant) {
	c.dashTimer = 0
	c.Vel.X = float64(c.dashDir) * c.tuning.Speed
	c.dashDir = 0
}
func (dashState) HandleInput(c *Combatant, in Intent) {
	// direction is locked for the dash but releases still feed the dash check
	c.prevMoveX = in.MoveX()
	c.tryJump(in)
	c.tryDownstrike(in)
	if c.state == stateDash {
		c.handleWeapons(in)
	}
}
func (dashState) OnPhysics(c *Combatant) {
	c.applyGravity()
	c.dashTimer--
	if c.dashTimer <= 0 {
		c.setState(restingState(c))
	}
}

// downstrikeState is a fast vertical drop exposing the downstrike box.
type downstrikeState struct{}

func (downstrikeState) Kind() Motion { return MotionDownstriking }
func (downstrikeState) Enter(c *Combatant) {
	c.downstrikeTimer = c.tuning.DownstrikeFrames
	c.Vel.X = 0
	c.Vel.Y = c.tuning.DownstrikeSpeed
}
func (downstrikeState) Exit(c *Combatant) {
	c.downstrikeTimer = 0
}
func (downstrikeState) HandleInput(c *Combatant, in Intent) {
	c.prevMoveX = in.MoveX()
}
func (downstrikeState) OnPhysics(c *Combatant) {
	c.downstrikeTimer--
	if c.downstrikeTimer <= 0 {
		c.setState(restingState(c))
		return
	}
	c.Vel.Y = c.tuning.DownstrikeSpeed
}

// knockbackState ignores input until the imposed velocity decays or the
// timer runs out.
type knockbackState struct{}

func (knockbackState) Kind() Motion { return MotionKnockback }
func (knockbackState) Enter(c *Combatant) {
	c.knockbackTimer = c.tuning.KnockbackFrames
	c.dashTimer = 0
	c.downstrikeTimer = 0
}
func (knockbackState) Exit(c *Combatant) {
	c.knockbackTimer = 0
	c.prevMoveX = 0
	c.dashWindow = 0
}
func (knockbackState) HandleInput(c *Combatant, in Intent) {}
func (knockbackState) OnPhysics(c *Combatant) {
	c.applyGravity()
	c.Vel.X = common.Approach(c.Vel.X, c.tuning.KnockbackFriction)
	c.knockbackTimer--
	atRest := math.Abs(c.Vel.X) == 0 && c.Grounded() && c.Vel.Y >= 0
	if c.knockbackTimer <= 0 || atRest {
		c.Vel.X = 0
		c.setState(restingState(c))
	}
}
