package movement

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/stride/game"
	"github.com/oomph-ac/stride/world"
)

// SetMoveInput sets the move axis of the entity, X being forward and Y being right. Both components
// are clamped to [-1, 1].
func (c *Controller) SetMoveInput(v mgl32.Vec2) {
	c.state.MoveInput = mgl32.Vec2{game.ClampFloat(v.X(), -1, 1), game.ClampFloat(v.Y(), -1, 1)}
}

// AcceptsMoveInput returns true if the move input should accelerate the body in the current mode.
// Sliding, mantling and dashing move the body on their own.
func (c *Controller) AcceptsMoveInput() bool {
	return c.state.Current.is(Walking, Running, Crouching, Falling, Wallrunning)
}

// OnJump handles a jump press. A crouching or sliding entity stands back up instead of jumping, if
// there is room to.
func (c *Controller) OnJump() bool {
	if c.state.Current.is(Crouching, Sliding) {
		if !c.state.HasRoomToStandUp {
			return false
		}
		// Forced: crouching clears WantsToStandUp, so the Walking and Falling gates would refuse.
		if c.body.Falling() {
			// Only reachable when the entity crouched mid-air under an obstacle.
			return c.switchMode(Falling, true)
		}
		return c.switchMode(Walking, true)
	}
	if !c.RequestMode(Jumping) {
		return false
	}
	c.playSound(c.s.Effects.JumpSound)
	return true
}

// OnDash handles a dash press.
func (c *Controller) OnDash() bool {
	if !c.RequestMode(Dashing) {
		return false
	}
	c.playSound(c.s.Effects.DashSound)
	c.shakeCamera(c.s.Effects.DashShake)
	return true
}

// OnMantle handles a mantle press. It is expected to be called every tick the mantle input is held.
func (c *Controller) OnMantle() bool {
	if !c.RequestMode(Mantling) {
		return false
	}
	c.shakeCamera(c.s.Effects.MantleShake)
	return true
}

// OnCrouch handles a crouch press. Pressing crouch while crouching toggles whether the entity wants
// to stand up; otherwise it slides if it can and crouches if it cannot.
func (c *Controller) OnCrouch() {
	if c.state.Current == Crouching {
		c.state.WantsToStandUp = !c.state.WantsToStandUp
		return
	}
	if !c.RequestMode(Sliding) {
		c.RequestMode(Crouching)
	}
}

// OnRunStart handles the run input being pressed.
func (c *Controller) OnRunStart() bool {
	return c.RequestMode(Running)
}

// OnRunEnd handles the run input being released.
func (c *Controller) OnRunEnd() bool {
	if c.state.Current != Running {
		return false
	}
	return c.RequestMode(Walking)
}

// OnLanded is called by the body when it lands on the surface hit.
func (c *Controller) OnLanded(hit world.Hit) {
	c.setJumpCharges(c.s.Jumping.MaxCharges)

	if c.RequestMode(Walking) {
		c.playLandingEffects(hit)
		return
	}
	if !c.state.WantsToStandUp && !c.state.Current.is(Crouching, Sliding, Mantling) && c.RequestMode(Crouching) {
		c.playLandingEffects(hit)
	}
}

// OnWalkedOffLedge is called by the body when it starts falling without jumping.
func (c *Controller) OnWalkedOffLedge() {
	c.RequestMode(Falling)
}

func (c *Controller) playLandingEffects(hit world.Hit) {
	c.debugf(c.dbg.LogLanding, "landed", "at", hit.ImpactPoint, "effects", c.state.UseLandingEffects)
	if !c.state.UseLandingEffects {
		return
	}
	c.spawnParticle(c.s.Effects.LandingParticle, hit.ImpactPoint, hit.Normal)
	c.tl.cameraBob.PlayFromStart()
	c.shakeCamera(c.s.Effects.LandingShake)
}
