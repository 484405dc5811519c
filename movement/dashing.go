package movement

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/stride/game"
	"github.com/oomph-ac/stride/settings"
)

type dashingPolicy struct{}

func (dashingPolicy) Mode() Mode {
	return Dashing
}

func (dashingPolicy) CanEnter(c *Controller) bool {
	return c.state.DashCharges >= 1 && c.state.HasRoomToStandUp && c.state.Current != Mantling
}

func (dashingPolicy) Enter(c *Controller) {
	c.dashDirection = c.computeDashDirection()

	c.state.UseLandingEffects = false
	c.state.CanWallRun = false
	c.tl.landingEffectsRestore.Stop()

	c.tl.dash.PlayFromStart()

	// Recovery resumes from the remaining fraction of charges rather than from zero.
	c.setDashCharges(c.state.DashCharges - 1)
	c.tl.dashRecovery.SetNewTime(c.state.DashCharges / float32(c.s.Dashing.MaxCharges) * c.tl.dashRecovery.Length())
	c.tl.dashRecovery.Play()
}

func (dashingPolicy) Exit(c *Controller) {
	c.tl.dash.Stop()
	c.state.CanWallRun = true

	// Leave the dash at airborne speed so the entity is not flung away.
	c.body.Launch(c.dashDirection.Mul(c.s.Falling.AirborneSpeed), true, true)
	c.tl.landingEffectsRestore.PlayFromStart()
}

func (dashingPolicy) Tick(*Controller, float32) {}

// computeDashDirection returns the direction of a dash starting now.
func (c *Controller) computeDashDirection() mgl32.Vec3 {
	if c.s.Dashing.Type == settings.DashTypeCamera {
		if dir := game.SafeNormal(c.camera.Forward()); dir != (mgl32.Vec3{}) {
			return dir
		}
		return c.body.Forward()
	}
	input := c.state.MoveInput
	dir := game.SafeNormal(c.body.Forward().Mul(input.X()).Add(c.body.Right().Mul(input.Y())))
	if dir == (mgl32.Vec3{}) {
		// Dash forward when there is no move input.
		return c.body.Forward()
	}
	return dir
}

func (c *Controller) dashMovementUpdate(value float32) {
	if c.state.Current != Dashing {
		return
	}
	c.body.SetVelocity(c.dashDirection.Mul(c.s.Dashing.Speed * value))

	// Dashing under an obstacle too low to stand under ends in a crouch.
	if !c.state.HasRoomToStandUp {
		c.switchMode(Crouching, true)
	}
}

func (c *Controller) dashMovementFinished() {
	if c.state.Current == Dashing {
		c.switchMode(Falling, true)
	}
}

func (c *Controller) dashRecoveryUpdate(alpha float32) {
	c.setDashCharges(float32(c.s.Dashing.MaxCharges) * alpha)
}
