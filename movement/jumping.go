package movement

type jumpingPolicy struct {
	nopPolicy
}

func (jumpingPolicy) Mode() Mode {
	return Jumping
}

func (jumpingPolicy) CanEnter(c *Controller) bool {
	return c.state.HasRoomToStandUp && c.state.JumpCharges > 0 && !c.state.Current.is(Mantling, Dashing)
}

func (jumpingPolicy) Enter(c *Controller) {
	c.body.SetMaxSpeed(c.s.Falling.AirborneSpeed)
	if c.state.Previous == Wallrunning {
		c.wallRunJump()
		return
	}
	c.setJumpCharges(c.state.JumpCharges - 1)
	c.body.Launch(c.body.Up().Mul(c.s.Jumping.ZVelocity), false, true)
}

// Next always leaves a jump in the air.
func (jumpingPolicy) Next(*Controller) Mode {
	return Falling
}
