package movement

type walkingPolicy struct {
	nopPolicy
}

func (walkingPolicy) Mode() Mode {
	return Walking
}

func (walkingPolicy) CanEnter(c *Controller) bool {
	// Sliding, mantling and dashing each end through their own completion.
	return !c.state.Current.is(Sliding, Mantling, Dashing) &&
		c.state.HasRoomToStandUp && c.state.WantsToStandUp
}

func (walkingPolicy) Enter(c *Controller) {
	c.body.SetMaxSpeed(c.s.Walking.Speed)
	c.setJumpCharges(c.s.Jumping.MaxCharges)
}
