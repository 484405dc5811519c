package movement

type fallingPolicy struct {
	nopPolicy
}

func (fallingPolicy) Mode() Mode {
	return Falling
}

// CanEnter keeps stepping off a ledge mid-mantle from breaking the mantle.
func (fallingPolicy) CanEnter(c *Controller) bool {
	return c.state.Current != Mantling
}

func (fallingPolicy) Enter(c *Controller) {
	c.body.SetMaxSpeed(c.s.Falling.AirborneSpeed)
}

func (fallingPolicy) Exit(c *Controller) {
	c.state.WantsToStandUp = true
}
