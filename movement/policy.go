package movement

// Policy implements the behaviour of a single mode. The controller holds one policy per mode and
// dispatches to it; policies hold no state of their own and act on the controller passed.
type Policy interface {
	// Mode returns the mode the policy implements.
	Mode() Mode
	// CanEnter returns true if the entity may switch to the mode. Geometry checks performed here may
	// record their results on the controller for Enter to use.
	CanEnter(c *Controller) bool
	// Enter sets up the mode. It is called after the previous mode has exited.
	Enter(c *Controller)
	// Exit cleans up the mode, leaving the body in a well defined state.
	Exit(c *Controller)
	// Tick runs the continuous update of the mode while it is current.
	Tick(c *Controller, dt float32)
}

// transientPolicy is implemented by policies whose mode is left as soon as it is entered.
type transientPolicy interface {
	Policy
	// Next returns the mode to switch to once the mode has been entered.
	Next(c *Controller) Mode
}

// nopPolicy provides empty Exit and Tick implementations for policies that need none.
type nopPolicy struct{}

func (nopPolicy) Exit(*Controller)          {}
func (nopPolicy) Tick(*Controller, float32) {}

func defaultPolicies() [modeCount]Policy {
	return [modeCount]Policy{
		Walking:     walkingPolicy{},
		Running:     runningPolicy{},
		Crouching:   crouchingPolicy{},
		Sliding:     slidingPolicy{},
		Jumping:     jumpingPolicy{},
		Wallrunning: wallrunPolicy{},
		Mantling:    mantlePolicy{},
		Dashing:     dashingPolicy{},
		Falling:     fallingPolicy{},
	}
}
