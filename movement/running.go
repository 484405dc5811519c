package movement

type runningPolicy struct{}

func (runningPolicy) Mode() Mode {
	return Running
}

func (runningPolicy) CanEnter(c *Controller) bool {
	ok := c.state.RunningStamina > 0 &&
		c.state.MoveInput.X() > 0 &&
		c.state.HasRoomToStandUp &&
		!c.body.Falling()
	if c.state.Current == Sliding {
		return ok && c.s.Sliding.CancelWithRun
	}
	return ok
}

func (runningPolicy) Enter(c *Controller) {
	c.body.SetMaxSpeed(c.s.Running.Speed)
	if !c.s.Running.UseStamina {
		return
	}
	// Both stamina timelines map their position linearly to stamina, so seeding from the current
	// stamina resumes exactly where the other one stopped.
	c.tl.staminaRecovery.Stop()
	c.tl.staminaDepletion.SetNewTime(c.tl.staminaDepletion.Length() * c.state.RunningStamina / c.s.Running.MaxStamina)
	c.tl.staminaDepletion.Reverse()
}

func (runningPolicy) Exit(c *Controller) {
	if !c.s.Running.UseStamina {
		return
	}
	c.tl.staminaDepletion.Stop()
	c.tl.staminaRecovery.SetNewTime(c.tl.staminaRecovery.Length() * c.state.RunningStamina / c.s.Running.MaxStamina)
	c.tl.staminaRecovery.Play()
}

func (runningPolicy) Tick(c *Controller, _ float32) {
	c.stopRunningIfExhausted()
}

// keepRunning returns true if a running entity may keep running.
func (c *Controller) keepRunning() bool {
	return c.state.RunningStamina > 0 && c.state.MoveInput.X() > 0 && !c.body.Falling()
}

// stopRunningIfExhausted ends a run that can no longer continue, standing the entity up if there is
// room and crouching it otherwise.
func (c *Controller) stopRunningIfExhausted() {
	if c.state.Current != Running || c.keepRunning() {
		return
	}
	if c.state.HasRoomToStandUp {
		c.switchMode(Walking, true)
	} else {
		c.switchMode(Crouching, true)
	}
}

func (c *Controller) staminaDepletionUpdate(alpha float32) {
	c.setStamina(c.s.Running.MaxStamina * alpha)
	c.stopRunningIfExhausted()
}

func (c *Controller) staminaRecoveryUpdate(alpha float32) {
	c.setStamina(c.s.Running.MaxStamina * alpha)
}
