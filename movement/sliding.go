package movement

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/stride/game"
)

type slidingPolicy struct{}

func (slidingPolicy) Mode() Mode {
	return Sliding
}

// CanEnter only allows sliding out of a run.
func (slidingPolicy) CanEnter(c *Controller) bool {
	return !c.body.Falling() && c.state.Current == Running
}

func (slidingPolicy) Enter(c *Controller) {
	c.state.WantsToStandUp = false
	c.body.SetMaxSpeed(c.s.Crouching.Speed)
	c.body.SetBraking(Braking{})

	c.tl.slideInfluence.SetNewTime(0)
	c.tl.crouch.Play()
}

func (slidingPolicy) Exit(c *Controller) {
	c.body.SetBraking(c.initialBraking)

	c.tl.slideInfluence.Stop()
	c.tl.crouch.Reverse()
}

func (slidingPolicy) Tick(c *Controller, _ float32) {
	if c.shouldDecaySlidingInfluence() {
		c.tl.slideInfluence.Play()
	} else {
		c.tl.slideInfluence.Stop()
	}

	var floorNormal mgl32.Vec3
	if floor, ok := c.body.Floor(); ok {
		floorNormal = floor.Normal
	}
	right := c.body.Right()
	forward := right.Cross(floorNormal).Mul(c.s.Sliding.ForwardForce)
	sideways := right.Mul(c.state.MoveInput.Y() * c.s.Sliding.SidewaysForce)
	c.body.AddForce(forward.Add(sideways).Mul(c.state.SlidingInfluence))

	if vel := c.body.Velocity(); vel.Len() > c.s.Sliding.MaxSpeed {
		c.body.SetVelocity(game.SafeNormal(vel).Mul(c.s.Sliding.MaxSpeed * c.state.SlidingInfluence))
	}
}

// shouldDecaySlidingInfluence returns true on flat floors and when moving up a slope. Sliding down a
// slope never wears off.
func (c *Controller) shouldDecaySlidingInfluence() bool {
	floor, ok := c.body.Floor()
	if !ok {
		return false
	}
	if game.Vec3ApproxEq(floor.Normal, game.WorldUp, game.KindaSmallNumber) {
		return true
	}
	downhill := floor.Normal.Cross(floor.Normal.Cross(game.WorldUp))
	return game.SafeNormal(c.body.Velocity()).Dot(downhill) < 0
}

func (c *Controller) slidingInfluenceUpdate(influence float32) {
	c.state.SlidingInfluence = game.ClampFloat(influence, 0, 1)
	if c.state.SlidingInfluence == 0 && c.state.Current == Sliding {
		c.switchMode(Crouching, true)
	}
}
