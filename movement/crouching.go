package movement

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/stride/game"
	"github.com/oomph-ac/stride/world"
)

type crouchingPolicy struct {
	nopPolicy
}

func (crouchingPolicy) Mode() Mode {
	return Crouching
}

func (crouchingPolicy) CanEnter(c *Controller) bool {
	return !c.body.Falling() && !c.state.Current.is(Dashing, Mantling, Wallrunning)
}

func (crouchingPolicy) Enter(c *Controller) {
	c.state.WantsToStandUp = false
	c.body.SetMaxSpeed(c.s.Crouching.Speed)
	c.tl.crouch.Play()
}

func (crouchingPolicy) Exit(c *Controller) {
	c.body.SetMaxSpeed(c.s.Walking.Speed)
	c.state.WantsToStandUp = true
	c.tl.crouch.Reverse()
}

// updateCrouchRoom refreshes HasRoomToStandUp and stands a crouching entity up once it wants to
// and there is room.
func (c *Controller) updateCrouchRoom() {
	c.state.HasRoomToStandUp = c.checkCrouchRoom()
	if !c.state.HasRoomToStandUp || c.state.Current != Crouching || !c.CanEnter(Walking) {
		return
	}
	if c.body.Falling() {
		c.RequestMode(Falling)
	} else {
		c.RequestMode(Walking)
	}
}

// checkCrouchRoom traces down from just above standing height to the feet of the entity, as if it
// were standing. Anything in the way other than the floor means there is no room to stand.
func (c *Controller) checkCrouchRoom() bool {
	centre := c.body.Location()
	centre[2] += c.defaultHalfHeight - c.body.CapsuleHalfHeight()

	start := centre.Add(mgl32.Vec3{0, 0, c.defaultHalfHeight + c.s.Crouching.TraceHeightOffset})
	end := centre.Sub(mgl32.Vec3{0, 0, c.defaultHalfHeight})

	ignore := []world.ActorID{c.body.Self()}
	if floor, ok := c.body.Floor(); ok {
		ignore = append(ignore, floor.Actor)
	}
	_, hit := c.query.LineTrace(start, end, ignore...)
	return !hit
}

func (c *Controller) crouchTimelineUpdate(alpha float32) {
	c.body.SetCapsuleHalfHeight(game.Lerp(c.defaultHalfHeight, c.s.Crouching.CrouchedHalfHeight, alpha))

	// Standing back up under an obstacle crouches the entity again.
	if !c.state.HasRoomToStandUp && !c.state.Current.is(Crouching, Sliding) {
		c.RequestMode(Crouching)
	}
}
