package movement

import (
	"slices"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/stride/game"
	"github.com/oomph-ac/stride/world"
)

type wallrunPolicy struct{}

func (wallrunPolicy) Mode() Mode {
	return Wallrunning
}

func (wallrunPolicy) CanEnter(c *Controller) bool {
	return c.body.Falling() &&
		c.checkForWall() &&
		!c.ShouldStopWallrunning() &&
		c.state.CanWallRun &&
		c.movedSinceLastTick()
}

func (wallrunPolicy) Enter(c *Controller) {
	c.state.PreviousWall = c.state.CurrentWall
	c.state.CurrentWall = c.state.WallHit.Actor

	// Gravity ramps back up from zero so the entity does not slide off straight away.
	c.tl.wallRunGravity.PlayFromStart()
	c.setJumpCharges(c.s.Jumping.MaxCharges)

	if c.s.Wallrunning.SpawnParticle && c.shouldSpawnWallParticle() {
		c.spawnParticle(c.s.Effects.WallRunParticle, c.state.WallHit.ImpactPoint, c.state.WallHit.Normal)
	}
}

func (wallrunPolicy) Exit(c *Controller) {
	c.tl.wallRunGravity.Stop()
	c.body.SetGravityScale(c.initialGravityScale)
}

func (wallrunPolicy) Tick(c *Controller, _ float32) {
	if c.ShouldStopWallrunning() {
		c.RequestMode(Falling)
		return
	}

	start := c.body.Location()
	end := start.Add(c.state.WallHit.Normal.Mul(-c.s.Wallrunning.DistanceToWall))
	hit, ok := c.query.LineTrace(start, end, c.body.Self())
	if !ok {
		c.RequestMode(Falling)
		return
	}
	c.state.WallHit = hit
	c.body.SetVelocity(c.wallRunVelocity())
}

// checkForWall traces right, then left, for a surface tagged for wall-running and records it.
func (c *Controller) checkForWall() bool {
	start := c.body.Location()
	offset := c.body.Right().Mul(c.s.Wallrunning.DistanceToWall)

	for _, side := range [...]int{1, -1} {
		hit, ok := c.query.LineTrace(start, start.Add(offset.Mul(float32(side))), c.body.Self())
		if ok && hit.HasTag(world.TagWallRun) {
			c.state.WallHit, c.state.WallSide = hit, side
			return true
		}
	}
	c.state.WallHit, c.state.WallSide = world.Hit{}, 0
	return false
}

// ShouldStopWallrunning returns true if the entity should stop, or should not start, running along the
// wall it tracks.
func (c *Controller) ShouldStopWallrunning() bool {
	wall := c.state.WallHit.Actor
	if wall == 0 {
		return true
	}

	vel2D := game.SafeNormal(game.Flatten(c.body.Velocity()))
	input := c.state.MoveInput
	rightDot := c.body.Right().Dot(vel2D)
	forwardDot := game.SafeNormal(c.body.Forward().Mul(input.X())).Dot(vel2D)

	switch {
	case math32.Abs(rightDot) >= c.s.Wallrunning.MaxViewDot:
		// Steering away from, or into, the wall.
		return true
	case input.X() != 0 && forwardDot < c.s.Wallrunning.MaxMovementDot:
		return true
	case input.Y() == float32(-c.state.WallSide):
		// Pushing away from the wall.
		return true
	case !c.movedSinceLastTick():
		return true
	}
	tags, ok := c.query.Tags(wall)
	return !ok || !slices.Contains(tags, world.TagWallRun)
}

// movedSinceLastTick returns true if the entity moved horizontally by more than the stuck epsilon
// since the end of the previous tick.
func (c *Controller) movedSinceLastTick() bool {
	eps := c.s.Wallrunning.StuckEpsilon
	return game.Vec3HzDistSqr(c.body.Location().Sub(c.state.PreviousLocation)) > eps*eps
}

// shouldSpawnWallParticle only marks a wall again after the entity has left it.
func (c *Controller) shouldSpawnWallParticle() bool {
	if c.state.CurrentWall == c.state.PreviousWall {
		return c.state.PreviousBeforeSwitch != Wallrunning
	}
	return true
}

// wallRunVelocity returns the velocity along the tracked wall, in the direction the entity faces.
func (c *Controller) wallRunVelocity() mgl32.Vec3 {
	vel := game.WorldUp.Cross(c.state.WallHit.Normal).Mul(float32(c.state.WallSide) * c.s.Wallrunning.Speed)
	if c.s.Wallrunning.UseGravity {
		vel[2] += c.body.GravityZ()
	}
	return vel
}

// wallRunJump launches the entity off the tracked wall and closes the wall-run gate until the recover
// time has passed.
func (c *Controller) wallRunJump() {
	launch := c.state.WallHit.Normal.Mul(c.s.Wallrunning.JumpOffVelocity)
	launch[2] = c.s.Wallrunning.JumpUpVelocity
	c.body.Launch(launch, false, false)

	c.setJumpCharges(c.state.JumpCharges - 1)
	c.state.CanWallRun = false
	c.tl.wallRunRecover.PlayFromStart()
}

func (c *Controller) wallRunGravityUpdate(alpha float32) {
	c.body.SetGravityScale(game.Lerp(0, c.initialGravityScale, alpha))
}
