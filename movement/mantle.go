package movement

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/stride/game"
	"github.com/oomph-ac/stride/settings"
	"github.com/oomph-ac/stride/world"
)

type mantlePolicy struct{}

func (mantlePolicy) Mode() Mode {
	return Mantling
}

func (mantlePolicy) CanEnter(c *Controller) bool {
	return c.body.Falling() && c.state.Current != Mantling && c.MantleCheck()
}

func (mantlePolicy) Enter(c *Controller) {
	st := &c.state
	st.MantleUp.Location, st.MantleUp.Actor = c.mantleUpTarget, c.mantleSurface
	st.MantleForward.Location, st.MantleForward.Actor = c.mantleForwardTarget, c.mantleSurface
	st.MantleBegin.Location, st.MantleBegin.Actor = c.body.Location(), c.mantleSurface
	// The entity first moves up, then forward onto the surface.
	st.MantleTarget = st.MantleUp
	st.MantlePhase = MantleMovingUp

	st.UseLandingEffects = false
	st.CanWallRun = false
	c.tl.landingEffectsRestore.Stop()

	c.tl.mantleUp.PlayFromStart()
}

func (mantlePolicy) Exit(c *Controller) {
	// Stick the entity to the surface it mantled onto.
	c.body.Launch(mgl32.Vec3{0, 0, c.body.GravityZ()}, true, true)

	c.state.CanWallRun = true
	c.state.MantlePhase = MantleIdle
	c.tl.mantleUp.Stop()
	c.tl.mantleForward.Stop()
	c.tl.landingEffectsRestore.PlayFromStart()
}

func (mantlePolicy) Tick(*Controller, float32) {}

// MantleCheck performs the three mantle casts, stopping at the first one that fails:
//
//  1. A capsule sweep forward from above the entity must hit a blocking surface that is neither
//     simulating physics nor tagged Unmountable.
//  2. A capsule sweep down onto the impact point must find a surface the body can walk on.
//  3. A capsule sweep from just above that surface towards its inside must hit nothing.
//
// The start and end of the third sweep are recorded as the up and forward anchors of the next mantle.
func (c *Controller) MantleCheck() bool {
	if c.state.Current != Mantling {
		c.state.MantlePhase = MantleIdle
	}
	shape := world.Shape{Radius: c.body.CapsuleRadius(), HalfHeight: c.defaultHalfHeight}
	self := c.body.Self()
	loc := c.body.Location()

	start := loc.Add(mgl32.Vec3{0, 0, c.body.CapsuleHalfHeight()})
	end := start.Add(c.body.Forward().Mul(c.s.Mantling.TraceForwardDistance))
	hit, ok := c.query.SweepCapsule(start, end, shape, self)
	if !ok || !hit.Blocking || hit.HasTag(world.TagUnmountable) || hit.SimulatesPhysics {
		return false
	}

	start = hit.ImpactPoint.Add(mgl32.Vec3{0, 0, c.s.Mantling.HeightTraceLength})
	end = hit.ImpactPoint
	hit, ok = c.query.SweepCapsule(start, end, shape, self)
	if !ok || !hit.Blocking || !c.body.IsWalkable(hit) {
		return false
	}

	start = mgl32.Vec3{loc.X(), loc.Y(), hit.Location.Z() + c.s.Mantling.LocationZOffset}
	end = start.Add(c.body.Right().Cross(hit.Normal).Mul(c.s.Mantling.Depth))
	if _, blocked := c.query.SweepCapsule(start, end, shape, self); blocked {
		return false
	}

	c.mantleUpTarget, c.mantleForwardTarget = start, end
	c.mantleSurface = hit.Actor
	if c.state.Current != Mantling {
		c.state.MantlePhase = MantleCheckPassed
	}
	c.debugf(c.dbg.LogMantle, "mantle check passed", "up", start, "forward", end, "surface", hit.Actor)
	return true
}

func (c *Controller) mantleMovementUpdate(alpha float32) {
	if c.state.Current != Mantling {
		return
	}
	begin, target := c.state.MantleBegin.Location, c.state.MantleTarget.Location
	switch c.s.Mantling.Type {
	case settings.MantleTypeLocation:
		c.body.Teleport(game.LerpVec3(begin, target, alpha))
	default:
		c.body.SetVelocity(game.SafeNormal(target.Sub(begin)).Mul(c.s.Mantling.Speed))
	}
}

func (c *Controller) mantleUpFinished() {
	if c.state.Current != Mantling {
		return
	}
	st := &c.state
	// The up anchor becomes the start of the forward move and the old begin anchor is kept for reuse.
	stored := st.MantleBegin
	st.MantleBegin = st.MantleUp
	st.MantleTarget = st.MantleForward
	st.MantleUp = stored
	st.MantlePhase = MantleMovingForward

	c.tl.mantleForward.PlayFromStart()
}

func (c *Controller) mantleForwardFinished() {
	if c.state.Current == Mantling {
		c.switchMode(Falling, true)
	}
}
