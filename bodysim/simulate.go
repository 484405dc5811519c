package bodysim

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/stride/game"
	"github.com/oomph-ac/stride/world"
)

// Outcome describes how the ground contact of a body changed during a tick.
type Outcome uint8

const (
	OutcomeGrounded Outcome = iota
	OutcomeFalling
	OutcomeLanded
	OutcomeLeftGround
)

// String ...
func (o Outcome) String() string {
	switch o {
	case OutcomeGrounded:
		return "grounded"
	case OutcomeFalling:
		return "falling"
	case OutcomeLanded:
		return "landed"
	case OutcomeLeftGround:
		return "left_ground"
	}
	return "unknown"
}

// Result captures the outcome of a single simulation tick.
type Result struct {
	Location mgl32.Vec3
	Velocity mgl32.Vec3
	// Blocked is true if the body was moved against at least one surface.
	Blocked bool
	Outcome Outcome
}

// Simulate advances the body by dt seconds: it integrates forces, input and gravity, moves the capsule
// through the world sliding along what it hits and updates its ground contact. The listener is
// notified after the body state has been fully updated.
func (b *Body) Simulate(dt float32) Result {
	if dt <= 0 {
		return b.result(false, b.idleOutcome())
	}

	if b.opts.Mass > 0 {
		b.vel = b.vel.Add(b.force.Mul(dt / b.opts.Mass))
	}
	b.force = mgl32.Vec3{}

	var (
		blocked bool
		outcome Outcome
		landed  world.Hit
	)
	if b.falling {
		b.calcVelocity(dt, b.opts.MaxAcceleration*b.opts.AirControl, false)
		b.vel[2] += b.GravityZ() * dt

		var ok bool
		landed, ok, blocked = b.moveFalling(b.vel.Mul(dt))
		outcome = OutcomeFalling
		if ok {
			b.land(landed)
			outcome = OutcomeLanded
		}
	} else {
		b.calcVelocity(dt, b.opts.MaxAcceleration, true)
		b.vel[2] = 0

		delta := b.vel.Mul(dt)
		delta[2] = 0
		blocked = b.slide(delta)

		outcome = OutcomeGrounded
		if floor, ok := b.findFloor(); ok {
			b.floor = floor
			b.loc[2] = floor.Location.Z() + SkinWidth
		} else {
			b.falling = true
			b.floor = world.Hit{}
			outcome = OutcomeLeftGround
		}
	}

	switch outcome {
	case OutcomeLanded:
		b.debugf("bodysim: landed on %d at %v", landed.Actor, b.loc)
		b.listener.OnLanded(landed)
	case OutcomeLeftGround:
		b.debugf("bodysim: walked off ledge at %v", b.loc)
		b.listener.OnWalkedOffLedge()
	}
	return b.result(blocked, outcome)
}

func (b *Body) result(blocked bool, outcome Outcome) Result {
	return Result{Location: b.loc, Velocity: b.vel, Blocked: blocked, Outcome: outcome}
}

func (b *Body) idleOutcome() Outcome {
	if b.falling {
		return OutcomeFalling
	}
	return OutcomeGrounded
}

// calcVelocity applies the move input and braking to the horizontal velocity of the body. Input never
// accelerates the body beyond its max speed, but a body already moving faster is only slowed down by
// braking.
func (b *Body) calcVelocity(dt, maxAccel float32, grounded bool) {
	hz := game.Flatten(b.vel)
	speed := hz.Len()

	var accel mgl32.Vec3
	if b.input != (mgl32.Vec2{}) {
		wish := b.Forward().Mul(b.input.X()).Add(b.Right().Mul(b.input.Y()))
		if wish.Len() > 1 {
			wish = wish.Normalize()
		}
		accel = wish.Mul(maxAccel)
	}

	exceeding := speed > b.maxSpeed
	if grounded && (accel == (mgl32.Vec3{}) || exceeding) {
		hz = b.brake(hz, dt)
		if exceeding && accel != (mgl32.Vec3{}) && hz.Len() < b.maxSpeed {
			hz = game.SafeNormal(hz).Mul(b.maxSpeed)
		}
		speed = hz.Len()
	}
	if accel != (mgl32.Vec3{}) {
		hz = hz.Add(accel.Mul(dt))
		if limit := math32.Max(b.maxSpeed, speed); hz.Len() > limit {
			hz = hz.Normalize().Mul(limit)
		}
	}
	b.vel[0], b.vel[1] = hz[0], hz[1]
}

// brake slows down a horizontal velocity using the current braking of the body, never reversing it.
func (b *Body) brake(v mgl32.Vec3, dt float32) mgl32.Vec3 {
	if v == (mgl32.Vec3{}) {
		return v
	}
	friction := b.opts.GroundFriction * b.braking.FrictionFactor
	decel := game.SafeNormal(v).Mul(-b.braking.DecelerationWalking)

	braked := v.Add(v.Mul(-friction).Add(decel).Mul(dt))
	if braked.Dot(v) <= 0 {
		return mgl32.Vec3{}
	}
	return braked
}

// sweep moves the capsule by delta, stopping just short of the first surface in the way.
func (b *Body) sweep(delta mgl32.Vec3) (world.Hit, bool) {
	end := b.loc.Add(delta)
	hit, ok := b.query.SweepCapsule(b.loc, end, b.shape(), b.self)
	if !ok {
		b.loc = end
		return world.Hit{}, false
	}
	b.loc = hit.Location.Add(hit.Normal.Mul(SkinWidth))
	return hit, true
}

// slide moves the capsule by delta, sliding along every surface it hits. It returns true if anything
// was hit.
func (b *Body) slide(delta mgl32.Vec3) bool {
	var blocked bool
	for i := 0; i < maxSlides && delta.LenSqr() > game.SmallNumber; i++ {
		start := b.loc
		hit, ok := b.sweep(delta)
		if !ok {
			break
		}
		blocked = true
		delta = b.deflect(delta.Sub(b.loc.Sub(start)), hit.Normal)
	}
	return blocked
}

// moveFalling moves an airborne capsule by delta. It returns the floor the body landed on, if any.
func (b *Body) moveFalling(delta mgl32.Vec3) (floor world.Hit, landed, blocked bool) {
	for i := 0; i < maxSlides && delta.LenSqr() > game.SmallNumber; i++ {
		start := b.loc
		hit, ok := b.sweep(delta)
		if !ok {
			break
		}
		blocked = true
		if b.vel.Z() <= 0 && b.IsWalkable(hit) {
			return hit, true, true
		}
		delta = b.deflect(delta.Sub(b.loc.Sub(start)), hit.Normal)
	}
	if b.vel.Z() <= 0 {
		if floor, ok := b.findFloor(); ok {
			return floor, true, blocked
		}
	}
	return world.Hit{}, false, blocked
}

// deflect projects the remaining movement onto the surface hit and removes the velocity going into it.
func (b *Body) deflect(remaining, normal mgl32.Vec3) mgl32.Vec3 {
	if d := b.vel.Dot(normal); d < 0 {
		b.vel = b.vel.Sub(normal.Mul(d))
	}
	return remaining.Sub(normal.Mul(remaining.Dot(normal)))
}

// findFloor sweeps down from the body for a surface it can stand on.
func (b *Body) findFloor() (world.Hit, bool) {
	end := b.loc.Sub(mgl32.Vec3{0, 0, FloorProbeDistance})
	hit, ok := b.query.SweepCapsule(b.loc, end, b.shape(), b.self)
	if !ok || !b.IsWalkable(hit) {
		return world.Hit{}, false
	}
	return hit, true
}

func (b *Body) land(floor world.Hit) {
	b.falling = false
	b.floor = floor
	b.loc[2] = floor.Location.Z() + SkinWidth
	b.vel[2] = 0
}
