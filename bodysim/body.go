package bodysim

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/stride/assert"
	"github.com/oomph-ac/stride/game"
	"github.com/oomph-ac/stride/movement"
	"github.com/oomph-ac/stride/world"
)

// Options define the shape and tuning of a simulated body.
type Options struct {
	Radius     float32
	HalfHeight float32

	GravityZ        float32
	WalkableFloorZ  float32
	MaxAcceleration float32
	// AirControl is the fraction of MaxAcceleration available while falling.
	AirControl     float32
	Mass           float32
	GroundFriction float32

	Braking movement.Braking

	// Debugf receives landing and ledge traces for callers that need deep diagnostics.
	Debugf func(format string, args ...any)
}

// DefaultOptions returns the options of a standard humanoid body.
func DefaultOptions() Options {
	return Options{
		Radius:          DefaultRadius,
		HalfHeight:      DefaultHalfHeight,
		GravityZ:        game.DefaultGravityZ,
		WalkableFloorZ:  DefaultWalkableFloorZ,
		MaxAcceleration: DefaultMaxAcceleration,
		AirControl:      DefaultAirControl,
		Mass:            DefaultMass,
		GroundFriction:  DefaultGroundFriction,
		Braking: movement.Braking{
			FrictionFactor:      DefaultFrictionFactor,
			DecelerationWalking: DefaultDecelerationWalking,
		},
	}
}

// Listener is notified of the ground contact changes of a body. It is called at the end of Simulate.
type Listener interface {
	OnLanded(hit world.Hit)
	OnWalkedOffLedge()
}

// NopListener implements Listener and does nothing.
type NopListener struct{}

func (NopListener) OnLanded(world.Hit) {}
func (NopListener) OnWalkedOffLedge()  {}

// Body is a capsule simulated against a world.Query. It implements movement.Body and is not safe
// for concurrent use.
type Body struct {
	self     world.ActorID
	query    world.Query
	opts     Options
	listener Listener

	loc, vel mgl32.Vec3
	yaw      float32
	input    mgl32.Vec2

	falling bool
	floor   world.Hit

	halfHeight   float32
	gravityScale float32
	braking      movement.Braking
	maxSpeed     float32

	force mgl32.Vec3
}

// New creates a falling body at the location passed.
func New(self world.ActorID, q world.Query, location mgl32.Vec3, opts Options) *Body {
	assert.IsTrue(q != nil, "bodysim.New: nil query")
	return &Body{
		self:         self,
		query:        q,
		opts:         opts,
		listener:     NopListener{},
		loc:          location,
		falling:      true,
		halfHeight:   opts.HalfHeight,
		gravityScale: 1,
		braking:      opts.Braking,
	}
}

// Handle sets the listener of the body. A nil listener resets it to NopListener.
func (b *Body) Handle(l Listener) {
	if l == nil {
		l = NopListener{}
	}
	b.listener = l
}

// SetRotation sets the yaw of the body in degrees.
func (b *Body) SetRotation(yaw float32) {
	b.yaw = yaw
}

// Yaw ...
func (b *Body) Yaw() float32 {
	return b.yaw
}

// Input returns the move axis the body accelerates along.
func (b *Body) Input() mgl32.Vec2 {
	return b.input
}

// SetInput sets the move axis the body accelerates along, X being forward and Y being right.
func (b *Body) SetInput(input mgl32.Vec2) {
	b.input = mgl32.Vec2{game.ClampFloat(input.X(), -1, 1), game.ClampFloat(input.Y(), -1, 1)}
}

func (b *Body) Self() world.ActorID  { return b.self }
func (b *Body) Location() mgl32.Vec3 { return b.loc }
func (b *Body) Velocity() mgl32.Vec3 { return b.vel }
func (b *Body) Up() mgl32.Vec3       { return game.WorldUp }

func (b *Body) Forward() mgl32.Vec3 {
	return game.DirectionVector(b.yaw, 0)
}

func (b *Body) Right() mgl32.Vec3 {
	return game.RightVector(b.yaw)
}

func (b *Body) Falling() bool {
	return b.falling
}

func (b *Body) Floor() (world.Hit, bool) {
	if b.falling {
		return world.Hit{}, false
	}
	return b.floor, true
}

// IsWalkable returns true if the surface hit is blocking and flat enough to stand on.
func (b *Body) IsWalkable(hit world.Hit) bool {
	return hit.Blocking && hit.Normal.Z() >= b.opts.WalkableFloorZ
}

func (b *Body) CapsuleRadius() float32     { return b.opts.Radius }
func (b *Body) CapsuleHalfHeight() float32 { return b.halfHeight }
func (b *Body) GravityZ() float32          { return b.opts.GravityZ * b.gravityScale }
func (b *Body) GravityScale() float32      { return b.gravityScale }
func (b *Body) Braking() movement.Braking  { return b.braking }
func (b *Body) MaxSpeed() float32          { return b.maxSpeed }

func (b *Body) SetVelocity(v mgl32.Vec3)       { b.vel = v }
func (b *Body) Teleport(location mgl32.Vec3)   { b.loc = location }
func (b *Body) AddForce(f mgl32.Vec3)          { b.force = b.force.Add(f) }
func (b *Body) SetGravityScale(scale float32)  { b.gravityScale = scale }
func (b *Body) SetBraking(br movement.Braking) { b.braking = br }
func (b *Body) SetMaxSpeed(speed float32)      { b.maxSpeed = speed }

// Launch adds v to the velocity of the body, or replaces its horizontal and vertical components if
// the respective override flags are set. The body is airborne afterwards.
func (b *Body) Launch(v mgl32.Vec3, overrideXY, overrideZ bool) {
	if overrideXY {
		b.vel[0], b.vel[1] = v[0], v[1]
	} else {
		b.vel[0] += v[0]
		b.vel[1] += v[1]
	}
	if overrideZ {
		b.vel[2] = v[2]
	} else {
		b.vel[2] += v[2]
	}
	b.falling = true
	b.floor = world.Hit{}
}

// SetCapsuleHalfHeight resizes the capsule. A grounded body keeps its feet where they are.
func (b *Body) SetCapsuleHalfHeight(halfHeight float32) {
	if !b.falling {
		b.loc[2] += halfHeight - b.halfHeight
	}
	b.halfHeight = halfHeight
}

func (b *Body) shape() world.Shape {
	return world.Shape{Radius: b.opts.Radius, HalfHeight: b.halfHeight}
}

func (b *Body) debugf(format string, args ...any) {
	if b.opts.Debugf != nil {
		b.opts.Debugf(format, args...)
	}
}
