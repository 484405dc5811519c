package movement

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/stride/world"
)

// Braking holds the braking parameters of a body.
type Braking struct {
	FrictionFactor      float32
	DecelerationWalking float32
}

// Body is the kinematic body of a controlled entity. The controller reads its state and issues
// commands to it; integration and collision response are left to the implementation.
type Body interface {
	// Self returns the identity of the body, ignored by every cast the controller performs.
	Self() world.ActorID

	Location() mgl32.Vec3
	Velocity() mgl32.Vec3
	Forward() mgl32.Vec3
	Right() mgl32.Vec3
	Up() mgl32.Vec3

	// Falling returns true if the body is airborne.
	Falling() bool
	// Floor returns the floor the body is standing on, if any.
	Floor() (world.Hit, bool)
	// IsWalkable returns true if the body could stand on the surface hit.
	IsWalkable(hit world.Hit) bool

	CapsuleRadius() float32
	CapsuleHalfHeight() float32
	// GravityZ returns the gravity currently applied to the body, with its gravity scale applied.
	GravityZ() float32
	GravityScale() float32
	Braking() Braking

	SetVelocity(v mgl32.Vec3)
	Teleport(location mgl32.Vec3)
	// Launch adds v to the velocity of the body, or replaces the horizontal and vertical components
	// of its velocity if the respective override flags are set. A launched body becomes airborne.
	Launch(v mgl32.Vec3, overrideXY, overrideZ bool)
	AddForce(f mgl32.Vec3)
	SetCapsuleHalfHeight(halfHeight float32)
	SetGravityScale(scale float32)
	SetBraking(b Braking)
	SetMaxSpeed(speed float32)
}

// Camera is the optional first person camera of an entity.
type Camera interface {
	// Forward returns the direction the camera is facing.
	Forward() mgl32.Vec3
	// Roll returns the roll of the camera in degrees.
	Roll() float32
	SetRoll(degrees float32)
	// RelativeOffset returns the offset of the camera relative to its socket.
	RelativeOffset() mgl32.Vec3
	SetRelativeOffset(offset mgl32.Vec3)
}

// Effects is the optional fire-and-forget effects layer. Cues are the names configured in the
// settings; the controller never passes an empty cue.
type Effects interface {
	PlaySound(cue string)
	SpawnParticle(cue string, location, normal mgl32.Vec3)
	ShakeCamera(cue string)
}

// Handler observes the mode switches of a controller.
type Handler interface {
	// HandleExit is called after a mode has been cleaned up.
	HandleExit(c *Controller, mode Mode)
	// HandleEnter is called after a mode has been set up.
	HandleEnter(c *Controller, mode Mode)
}

// NopHandler implements Handler and does nothing.
type NopHandler struct{}

func (NopHandler) HandleExit(*Controller, Mode)  {}
func (NopHandler) HandleEnter(*Controller, Mode) {}

type nopCamera struct {
	roll   float32
	offset mgl32.Vec3
}

func (*nopCamera) Forward() mgl32.Vec3                   { return mgl32.Vec3{} }
func (c *nopCamera) Roll() float32                       { return c.roll }
func (c *nopCamera) SetRoll(degrees float32)             { c.roll = degrees }
func (c *nopCamera) RelativeOffset() mgl32.Vec3          { return c.offset }
func (c *nopCamera) SetRelativeOffset(offset mgl32.Vec3) { c.offset = offset }

type nopEffects struct{}

func (nopEffects) PlaySound(string)                             {}
func (nopEffects) SpawnParticle(string, mgl32.Vec3, mgl32.Vec3) {}
func (nopEffects) ShakeCamera(string)                           {}
