package world

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/zeebo/xxh3"
)

// ActorID is a non-owning identity token for an actor in the world. It is only ever compared
// for equality; a zero ActorID refers to no actor.
type ActorID uint64

// ActorIDFromName returns a stable ActorID derived from the name passed.
func ActorIDFromName(name string) ActorID {
	id := ActorID(xxh3.HashString(name))
	if id == 0 {
		// Zero is reserved for "no actor".
		id = 1
	}
	return id
}

// Tag is a gameplay marker attached to an actor.
type Tag string

const (
	// TagWallRun marks surfaces that may be wall-run on.
	TagWallRun Tag = "WallRunObject"
	// TagUnmountable marks surfaces that may never be mantled on.
	TagUnmountable Tag = "Unmountable"
)

// Shape is a Z-up capsule used by sweeps.
type Shape struct {
	Radius     float32
	HalfHeight float32
}

// Hit describes the first blocking contact of a cast.
type Hit struct {
	// Blocking is true if the cast was stopped by the hit.
	Blocking bool
	// Actor is the actor that was hit.
	Actor ActorID
	// Tags are the tags the actor carried at the time of the hit.
	Tags []Tag
	// SimulatesPhysics is true if the hit actor is driven by physics simulation.
	SimulatesPhysics bool

	// Location is the position of the cast shape at the time of impact. For line traces this is
	// the same as ImpactPoint.
	Location mgl32.Vec3
	// ImpactPoint is the point of contact on the hit surface.
	ImpactPoint mgl32.Vec3
	// Normal is the surface normal at the impact point.
	Normal mgl32.Vec3

	TraceStart, TraceEnd mgl32.Vec3
}

// HasTag returns true if the hit actor carried the tag passed.
func (h Hit) HasTag(tag Tag) bool {
	return slices.Contains(h.Tags, tag)
}

// Query is the physics query service consumed by the movement core. Implementations must be
// safe to call from the goroutine ticking an entity; casts are expected to be short range.
type Query interface {
	// SweepCapsule sweeps a capsule from start to end and returns the first blocking hit.
	SweepCapsule(start, end mgl32.Vec3, shape Shape, ignore ...ActorID) (Hit, bool)
	// LineTrace traces a line from start to end and returns the first blocking hit.
	LineTrace(start, end mgl32.Vec3, ignore ...ActorID) (Hit, bool)
	// Tags returns the current tags of an actor. ok is false if the actor no longer exists.
	Tags(id ActorID) (tags []Tag, ok bool)
}
