package world

import (
	"io"
	"slices"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/stride/game"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
)

// Actor is a static collision object placed in a World.
type Actor struct {
	// Name identifies the actor. Its ActorID is derived from it, so names must be unique.
	Name string
	// Boxes are the world-space collision boxes of the actor.
	Boxes []cube.BBox
	Tags  []Tag
	// SimulatesPhysics marks actors driven by physics simulation. They still block casts.
	SimulatesPhysics bool
	// Overlap actors never block casts.
	Overlap bool
}

// World is an in-memory box world implementing Query. It is safe for concurrent use: casts
// take a read lock, edits take a write lock.
type World struct {
	actors map[ActorID]*Actor
	order  []ActorID

	logger *logrus.Logger

	deadlock.RWMutex
}

// New returns an empty World. A nil logger discards all output.
func New(logger *logrus.Logger) *World {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &World{
		actors: make(map[ActorID]*Actor),
		logger: logger,
	}
}

// AddActor adds an actor to the world, replacing any actor with the same name, and returns its ID.
func (w *World) AddActor(a Actor) ActorID {
	id := ActorIDFromName(a.Name)
	a.Boxes = slices.Clone(a.Boxes)
	a.Tags = slices.Clone(a.Tags)

	w.Lock()
	defer w.Unlock()

	if _, ok := w.actors[id]; !ok {
		w.order = append(w.order, id)
	}
	w.actors[id] = &a
	w.logger.Debugf("world: added actor %q (id=%d boxes=%d tags=%v)", a.Name, id, len(a.Boxes), a.Tags)
	return id
}

// RemoveActor removes an actor from the world. Identity tokens referring to it stay valid
// for comparison, but Tags will report it as missing.
func (w *World) RemoveActor(id ActorID) {
	w.Lock()
	defer w.Unlock()

	if _, ok := w.actors[id]; !ok {
		return
	}
	delete(w.actors, id)
	w.order = slices.DeleteFunc(w.order, func(o ActorID) bool { return o == id })
	w.logger.Debugf("world: removed actor %d", id)
}

// SetTags replaces the tags of an actor. It returns false if the actor does not exist.
func (w *World) SetTags(id ActorID, tags ...Tag) bool {
	w.Lock()
	defer w.Unlock()

	a, ok := w.actors[id]
	if !ok {
		return false
	}
	a.Tags = slices.Clone(tags)
	return true
}

// Tags ...
func (w *World) Tags(id ActorID) ([]Tag, bool) {
	w.RLock()
	defer w.RUnlock()

	a, ok := w.actors[id]
	if !ok {
		return nil, false
	}
	return slices.Clone(a.Tags), true
}

// LineTrace traces a line from start to end. Boxes that contain the start point are skipped.
func (w *World) LineTrace(start, end mgl32.Vec3, ignore ...ActorID) (Hit, bool) {
	w.RLock()
	defer w.RUnlock()

	var (
		best     Hit
		bestDist = float32(math32.MaxFloat32)
		found    bool
	)
	for _, id := range w.order {
		a := w.actors[id]
		if a.Overlap || slices.Contains(ignore, id) {
			continue
		}
		for _, bb := range a.Boxes {
			if bb.Vec3Within(start) {
				continue
			}
			result, ok := trace.BBoxIntercept(bb, start, end)
			if !ok {
				continue
			}
			pos := result.Position()
			if dist := pos.Sub(start).LenSqr(); dist < bestDist {
				bestDist, found = dist, true
				best = w.hit(id, a, pos, pos, faceNormal(bb, pos), start, end)
			}
		}
	}
	return best, found
}

// SweepCapsule sweeps a capsule from start to end. The capsule is approximated by its bounding
// box, swept as a point against each box expanded by the capsule's extents. A capsule that
// starts inside a box is reported as a blocking hit at the start location.
func (w *World) SweepCapsule(start, end mgl32.Vec3, shape Shape, ignore ...ActorID) (Hit, bool) {
	w.RLock()
	defer w.RUnlock()

	var (
		best     Hit
		bestDist = float32(math32.MaxFloat32)
		found    bool
	)
	dir := game.SafeNormal(end.Sub(start))
	for _, id := range w.order {
		a := w.actors[id]
		if a.Overlap || slices.Contains(ignore, id) {
			continue
		}
		for _, bb := range a.Boxes {
			expanded := expandBox(bb, shape)
			if strictlyWithin(expanded, start) {
				if !found || bestDist > 0 {
					bestDist, found = 0, true
					best = w.hit(id, a, start, closestPoint(bb, start), dir.Mul(-1), start, end)
				}
				continue
			}
			result, ok := trace.BBoxIntercept(expanded, start, end)
			if !ok {
				continue
			}
			pos := result.Position()
			if dist := pos.Sub(start).LenSqr(); dist < bestDist {
				bestDist, found = dist, true
				best = w.hit(id, a, pos, closestPoint(bb, pos), faceNormal(expanded, pos), start, end)
			}
		}
	}
	return best, found
}

func (w *World) hit(id ActorID, a *Actor, location, impact, normal, start, end mgl32.Vec3) Hit {
	return Hit{
		Blocking:         true,
		Actor:            id,
		Tags:             slices.Clone(a.Tags),
		SimulatesPhysics: a.SimulatesPhysics,
		Location:         location,
		ImpactPoint:      impact,
		Normal:           normal,
		TraceStart:       start,
		TraceEnd:         end,
	}
}

// expandBox grows a box by the extents of a Z-up capsule.
func expandBox(bb cube.BBox, shape Shape) cube.BBox {
	r, h := shape.Radius, shape.HalfHeight
	return cube.Box(
		bb.Min().X()-r, bb.Min().Y()-r, bb.Min().Z()-h,
		bb.Max().X()+r, bb.Max().Y()+r, bb.Max().Z()+h,
	)
}

// strictlyWithin reports whether v is inside bb and not resting on one of its faces.
func strictlyWithin(bb cube.BBox, v mgl32.Vec3) bool {
	const eps = 1e-3
	for i := range 3 {
		if v[i] <= bb.Min()[i]+eps || v[i] >= bb.Max()[i]-eps {
			return false
		}
	}
	return true
}

// closestPoint returns the point on or in bb closest to v.
func closestPoint(bb cube.BBox, v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		game.ClampFloat(v[0], bb.Min()[0], bb.Max()[0]),
		game.ClampFloat(v[1], bb.Min()[1], bb.Max()[1]),
		game.ClampFloat(v[2], bb.Min()[2], bb.Max()[2]),
	}
}

// faceNormal returns the outward normal of the face of bb closest to v.
func faceNormal(bb cube.BBox, v mgl32.Vec3) mgl32.Vec3 {
	var (
		normal mgl32.Vec3
		best   = float32(math32.MaxFloat32)
	)
	for i := range 3 {
		if d := math32.Abs(v[i] - bb.Min()[i]); d < best {
			best = d
			normal = mgl32.Vec3{}
			normal[i] = -1
		}
		if d := math32.Abs(v[i] - bb.Max()[i]); d < best {
			best = d
			normal = mgl32.Vec3{}
			normal[i] = 1
		}
	}
	return normal
}
