package world

import (
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/stride/game"
)

func newTestWorld() (*World, ActorID, ActorID) {
	w := New(nil)
	floor := w.AddActor(Actor{
		Name:  "floor",
		Boxes: []cube.BBox{cube.Box(-1000, -1000, -10, 1000, 1000, 0)},
	})
	wall := w.AddActor(Actor{
		Name:  "wall",
		Boxes: []cube.BBox{cube.Box(100, -500, 0, 120, 500, 300)},
		Tags:  []Tag{TagWallRun},
	})
	return w, floor, wall
}

func TestLineTraceHitsNearestFace(t *testing.T) {
	w, _, wall := newTestWorld()

	hit, ok := w.LineTrace(mgl32.Vec3{0, 0, 100}, mgl32.Vec3{200, 0, 100})
	if !ok {
		t.Fatal("expected trace to hit the wall")
	}
	if hit.Actor != wall || !hit.Blocking {
		t.Fatalf("expected blocking hit on wall, got actor=%d blocking=%v", hit.Actor, hit.Blocking)
	}
	if !game.Float32ApproxEq(hit.Location.X(), 100) {
		t.Fatalf("expected impact at x=100, got %v", hit.Location)
	}
	if !game.Vec3ApproxEq(hit.Normal, mgl32.Vec3{-1, 0, 0}, 1e-4) {
		t.Fatalf("expected normal (-1,0,0), got %v", hit.Normal)
	}
	if !hit.HasTag(TagWallRun) {
		t.Fatalf("expected hit to carry wall-run tag, got %v", hit.Tags)
	}
}

func TestLineTraceIgnoresActors(t *testing.T) {
	w, floor, _ := newTestWorld()

	if _, ok := w.LineTrace(mgl32.Vec3{0, 0, 50}, mgl32.Vec3{0, 0, -50}); !ok {
		t.Fatal("expected downward trace to hit the floor")
	}
	if hit, ok := w.LineTrace(mgl32.Vec3{0, 0, 50}, mgl32.Vec3{0, 0, -50}, floor); ok {
		t.Fatalf("expected no hit when ignoring the floor, got %+v", hit)
	}
}

func TestLineTraceMiss(t *testing.T) {
	w, _, _ := newTestWorld()
	if _, ok := w.LineTrace(mgl32.Vec3{0, 0, 100}, mgl32.Vec3{0, 50, 100}); ok {
		t.Fatal("expected trace through empty space to miss")
	}
}

func TestSweepCapsuleUsesShapeExtents(t *testing.T) {
	w, floor, wall := newTestWorld()
	shape := Shape{Radius: 30, HalfHeight: 90}

	hit, ok := w.SweepCapsule(mgl32.Vec3{0, 0, 100}, mgl32.Vec3{200, 0, 100}, shape, floor)
	if !ok || hit.Actor != wall {
		t.Fatalf("expected sweep to hit the wall, got ok=%v hit=%+v", ok, hit)
	}
	// The capsule stops one radius before the wall face.
	if !game.Float32ApproxEq(hit.Location.X(), 70) {
		t.Fatalf("expected capsule location x=70, got %v", hit.Location)
	}
	if !game.Float32ApproxEq(hit.ImpactPoint.X(), 100) {
		t.Fatalf("expected impact point on the wall face, got %v", hit.ImpactPoint)
	}
	if !game.Vec3ApproxEq(hit.Normal, mgl32.Vec3{-1, 0, 0}, 1e-4) {
		t.Fatalf("expected normal (-1,0,0), got %v", hit.Normal)
	}
}

func TestSweepCapsuleStartPenetrating(t *testing.T) {
	w, floor, wall := newTestWorld()
	shape := Shape{Radius: 30, HalfHeight: 90}

	start := mgl32.Vec3{90, 0, 100}
	hit, ok := w.SweepCapsule(start, mgl32.Vec3{90, 0, 200}, shape, floor)
	if !ok || hit.Actor != wall {
		t.Fatalf("expected initial overlap to be reported, got ok=%v hit=%+v", ok, hit)
	}
	if hit.Location != start {
		t.Fatalf("expected hit at start location, got %v", hit.Location)
	}
}

func TestSweepCapsuleOverTheTop(t *testing.T) {
	w, floor, _ := newTestWorld()
	shape := Shape{Radius: 30, HalfHeight: 90}

	// Bottom of the capsule rests above the wall top.
	start := mgl32.Vec3{0, 0, 300 + 90 + 5}
	if hit, ok := w.SweepCapsule(start, start.Add(mgl32.Vec3{200, 0, 0}), shape, floor); ok {
		t.Fatalf("expected sweep over the wall to miss, got %+v", hit)
	}
}

func TestTagsAndRemoval(t *testing.T) {
	w, _, wall := newTestWorld()

	tags, ok := w.Tags(wall)
	if !ok || len(tags) != 1 || tags[0] != TagWallRun {
		t.Fatalf("unexpected tags %v (ok=%v)", tags, ok)
	}
	if !w.SetTags(wall, TagUnmountable) {
		t.Fatal("expected SetTags to find the wall")
	}
	if tags, _ := w.Tags(wall); len(tags) != 1 || tags[0] != TagUnmountable {
		t.Fatalf("expected tags to be replaced, got %v", tags)
	}

	w.RemoveActor(wall)
	if _, ok := w.Tags(wall); ok {
		t.Fatal("expected removed actor to be missing")
	}
	if w.SetTags(wall, TagWallRun) {
		t.Fatal("expected SetTags on a removed actor to fail")
	}
	if _, ok := w.LineTrace(mgl32.Vec3{0, 0, 100}, mgl32.Vec3{200, 0, 100}); ok {
		t.Fatal("expected removed actor to stop blocking traces")
	}
}

func TestActorIDFromNameIsStable(t *testing.T) {
	if ActorIDFromName("wall") != ActorIDFromName("wall") {
		t.Fatal("expected ids derived from the same name to match")
	}
	if ActorIDFromName("wall") == ActorIDFromName("floor") {
		t.Fatal("expected ids derived from different names to differ")
	}
}
