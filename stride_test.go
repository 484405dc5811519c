package stride

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/stride/movement"
	"github.com/oomph-ac/stride/settings"
	"github.com/oomph-ac/stride/world"
)

const dt = 0.05

func newTestSimulation(t *testing.T) *Simulation {
	t.Helper()
	w := world.New(nil)
	w.AddActor(world.Actor{
		Name:  "floor",
		Boxes: []cube.BBox{cube.Box(-5000, -5000, -10, 5000, 5000, 0)},
	})
	s := New(Config{World: w, Workers: 2})
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func spawn(t *testing.T, s *Simulation, name string, location mgl32.Vec3) *Entity {
	t.Helper()
	e, err := s.Spawn(EntityConfig{Name: name, Location: location, Settings: settings.DefaultSettings()})
	if err != nil {
		t.Fatalf("spawn %q: %v", name, err)
	}
	return e
}

func tickUntilGrounded(t *testing.T, s *Simulation, e *Entity) {
	t.Helper()
	for i := 0; i < 40; i++ {
		s.Tick(dt)
		if snap := e.Snapshot(); !snap.Falling {
			if snap.Mode != movement.Walking {
				t.Fatalf("expected %q to walk after landing, got %v", e.Name(), snap.Mode)
			}
			return
		}
	}
	t.Fatalf("expected %q to land", e.Name())
}

func TestSimulationLandsAndWalks(t *testing.T) {
	s := newTestSimulation(t)
	e := spawn(t, s, "runner", mgl32.Vec3{0, 0, 150})
	if snap := e.Snapshot(); snap.Mode != movement.Falling || snap.Tick != 0 {
		t.Fatalf("expected a fresh entity to be falling, got %+v", snap)
	}
	tickUntilGrounded(t, s, e)

	start := e.Snapshot().Location
	e.Apply(Input{Move: mgl32.Vec2{1, 0}})
	for i := 0; i < 20; i++ {
		s.Tick(dt)
	}
	snap := e.Snapshot()
	if moved := snap.Location.X() - start.X(); moved < 300 {
		t.Fatalf("expected to walk forward, moved %v", moved)
	}
	if snap.Velocity.X() > settings.DefaultSettings().Walking.Speed+1 {
		t.Fatalf("expected walking speed to be capped, got %v", snap.Velocity)
	}
	if snap.Tick != s.Ticks() {
		t.Fatalf("expected snapshot of tick %d, got %d", s.Ticks(), snap.Tick)
	}
}

func TestSimulationAppliesActions(t *testing.T) {
	s := newTestSimulation(t)
	e := spawn(t, s, "jumper", mgl32.Vec3{0, 0, 150})
	tickUntilGrounded(t, s, e)

	e.Apply(Input{Actions: []Action{ActionJump}})
	s.Tick(dt)
	snap := e.Snapshot()
	if snap.Mode != movement.Falling || !snap.Falling || snap.Velocity.Z() <= 0 {
		t.Fatalf("expected jump to launch the entity, got %+v", snap)
	}
	if snap.JumpCharges != 1 {
		t.Fatalf("expected a jump charge to be used, got %d", snap.JumpCharges)
	}

	s.Tick(dt)
	if e.Snapshot().JumpCharges != 1 {
		t.Fatal("expected actions to only be applied once")
	}
}

func TestSimulationRunStartAndEnd(t *testing.T) {
	s := newTestSimulation(t)
	e := spawn(t, s, "sprinter", mgl32.Vec3{0, 0, 150})
	tickUntilGrounded(t, s, e)

	e.Apply(Input{Move: mgl32.Vec2{1, 0}, Actions: []Action{ActionRunStart}})
	s.Tick(dt)
	if snap := e.Snapshot(); snap.Mode != movement.Running {
		t.Fatalf("expected to run, got %v", snap.Mode)
	}
	e.Apply(Input{Move: mgl32.Vec2{1, 0}, Actions: []Action{ActionRunEnd}})
	s.Tick(dt)
	if snap := e.Snapshot(); snap.Mode != movement.Walking {
		t.Fatalf("expected to walk again, got %v", snap.Mode)
	}
}

func TestSimulationIgnoresMoveInputWhileDashing(t *testing.T) {
	s := newTestSimulation(t)
	e := spawn(t, s, "dasher", mgl32.Vec3{0, 0, 150})
	tickUntilGrounded(t, s, e)

	e.Apply(Input{Move: mgl32.Vec2{1, 0}, Actions: []Action{ActionDash}})
	s.Tick(dt)
	if snap := e.Snapshot(); snap.Mode != movement.Dashing {
		t.Fatalf("expected to dash, got %v", snap.Mode)
	}
	if in := e.body.Input(); in != (mgl32.Vec2{}) {
		t.Fatalf("expected the body to ignore move input while dashing, got %v", in)
	}

	for i := 0; i < 20 && e.Snapshot().Mode == movement.Dashing; i++ {
		s.Tick(dt)
	}
	if mode := e.Snapshot().Mode; mode == movement.Dashing {
		t.Fatal("expected the dash to end")
	}
	s.Tick(dt)
	if in := e.body.Input(); in != (mgl32.Vec2{1, 0}) {
		t.Fatalf("expected move input to drive the body again after the dash, got %v", in)
	}
}

func TestSimulationEntities(t *testing.T) {
	s := newTestSimulation(t)
	for _, name := range []string{"c", "a", "b"} {
		spawn(t, s, name, mgl32.Vec3{})
	}
	if _, err := s.Spawn(EntityConfig{Name: "a", Settings: settings.DefaultSettings()}); err == nil {
		t.Fatal("expected duplicate names to be rejected")
	}

	var names []string
	for _, e := range s.Entities() {
		names = append(names, e.Name())
	}
	if len(names) != 3 || names[0] != "c" || names[1] != "a" || names[2] != "b" {
		t.Fatalf("expected entities in spawn order, got %v", names)
	}
	if e, ok := s.Entity("a"); !ok || e.ID() != world.ActorIDFromName("a") {
		t.Fatal("expected to look up entity by name")
	}
	if !s.Remove("a") || s.Remove("a") {
		t.Fatal("expected entity to be removed exactly once")
	}
	if _, ok := s.Entity("a"); ok {
		t.Fatal("expected removed entity to be gone")
	}
}

func TestSimulationRejectsInvalidSettings(t *testing.T) {
	s := newTestSimulation(t)
	st := settings.DefaultSettings()
	st.Walking.Speed = -1
	if _, err := s.Spawn(EntityConfig{Name: "broken", Settings: st}); err == nil {
		t.Fatal("expected invalid settings to be rejected")
	}
}

type panicHandler struct {
	movement.NopHandler
}

func (panicHandler) HandleEnter(_ *movement.Controller, mode movement.Mode) {
	if mode == movement.Jumping {
		panic("jump handler failed")
	}
}

func TestSimulationRecoversEntityPanic(t *testing.T) {
	s := newTestSimulation(t)
	bad, err := s.Spawn(EntityConfig{
		Name:     "bad",
		Location: mgl32.Vec3{0, 0, 150},
		Settings: settings.DefaultSettings(),
		Handler:  panicHandler{},
	})
	if err != nil {
		t.Fatal(err)
	}
	good := spawn(t, s, "good", mgl32.Vec3{500, 0, 150})
	tickUntilGrounded(t, s, bad)
	tickUntilGrounded(t, s, good)

	bad.Apply(Input{Actions: []Action{ActionJump}})
	good.Apply(Input{Move: mgl32.Vec2{1, 0}})
	before := good.Snapshot()
	s.Tick(dt)

	if after := good.Snapshot(); after.Tick != before.Tick+1 || after.Location.X() <= before.Location.X() {
		t.Fatalf("expected other entities to keep ticking, got %+v", after)
	}
	s.Tick(dt)
	if good.Snapshot().Tick != s.Ticks() {
		t.Fatal("expected the simulation to keep running after a panic")
	}
}

func TestSimulationRunAndClose(t *testing.T) {
	w := world.New(nil)
	s := New(Config{World: w, TickRate: time.Millisecond})
	spawn(t, s, "idle", mgl32.Vec3{0, 0, 150})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := s.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected Run to stop with the context, got %v", err)
	}
	if s.Ticks() == 0 {
		t.Fatal("expected Run to tick the simulation")
	}

	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err == nil {
		t.Fatal("expected second close to fail")
	}
	ticks := s.Ticks()
	s.Tick(dt)
	if s.Ticks() != ticks {
		t.Fatal("expected a closed simulation not to tick")
	}
	if _, err := s.Spawn(EntityConfig{Name: "late", Settings: settings.DefaultSettings()}); err == nil {
		t.Fatal("expected a closed simulation to reject entities")
	}
}
