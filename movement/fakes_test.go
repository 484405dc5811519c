package movement

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/stride/game"
	"github.com/oomph-ac/stride/settings"
	"github.com/oomph-ac/stride/world"
)

const testSelf = world.ActorID(42)

type launch struct {
	v                     mgl32.Vec3
	overrideXY, overrideZ bool
}

// fakeBody is a kinematic body that records the commands it receives without integrating them.
type fakeBody struct {
	loc, vel       mgl32.Vec3
	forward, right mgl32.Vec3

	falling  bool
	floor    world.Hit
	walkable bool

	radius, halfHeight float32
	gravityScale       float32
	braking            Braking
	maxSpeed           float32

	forces    []mgl32.Vec3
	launches  []launch
	teleports []mgl32.Vec3
}

func newFakeBody() *fakeBody {
	return &fakeBody{
		loc:          mgl32.Vec3{0, 0, 100},
		forward:      mgl32.Vec3{1, 0, 0},
		right:        mgl32.Vec3{0, 1, 0},
		falling:      true,
		floor:        world.Hit{Blocking: true, Actor: 7, Normal: game.WorldUp},
		walkable:     true,
		radius:       30,
		halfHeight:   90,
		gravityScale: 1,
		braking:      Braking{FrictionFactor: 2, DecelerationWalking: 2048},
	}
}

func (b *fakeBody) Self() world.ActorID        { return testSelf }
func (b *fakeBody) Location() mgl32.Vec3       { return b.loc }
func (b *fakeBody) Velocity() mgl32.Vec3       { return b.vel }
func (b *fakeBody) Forward() mgl32.Vec3        { return b.forward }
func (b *fakeBody) Right() mgl32.Vec3          { return b.right }
func (b *fakeBody) Up() mgl32.Vec3             { return game.WorldUp }
func (b *fakeBody) Falling() bool              { return b.falling }
func (b *fakeBody) IsWalkable(world.Hit) bool  { return b.walkable }
func (b *fakeBody) CapsuleRadius() float32     { return b.radius }
func (b *fakeBody) CapsuleHalfHeight() float32 { return b.halfHeight }
func (b *fakeBody) GravityZ() float32          { return game.DefaultGravityZ * b.gravityScale }
func (b *fakeBody) GravityScale() float32      { return b.gravityScale }
func (b *fakeBody) Braking() Braking           { return b.braking }

func (b *fakeBody) Floor() (world.Hit, bool) {
	if b.falling {
		return world.Hit{}, false
	}
	return b.floor, true
}

func (b *fakeBody) SetVelocity(v mgl32.Vec3)       { b.vel = v }
func (b *fakeBody) AddForce(f mgl32.Vec3)          { b.forces = append(b.forces, f) }
func (b *fakeBody) SetCapsuleHalfHeight(h float32) { b.halfHeight = h }
func (b *fakeBody) SetGravityScale(s float32)      { b.gravityScale = s }
func (b *fakeBody) SetBraking(br Braking)          { b.braking = br }
func (b *fakeBody) SetMaxSpeed(s float32)          { b.maxSpeed = s }

func (b *fakeBody) Teleport(loc mgl32.Vec3) {
	b.loc = loc
	b.teleports = append(b.teleports, loc)
}

func (b *fakeBody) Launch(v mgl32.Vec3, overrideXY, overrideZ bool) {
	b.launches = append(b.launches, launch{v, overrideXY, overrideZ})
	if overrideXY {
		b.vel[0], b.vel[1] = v[0], v[1]
	} else {
		b.vel[0], b.vel[1] = b.vel[0]+v[0], b.vel[1]+v[1]
	}
	if overrideZ {
		b.vel[2] = v[2]
	} else {
		b.vel[2] += v[2]
	}
	b.falling = true
}

// fakeQuery answers casts with the functions it holds and counts every call. Nil functions never hit.
type fakeQuery struct {
	lineTrace func(start, end mgl32.Vec3, ignore []world.ActorID) (world.Hit, bool)
	sweep     func(call int, start, end mgl32.Vec3, shape world.Shape) (world.Hit, bool)
	tags      map[world.ActorID][]world.Tag

	lineCalls, sweepCalls int
}

func (q *fakeQuery) LineTrace(start, end mgl32.Vec3, ignore ...world.ActorID) (world.Hit, bool) {
	q.lineCalls++
	if q.lineTrace == nil {
		return world.Hit{}, false
	}
	return q.lineTrace(start, end, ignore)
}

func (q *fakeQuery) SweepCapsule(start, end mgl32.Vec3, shape world.Shape, _ ...world.ActorID) (world.Hit, bool) {
	q.sweepCalls++
	if q.sweep == nil {
		return world.Hit{}, false
	}
	return q.sweep(q.sweepCalls, start, end, shape)
}

func (q *fakeQuery) Tags(id world.ActorID) ([]world.Tag, bool) {
	tags, ok := q.tags[id]
	return tags, ok
}

type recordingHandler struct {
	log []string
}

func (h *recordingHandler) HandleExit(_ *Controller, mode Mode) {
	h.log = append(h.log, "exit:"+mode.String())
}

func (h *recordingHandler) HandleEnter(_ *Controller, mode Mode) {
	h.log = append(h.log, "enter:"+mode.String())
}

type recordingEffects struct {
	cues []string
}

func (e *recordingEffects) PlaySound(cue string) {
	e.cues = append(e.cues, "sound:"+cue)
}

func (e *recordingEffects) SpawnParticle(cue string, location, _ mgl32.Vec3) {
	e.cues = append(e.cues, fmt.Sprintf("particle:%s@%v", cue, location))
}

func (e *recordingEffects) ShakeCamera(cue string) {
	e.cues = append(e.cues, "shake:"+cue)
}

type fakeCamera struct {
	forward mgl32.Vec3
	roll    float32
	offset  mgl32.Vec3
}

func (c *fakeCamera) Forward() mgl32.Vec3                 { return c.forward }
func (c *fakeCamera) Roll() float32                       { return c.roll }
func (c *fakeCamera) SetRoll(degrees float32)             { c.roll = degrees }
func (c *fakeCamera) RelativeOffset() mgl32.Vec3          { return c.offset }
func (c *fakeCamera) SetRelativeOffset(offset mgl32.Vec3) { c.offset = offset }

type harness struct {
	c       *Controller
	body    *fakeBody
	query   *fakeQuery
	handler *recordingHandler
	effects *recordingEffects
	camera  *fakeCamera
}

func newHarness(mutate ...func(s *settings.Settings)) *harness {
	s := settings.DefaultSettings()
	for _, m := range mutate {
		m(&s)
	}
	h := &harness{
		body:    newFakeBody(),
		query:   &fakeQuery{},
		handler: &recordingHandler{},
		effects: &recordingEffects{},
		camera:  &fakeCamera{forward: mgl32.Vec3{0, 1, 0}, offset: mgl32.Vec3{0, 0, 60}},
	}
	h.c = New(Config{
		Settings: s,
		Query:    h.query,
		Body:     h.body,
		Camera:   h.camera,
		Effects:  h.effects,
		Handler:  h.handler,
	})
	h.handler.log = nil
	return h
}

// land puts the body on the ground and notifies the controller.
func (h *harness) land() {
	h.body.falling = false
	h.c.OnLanded(h.body.floor)
}

// step moves the body forward by distance along X and ticks the controller once.
func (h *harness) step(distance, dt float32) {
	h.body.loc[0] += distance
	h.c.Tick(dt)
}

func (h *harness) tickFor(seconds, dt float32) {
	for t := float32(0); t < seconds-1e-4; t += dt {
		h.c.Tick(dt)
	}
}
