package stride

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/stride/bodysim"
	"github.com/oomph-ac/stride/movement"
	"github.com/oomph-ac/stride/settings"
	"github.com/oomph-ac/stride/world"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
)

// Action is a discrete input event of an entity.
type Action uint8

const (
	ActionJump Action = iota
	ActionDash
	// ActionMantle should be sent every tick the mantle input is held.
	ActionMantle
	ActionCrouch
	ActionRunStart
	ActionRunEnd
)

// String ...
func (a Action) String() string {
	switch a {
	case ActionJump:
		return "jump"
	case ActionDash:
		return "dash"
	case ActionMantle:
		return "mantle"
	case ActionCrouch:
		return "crouch"
	case ActionRunStart:
		return "run_start"
	case ActionRunEnd:
		return "run_end"
	}
	return "unknown"
}

// Input is the input of an entity for the next tick.
type Input struct {
	// Move is the move axis, X being forward and Y being right.
	Move mgl32.Vec2
	// Yaw and Pitch are the view rotation in degrees.
	Yaw, Pitch float32
	// Actions are applied in order before the entity is ticked.
	Actions []Action
}

// EntityConfig holds the configuration of an entity spawned in a Simulation.
type EntityConfig struct {
	Name     string
	Location mgl32.Vec3
	Yaw      float32
	Settings settings.Settings

	// Body overrides the default body options.
	Body *bodysim.Options
	// Handler observes the mode switches of the entity.
	Handler  movement.Handler
	Debugger movement.Debugger
}

// Snapshot is the state of an entity at the end of a tick.
type Snapshot struct {
	Tick     uint64
	Mode     movement.Mode
	Location mgl32.Vec3
	Velocity mgl32.Vec3
	Falling  bool

	JumpCharges    int
	DashCharges    float32
	RunningStamina float32

	CameraRoll   float32
	CameraOffset mgl32.Vec3
}

// Entity is an entity of a Simulation: a movement controller driving a simulated body. Input may be
// applied from any goroutine; the controller itself is only touched while the entity is ticked.
type Entity struct {
	name string
	id   world.ActorID

	c      *movement.Controller
	body   *bodysim.Body
	camera *viewCamera

	mu      deadlock.Mutex
	input   Input
	pending []Action
	snap    Snapshot
}

func newEntity(cfg EntityConfig, w *world.World, log *logrus.Logger) *Entity {
	e := &Entity{name: cfg.Name, id: world.ActorIDFromName(cfg.Name)}
	entry := log.WithField("entity", cfg.Name)

	opts := bodysim.DefaultOptions()
	if cfg.Body != nil {
		opts = *cfg.Body
	}
	if opts.Debugf == nil {
		opts.Debugf = entry.Debugf
	}
	e.body = bodysim.New(e.id, w, cfg.Location, opts)
	e.body.SetRotation(cfg.Yaw)
	e.camera = &viewCamera{body: e.body, offset: mgl32.Vec3{0, 0, eyeHeight}}
	e.input.Yaw = cfg.Yaw

	e.c = movement.New(movement.Config{
		Settings: cfg.Settings,
		Query:    w,
		Body:     e.body,
		Camera:   e.camera,
		Effects:  logEffects{log: entry},
		Handler:  cfg.Handler,
		Log:      log,
		Debugger: cfg.Debugger,
	})
	e.body.Handle(e.c)
	e.snap = e.snapshot(0)
	return e
}

// Name ...
func (e *Entity) Name() string {
	return e.name
}

// ID returns the identity of the entity, ignored by its own casts.
func (e *Entity) ID() world.ActorID {
	return e.id
}

// Apply sets the input of the entity for the next tick. Actions accumulate until the entity is ticked.
func (e *Entity) Apply(in Input) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.input.Move, e.input.Yaw, e.input.Pitch = in.Move, in.Yaw, in.Pitch
	e.pending = append(e.pending, in.Actions...)
}

// Snapshot returns the state of the entity at the end of its last tick.
func (e *Entity) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snap
}

func (e *Entity) tick(tick uint64, dt float32) {
	e.mu.Lock()
	in := e.input
	actions := slices.Clone(e.pending)
	e.pending = e.pending[:0]
	e.mu.Unlock()

	e.body.SetRotation(in.Yaw)
	e.camera.pitch = in.Pitch
	e.c.SetMoveInput(in.Move)
	for _, a := range actions {
		e.act(a)
	}

	e.c.Tick(dt)
	if e.c.AcceptsMoveInput() {
		e.body.SetInput(in.Move)
	} else {
		e.body.SetInput(mgl32.Vec2{})
	}
	e.body.Simulate(dt)

	snap := e.snapshot(tick)
	e.mu.Lock()
	e.snap = snap
	e.mu.Unlock()
}

func (e *Entity) act(a Action) {
	switch a {
	case ActionJump:
		e.c.OnJump()
	case ActionDash:
		e.c.OnDash()
	case ActionMantle:
		e.c.OnMantle()
	case ActionCrouch:
		e.c.OnCrouch()
	case ActionRunStart:
		e.c.OnRunStart()
	case ActionRunEnd:
		e.c.OnRunEnd()
	}
}

func (e *Entity) snapshot(tick uint64) Snapshot {
	st := e.c.State()
	return Snapshot{
		Tick:           tick,
		Mode:           st.Current,
		Location:       e.body.Location(),
		Velocity:       e.body.Velocity(),
		Falling:        e.body.Falling(),
		JumpCharges:    st.JumpCharges,
		DashCharges:    st.DashCharges,
		RunningStamina: st.RunningStamina,
		CameraRoll:     e.camera.roll,
		CameraOffset:   e.camera.offset,
	}
}
