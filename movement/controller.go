package movement

import (
	"io"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/stride/assert"
	"github.com/oomph-ac/stride/settings"
	"github.com/oomph-ac/stride/timeline"
	"github.com/oomph-ac/stride/utils"
	"github.com/oomph-ac/stride/world"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// historySize is the amount of transitions kept by a controller for debugging.
const historySize = 32

// Config holds the collaborators of a Controller. Query and Body are required; every other field
// may be left empty.
type Config struct {
	Settings settings.Settings

	Query world.Query
	Body  Body

	Camera  Camera
	Effects Effects
	Handler Handler

	Log      *logrus.Logger
	Debugger Debugger
}

// Transition is a mode switch recorded by a controller.
type Transition struct {
	From, To Mode
	// Forced is true if the switch bypassed the eligibility check of the mode entered.
	Forced bool
}

// Controller is the movement state machine of a single entity. It is not safe for concurrent use:
// every method must be called from the goroutine that ticks the entity.
type Controller struct {
	s     settings.Settings
	state MovementState

	query   world.Query
	body    Body
	camera  Camera
	effects Effects
	handler Handler

	log *logrus.Logger
	dbg Debugger

	policies [modeCount]Policy

	timelines timeline.Set
	tl        struct {
		crouch, slideInfluence            *timeline.Timeline
		staminaDepletion, staminaRecovery *timeline.Timeline
		dash, dashRecovery                *timeline.Timeline
		wallRunGravity, wallRunRecover    *timeline.Timeline
		mantleUp, mantleForward           *timeline.Timeline
		cameraBob, landingEffectsRestore  *timeline.Timeline
	}

	defaultHalfHeight   float32
	initialGravityScale float32
	initialBraking      Braking
	initialCameraOffset mgl32.Vec3

	dashDirection mgl32.Vec3
	// mantleUpTarget and mantleForwardTarget are the start and end of the last passing clearance sweep.
	mantleUpTarget, mantleForwardTarget mgl32.Vec3
	mantleSurface                       world.ActorID

	switching bool
	history   *utils.CircularQueue[Transition]
}

// New creates a controller for the body passed. The entity starts Falling with every resource pool full.
func New(cfg Config) *Controller {
	assert.IsTrue(cfg.Query != nil, "movement.New: nil query")
	assert.IsTrue(cfg.Body != nil, "movement.New: nil body")

	if cfg.Camera == nil {
		cfg.Camera = &nopCamera{}
	}
	if cfg.Effects == nil {
		cfg.Effects = nopEffects{}
	}
	if cfg.Handler == nil {
		cfg.Handler = NopHandler{}
	}
	if cfg.Log == nil {
		cfg.Log = logrus.New()
		cfg.Log.SetOutput(io.Discard)
	}

	c := &Controller{
		s:        cfg.Settings,
		query:    cfg.Query,
		body:     cfg.Body,
		camera:   cfg.Camera,
		effects:  cfg.Effects,
		handler:  cfg.Handler,
		log:      cfg.Log,
		dbg:      cfg.Debugger,
		policies: defaultPolicies(),
		history:  utils.NewCircularQueue[Transition](historySize),

		defaultHalfHeight:   cfg.Body.CapsuleHalfHeight(),
		initialGravityScale: cfg.Body.GravityScale(),
		initialBraking:      cfg.Body.Braking(),
		initialCameraOffset: cfg.Camera.RelativeOffset(),
	}
	// Entities rarely spawn on the ground. Falling is entered without exiting anything since no
	// mode was current before it.
	c.state = MovementState{
		Current:           Falling,
		Previous:          Walking,
		JumpCharges:       c.s.Jumping.MaxCharges,
		DashCharges:       float32(c.s.Dashing.MaxCharges),
		RunningStamina:    c.s.Running.MaxStamina,
		HasRoomToStandUp:  true,
		WantsToStandUp:    true,
		SlidingInfluence:  1,
		CanWallRun:        true,
		MantleBegin:       &Anchor{},
		MantleUp:          &Anchor{},
		MantleForward:     &Anchor{},
		PreviousLocation:  cfg.Body.Location(),
		UseLandingEffects: c.s.Falling.UseLandingEffects,
	}
	c.state.MantleTarget = c.state.MantleUp
	c.initTimelines()

	c.policies[Falling].Enter(c)
	c.handler.HandleEnter(c, Falling)
	return c
}

// State returns a snapshot of the movement state. The mantle anchors are shared with the controller.
func (c *Controller) State() MovementState {
	return c.state
}

// Mode returns the current mode.
func (c *Controller) Mode() Mode {
	return c.state.Current
}

// Settings returns the settings the controller was created with.
func (c *Controller) Settings() settings.Settings {
	return c.s
}

// Body ...
func (c *Controller) Body() Body {
	return c.body
}

// History returns the most recent transitions, oldest first.
func (c *Controller) History() []Transition {
	return slices.Collect(c.history.Iter())
}

// RequestMode switches to the mode passed if it is not already current and its eligibility check
// passes. It returns true if the switch happened. A rejected request has no side effects beyond the
// results geometry checks record for the next Enter.
func (c *Controller) RequestMode(mode Mode) bool {
	if mode >= modeCount || mode == c.state.Current || c.switching {
		return false
	}
	if !c.policies[mode].CanEnter(c) {
		c.debugf(c.dbg.LogRejections, "request rejected", "from", c.state.Current, "to", mode)
		return false
	}
	return c.switchMode(mode, false)
}

// CanEnter returns true if a request to switch to the mode passed would currently succeed.
func (c *Controller) CanEnter(mode Mode) bool {
	if mode >= modeCount || mode == c.state.Current || c.switching {
		return false
	}
	return c.policies[mode].CanEnter(c)
}

// switchMode exits the current mode, records the history and enters the new mode. It is the only
// code that writes the current mode. Switches requested while another switch is being applied are
// dropped so that no transition is ever half applied.
func (c *Controller) switchMode(mode Mode, forced bool) bool {
	old := c.state.Current
	if mode == old || c.switching {
		return false
	}
	c.switching = true

	c.policies[old].Exit(c)
	c.handler.HandleExit(c, old)

	c.state.PreviousBeforeSwitch = c.state.Previous
	c.state.Previous = old
	c.state.Current = mode
	c.history.Append(Transition{From: old, To: mode, Forced: forced})
	c.debugf(c.dbg.LogTransitions, "mode switch", "from", old, "to", mode, "forced", forced)

	c.policies[mode].Enter(c)
	c.handler.HandleEnter(c, mode)
	c.switching = false

	if t, ok := c.policies[mode].(transientPolicy); ok && c.state.Current == mode {
		c.switchMode(t.Next(c), true)
	}
	return true
}

// Tick advances the entity by dt seconds. Hooks run in a fixed order and every transition made by an
// earlier hook is visible to the later ones.
func (c *Controller) Tick(dt float32) {
	c.updateCrouchRoom()

	active := c.state.Current
	c.policies[active].Tick(c, dt)
	// A wall-run that stopped during this tick is not re-entered until the next one.
	if active != Wallrunning && c.state.Current != Wallrunning {
		c.RequestMode(Wallrunning)
	}

	c.updateCameraTilt(dt)
	c.timelines.Tick(dt)

	c.state.PreviousLocation = c.body.Location()
}

func (c *Controller) initTimelines() {
	s := c.s
	c.tl.crouch = c.timelines.Add(timeline.New("crouch", s.Crouching.TransitionTime).
		WithCurve(timeline.EaseOut).
		OnUpdate(c.crouchTimelineUpdate))
	c.tl.slideInfluence = c.timelines.Add(timeline.New("slide_influence", s.Sliding.InfluenceTime).
		WithCurve(timeline.Inverse).
		OnUpdate(c.slidingInfluenceUpdate))
	c.tl.staminaDepletion = c.timelines.Add(timeline.New("stamina_depletion", s.Running.DepletionTime).
		OnUpdate(c.staminaDepletionUpdate))
	c.tl.staminaRecovery = c.timelines.Add(timeline.New("stamina_recovery", s.Running.RecoveryTime).
		OnUpdate(c.staminaRecoveryUpdate))
	c.tl.dash = c.timelines.Add(timeline.New("dash", s.Dashing.Duration).
		WithCurve(timeline.Inverse).
		OnUpdate(c.dashMovementUpdate).
		OnFinished(c.dashMovementFinished))
	c.tl.dashRecovery = c.timelines.Add(timeline.New("dash_recovery", s.Dashing.RecoveryTime).
		OnUpdate(c.dashRecoveryUpdate))
	c.tl.wallRunGravity = c.timelines.Add(timeline.New("wallrun_gravity", s.Wallrunning.GravityRampTime).
		OnUpdate(c.wallRunGravityUpdate))
	c.tl.wallRunRecover = c.timelines.Delay("wallrun_recover", s.Wallrunning.RecoverTime, func() {
		c.state.CanWallRun = true
	})
	c.tl.mantleUp = c.timelines.Add(timeline.New("mantle_up", s.Mantling.UpTime).
		OnUpdate(c.mantleMovementUpdate).
		OnFinished(c.mantleUpFinished))
	c.tl.mantleForward = c.timelines.Add(timeline.New("mantle_forward", s.Mantling.ForwardTime).
		OnUpdate(c.mantleMovementUpdate).
		OnFinished(c.mantleForwardFinished))
	c.tl.cameraBob = c.timelines.Add(timeline.New("camera_bob", s.Camera.BobTime).
		WithCurve(timeline.Pulse).
		OnUpdate(c.cameraBobUpdate))
	c.tl.landingEffectsRestore = c.timelines.Delay("landing_effects_restore", s.Falling.LandingEffectsRestorationTime, func() {
		c.state.UseLandingEffects = true
	})
}

func (c *Controller) setJumpCharges(n int) {
	c.state.JumpCharges = lo.Clamp(n, 0, c.s.Jumping.MaxCharges)
}

func (c *Controller) setDashCharges(n float32) {
	c.state.DashCharges = lo.Clamp(n, 0, float32(c.s.Dashing.MaxCharges))
}

func (c *Controller) setStamina(n float32) {
	c.state.RunningStamina = lo.Clamp(n, 0, c.s.Running.MaxStamina)
}

func (c *Controller) playSound(cue string) {
	if cue != "" {
		c.effects.PlaySound(cue)
	}
}

func (c *Controller) shakeCamera(cue string) {
	if cue != "" {
		c.effects.ShakeCamera(cue)
	}
}

func (c *Controller) spawnParticle(cue string, location, normal mgl32.Vec3) {
	if cue != "" {
		c.effects.SpawnParticle(cue, location, normal)
	}
}
