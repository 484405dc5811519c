package movement

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/stride/world"
)

// MantlePhase is the progress of the mantle sub-machine.
type MantlePhase uint8

const (
	MantleIdle MantlePhase = iota
	MantleCheckPassed
	MantleMovingUp
	MantleMovingForward
)

// String ...
func (p MantlePhase) String() string {
	switch p {
	case MantleIdle:
		return "idle"
	case MantleCheckPassed:
		return "check_passed"
	case MantleMovingUp:
		return "moving_up"
	case MantleMovingForward:
		return "moving_forward"
	}
	return "unknown"
}

// Anchor is a reusable mantle waypoint. The three anchors of a controller are allocated once and
// swapped between roles as a mantle progresses.
type Anchor struct {
	Location mgl32.Vec3
	// Actor is the surface the anchor was placed on.
	Actor world.ActorID
}

// MovementState is the observable state of a controlled entity. It is owned and written by a single
// Controller; other code should treat it as read-only.
type MovementState struct {
	Current Mode
	// Previous is the mode that was current before the last switch.
	Previous Mode
	// PreviousBeforeSwitch is the mode that was current before Previous.
	PreviousBeforeSwitch Mode

	// MoveInput is the move axis of the entity, X being forward and Y being right.
	MoveInput mgl32.Vec2

	JumpCharges    int
	DashCharges    float32
	RunningStamina float32

	HasRoomToStandUp bool
	WantsToStandUp   bool

	// SlidingInfluence scales the sliding force. Sliding ends once it decays to zero.
	SlidingInfluence float32

	CurrentWall  world.ActorID
	PreviousWall world.ActorID
	// WallSide is 1 if the tracked wall is on the right, -1 if it is on the left and 0 if there is no wall.
	WallSide int
	// WallHit is the last trace result against the tracked wall.
	WallHit world.Hit
	// CanWallRun closes while dashing, mantling and shortly after a wall-run jump.
	CanWallRun bool

	MantleBegin   *Anchor
	MantleUp      *Anchor
	MantleForward *Anchor
	// MantleTarget points at the anchor the entity is currently moving towards.
	MantleTarget *Anchor
	MantlePhase  MantlePhase

	// PreviousLocation is the location of the entity at the end of the previous tick.
	PreviousLocation mgl32.Vec3

	UseLandingEffects bool
}
