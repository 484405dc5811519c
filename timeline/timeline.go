package timeline

import (
	"github.com/chewxy/math32"
	"github.com/oomph-ac/stride/game"
)

// Curve maps the normalized position of a timeline, in [0, 1], to the value passed to its
// update callback.
type Curve func(alpha float32) float32

var (
	// Linear returns the normalized position unchanged.
	Linear Curve = func(alpha float32) float32 { return alpha }
	// Inverse runs from 1 at the start of the timeline down to 0 at its end.
	Inverse Curve = func(alpha float32) float32 { return 1 - alpha }
	// EaseOut starts fast and settles towards 1.
	EaseOut Curve = func(alpha float32) float32 { return 1 - (1-alpha)*(1-alpha) }
	// Pulse rises from 0 to 1 at the midpoint and falls back to 0.
	Pulse Curve = func(alpha float32) float32 { return math32.Sin(alpha * math32.Pi) }
)

// Timeline is an interpolation task advanced explicitly by its owner. It keeps a playback position
// in seconds that moves forwards or backwards while playing, calls its update callback with the
// curve value every time it is advanced or seeked, and calls its finished callback once it reaches
// the end it was moving towards.
type Timeline struct {
	name   string
	length float32
	curve  Curve

	position  float32
	playing   bool
	reversing bool

	onUpdate   func(value float32)
	onFinished func()
}

// New returns a stopped timeline of the given length in seconds using the Linear curve.
func New(name string, length float32) *Timeline {
	return &Timeline{
		name:   name,
		length: math32.Max(length, 0),
		curve:  Linear,
	}
}

// WithCurve sets the curve of the timeline.
func (t *Timeline) WithCurve(curve Curve) *Timeline {
	if curve != nil {
		t.curve = curve
	}
	return t
}

// OnUpdate sets the callback called with the curve value every time the timeline moves.
func (t *Timeline) OnUpdate(f func(value float32)) *Timeline {
	t.onUpdate = f
	return t
}

// OnFinished sets the callback called when the timeline reaches the end it is playing towards.
func (t *Timeline) OnFinished(f func()) *Timeline {
	t.onFinished = f
	return t
}

// Name ...
func (t *Timeline) Name() string {
	return t.name
}

// Length returns the length of the timeline in seconds.
func (t *Timeline) Length() float32 {
	return t.length
}

// Position returns the playback position of the timeline in seconds.
func (t *Timeline) Position() float32 {
	return t.position
}

// Alpha returns the playback position normalized to [0, 1]. A zero-length timeline is at the end it
// is heading for: 0 while reversing and 1 otherwise.
func (t *Timeline) Alpha() float32 {
	if t.length <= 0 {
		if t.reversing {
			return 0
		}
		return 1
	}
	return t.position / t.length
}

// Value returns the curve value at the current playback position.
func (t *Timeline) Value() float32 {
	return t.curve(t.Alpha())
}

// Playing returns true if the timeline is advancing.
func (t *Timeline) Playing() bool {
	return t.playing
}

// Reversing returns true if the timeline is playing, or was last played, backwards.
func (t *Timeline) Reversing() bool {
	return t.reversing
}

// Play starts playing forwards from the current position.
func (t *Timeline) Play() {
	t.playing, t.reversing = true, false
}

// PlayFromStart rewinds the timeline and plays it forwards.
func (t *Timeline) PlayFromStart() {
	t.position = 0
	t.Play()
}

// Reverse starts playing backwards from the current position.
func (t *Timeline) Reverse() {
	t.playing, t.reversing = true, true
}

// ReverseFromEnd moves the timeline to its end and plays it backwards.
func (t *Timeline) ReverseFromEnd() {
	t.position = t.length
	t.Reverse()
}

// Stop pauses the timeline at its current position.
func (t *Timeline) Stop() {
	t.playing = false
}

// SetNewTime seeks the timeline to the position passed, clamped to its length, and calls the update
// callback with the new value. Seeking never fires the finished callback.
func (t *Timeline) SetNewTime(position float32) {
	t.position = game.ClampFloat(position, 0, t.length)
	if t.onUpdate != nil {
		t.onUpdate(t.Value())
	}
}

// Tick advances a playing timeline by dt seconds in the direction it is playing.
func (t *Timeline) Tick(dt float32) {
	if !t.playing || dt < 0 {
		return
	}

	var end float32
	if t.reversing {
		t.position = math32.Max(t.position-dt, 0)
	} else {
		t.position = math32.Min(t.position+dt, t.length)
		end = t.length
	}
	reachedEnd := t.position == end
	reversing := t.reversing

	if t.onUpdate != nil {
		t.onUpdate(t.Value())
	}
	if !reachedEnd {
		return
	}
	// The update callback may have stopped, seeked or restarted the timeline; only finish if it is
	// still playing towards the end it just reached.
	if !t.playing || t.reversing != reversing || t.position != end {
		return
	}
	t.playing = false
	if t.onFinished != nil {
		t.onFinished()
	}
}
