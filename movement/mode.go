package movement

// Mode is a mutually exclusive locomotion mode. Exactly one mode is current per entity.
type Mode uint8

const (
	Walking Mode = iota
	Running
	Crouching
	Sliding
	// Jumping is transient: entering it launches the entity and immediately switches to Falling.
	Jumping
	Wallrunning
	Mantling
	Dashing
	Falling

	modeCount
)

var modeNames = [modeCount]string{
	Walking:     "walking",
	Running:     "running",
	Crouching:   "crouching",
	Sliding:     "sliding",
	Jumping:     "jumping",
	Wallrunning: "wallrunning",
	Mantling:    "mantling",
	Dashing:     "dashing",
	Falling:     "falling",
}

// String ...
func (m Mode) String() string {
	if m >= modeCount {
		return "unknown"
	}
	return modeNames[m]
}

// Modes returns every mode in declaration order.
func Modes() []Mode {
	modes := make([]Mode, 0, modeCount)
	for m := range modeCount {
		modes = append(modes, m)
	}
	return modes
}

// is returns true if m is one of the modes passed.
func (m Mode) is(modes ...Mode) bool {
	for _, o := range modes {
		if m == o {
			return true
		}
	}
	return false
}
