package settings

import (
	"github.com/oomph-ac/stride/oerror"
)

// DashType selects how the direction of a dash is computed.
type DashType uint8

const (
	// DashTypeMovement dashes in the direction of the move input, relative to the body facing.
	DashTypeMovement DashType = iota
	// DashTypeCamera dashes in the direction the camera is facing.
	DashTypeCamera
)

// String ...
func (t DashType) String() string {
	switch t {
	case DashTypeMovement:
		return "movement"
	case DashTypeCamera:
		return "camera"
	}
	return "unknown"
}

// MarshalText ...
func (t DashType) MarshalText() ([]byte, error) {
	if t > DashTypeCamera {
		return nil, oerror.New("settings: unknown dash type %d", t)
	}
	return []byte(t.String()), nil
}

// UnmarshalText ...
func (t *DashType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "movement":
		*t = DashTypeMovement
	case "camera":
		*t = DashTypeCamera
	default:
		return oerror.New("settings: unknown dash type %q", text)
	}
	return nil
}

// MantleType selects how the entity is moved between mantle anchors.
type MantleType uint8

const (
	// MantleTypeVelocity moves the entity by setting its velocity towards the next anchor. It is less
	// precise but never moves the entity through geometry.
	MantleTypeVelocity MantleType = iota
	// MantleTypeLocation teleports the entity along the line between anchors. It is precise but
	// performs no collision checks while moving.
	MantleTypeLocation
)

// String ...
func (t MantleType) String() string {
	switch t {
	case MantleTypeVelocity:
		return "velocity"
	case MantleTypeLocation:
		return "location"
	}
	return "unknown"
}

// MarshalText ...
func (t MantleType) MarshalText() ([]byte, error) {
	if t > MantleTypeLocation {
		return nil, oerror.New("settings: unknown mantle type %d", t)
	}
	return []byte(t.String()), nil
}

// UnmarshalText ...
func (t *MantleType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "velocity":
		*t = MantleTypeVelocity
	case "location":
		*t = MantleTypeLocation
	default:
		return oerror.New("settings: unknown mantle type %q", text)
	}
	return nil
}
