package game

import "github.com/go-gl/mathgl/mgl32"

const (
	// DefaultGravityZ is the world gravity along Z in cm/s².
	DefaultGravityZ = float32(-980)

	SmallNumber      = float32(1e-8)
	KindaSmallNumber = float32(1e-4)
)

var (
	// WorldUp is the up axis of the world. The world is Z-up.
	WorldUp = mgl32.Vec3{0, 0, 1}
	// WorldForward is the forward axis of an entity with zero yaw.
	WorldForward = mgl32.Vec3{1, 0, 0}
)
