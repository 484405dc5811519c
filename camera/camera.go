package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/stride/game"
	"github.com/oomph-ac/stride/settings"
)

// Tilt is a roll target and the speed the camera should interpolate towards it at.
type Tilt struct {
	Angle float32
	Speed float32
}

// TiltTarget returns the camera roll the entity should settle at. While wall-running the camera
// leans away from the wall; otherwise it leans into the strafe input.
func TiltTarget(wallRunning bool, wallSide int, strafe float32, s settings.Settings) Tilt {
	if wallRunning {
		return Tilt{Angle: s.Camera.WallRunAngle * float32(wallSide) * -1, Speed: s.Camera.WallRunTiltSpeed}
	}
	return Tilt{Angle: s.Camera.StrafingTiltAngle * strafe, Speed: s.Camera.StrafingTiltSpeed}
}

// InterpTo moves the angle current towards target along the shortest arc, covering a fraction of the
// remaining distance proportional to dt*speed. A non-positive speed snaps straight to the target.
// The result is normalized to (-180, 180].
func InterpTo(current, target, dt, speed float32) float32 {
	if speed <= 0 {
		return NormalizeAxis(target)
	}
	delta := game.WrapAngleDelta(target - current)
	if math32.Abs(delta) < game.KindaSmallNumber {
		return NormalizeAxis(target)
	}
	return NormalizeAxis(current + delta*game.ClampFloat(dt*speed, 0, 1))
}

// NormalizeAxis normalizes an angle in degrees to (-180, 180].
func NormalizeAxis(angle float32) float32 {
	angle = math32.Mod(angle, 360)
	if angle > 180 {
		angle -= 360
	} else if angle <= -180 {
		angle += 360
	}
	return angle
}

// BobOffset returns the camera offset of a landing bob at the curve value passed, where 0 is at rest
// and 1 is the lowest point of the bob.
func BobOffset(value, depth float32) mgl32.Vec3 {
	return mgl32.Vec3{0, 0, -depth * value}
}
