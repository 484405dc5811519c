package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ClampFloat clamps the given value to the given range.
func ClampFloat(num, min, max float32) float32 {
	if num < min {
		return min
	}
	return math32.Min(num, max)
}

// Round32 will round a float32 to a given precision.
func Round32(val float32, precision int) float32 {
	pwr := math32.Pow(10, float32(precision))
	return math32.Round(val*pwr) / pwr
}

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// ApproxEq determines whether two floating point numbers are within epsilon of each other.
func ApproxEq(a, b, epsilon float32) bool {
	return math32.Abs(a-b) <= epsilon
}

// Lerp linearly interpolates between a and b by alpha. Alpha is not clamped.
func Lerp(a, b, alpha float32) float32 {
	return a + (b-a)*alpha
}

// LerpVec3 linearly interpolates between two vectors by alpha.
func LerpVec3(a, b mgl32.Vec3, alpha float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(alpha))
}

// SafeNormal returns the normalized vector, or a zero vector if the length is too small
// to normalize safely.
func SafeNormal(v mgl32.Vec3) mgl32.Vec3 {
	sq := v.LenSqr()
	if sq < SmallNumber {
		return mgl32.Vec3{}
	}
	if sq == 1 {
		return v
	}
	return v.Mul(1 / math32.Sqrt(sq))
}

// Flatten returns the vector with its Z component set to zero.
func Flatten(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v[0], v[1], 0}
}

// Vec3HzDistSqr returns the squared horizontal distance in a vector.
func Vec3HzDistSqr(vec3 mgl32.Vec3) float32 {
	return vec3.X()*vec3.X() + vec3.Y()*vec3.Y()
}

// AbsVec32 will return the given vector, but all the values of it are switched to their absolute values.
func AbsVec32(vec mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{math32.Abs(vec.X()), math32.Abs(vec.Y()), math32.Abs(vec.Z())}
}

// Vec3ApproxEq reports whether every component of a and b are within epsilon of each other.
func Vec3ApproxEq(a, b mgl32.Vec3, epsilon float32) bool {
	return ApproxEq(a[0], b[0], epsilon) && ApproxEq(a[1], b[1], epsilon) && ApproxEq(a[2], b[2], epsilon)
}

// DirectionVector returns a direction vector from the given yaw and pitch values in degrees.
func DirectionVector(yaw, pitch float32) mgl32.Vec3 {
	yawRad, pitchRad := mgl32.DegToRad(yaw), mgl32.DegToRad(pitch)
	m := math32.Cos(pitchRad)

	return mgl32.Vec3{
		m * math32.Cos(yawRad),
		m * math32.Sin(yawRad),
		math32.Sin(pitchRad),
	}
}

// RightVector returns the horizontal right vector for the given yaw in degrees.
func RightVector(yaw float32) mgl32.Vec3 {
	yawRad := mgl32.DegToRad(yaw)
	return mgl32.Vec3{-math32.Sin(yawRad), math32.Cos(yawRad), 0}
}

// WrapAngleDelta wraps an angle delta in degrees into [-180, 180].
func WrapAngleDelta(delta float32) float32 {
	delta = math32.Mod(delta, 360)
	if delta > 180 {
		delta -= 360
	} else if delta < -180 {
		delta += 360
	}
	return delta
}
