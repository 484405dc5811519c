package settings

import (
	"github.com/oomph-ac/stride/oerror"
)

// Validate returns an error describing the first invalid value in the settings, if any.
func (s Settings) Validate() error {
	nonNegative := []struct {
		name  string
		value float32
	}{
		{"walking.speed", s.Walking.Speed},
		{"running.speed", s.Running.Speed},
		{"running.depletion_time", s.Running.DepletionTime},
		{"running.recovery_time", s.Running.RecoveryTime},
		{"crouching.speed", s.Crouching.Speed},
		{"crouching.trace_height_offset", s.Crouching.TraceHeightOffset},
		{"crouching.transition_time", s.Crouching.TransitionTime},
		{"sliding.max_speed", s.Sliding.MaxSpeed},
		{"sliding.forward_force", s.Sliding.ForwardForce},
		{"sliding.sideways_force", s.Sliding.SidewaysForce},
		{"sliding.influence_time", s.Sliding.InfluenceTime},
		{"jumping.z_velocity", s.Jumping.ZVelocity},
		{"dashing.speed", s.Dashing.Speed},
		{"dashing.duration", s.Dashing.Duration},
		{"dashing.recovery_time", s.Dashing.RecoveryTime},
		{"mantling.speed", s.Mantling.Speed},
		{"mantling.trace_forward_distance", s.Mantling.TraceForwardDistance},
		{"mantling.height_trace_length", s.Mantling.HeightTraceLength},
		{"mantling.depth", s.Mantling.Depth},
		{"mantling.up_time", s.Mantling.UpTime},
		{"mantling.forward_time", s.Mantling.ForwardTime},
		{"wallrunning.speed", s.Wallrunning.Speed},
		{"wallrunning.distance_to_wall", s.Wallrunning.DistanceToWall},
		{"wallrunning.recover_time", s.Wallrunning.RecoverTime},
		{"wallrunning.gravity_ramp_time", s.Wallrunning.GravityRampTime},
		{"wallrunning.stuck_epsilon", s.Wallrunning.StuckEpsilon},
		{"falling.airborne_speed", s.Falling.AirborneSpeed},
		{"falling.landing_effects_restoration_time", s.Falling.LandingEffectsRestorationTime},
		{"camera.wall_run_tilt_speed", s.Camera.WallRunTiltSpeed},
		{"camera.strafing_tilt_speed", s.Camera.StrafingTiltSpeed},
		{"camera.bob_time", s.Camera.BobTime},
	}
	for _, v := range nonNegative {
		if v.value < 0 {
			return oerror.New("settings: %s must not be negative (got %v)", v.name, v.value)
		}
	}

	if s.Running.MaxStamina <= 0 {
		return oerror.New("settings: running.max_stamina must be positive (got %v)", s.Running.MaxStamina)
	}
	if s.Running.UseStamina && (s.Running.DepletionTime <= 0 || s.Running.RecoveryTime <= 0) {
		return oerror.New("settings: running stamina timelines must have a positive length")
	}
	if s.Jumping.MaxCharges <= 0 {
		return oerror.New("settings: jumping.max_charges must be positive (got %d)", s.Jumping.MaxCharges)
	}
	if s.Dashing.MaxCharges <= 0 {
		return oerror.New("settings: dashing.max_charges must be positive (got %d)", s.Dashing.MaxCharges)
	}
	if s.Crouching.CrouchedHalfHeight <= 0 {
		return oerror.New("settings: crouching.crouched_half_height must be positive (got %v)", s.Crouching.CrouchedHalfHeight)
	}

	for name, dot := range map[string]float32{
		"wallrunning.max_view_dot":     s.Wallrunning.MaxViewDot,
		"wallrunning.max_movement_dot": s.Wallrunning.MaxMovementDot,
	} {
		if dot < -1 || dot > 1 {
			return oerror.New("settings: %s must be within [-1, 1] (got %v)", name, dot)
		}
	}
	return nil
}
