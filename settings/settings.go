package settings

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings contains the tuning values of a movement archetype. All distances are in centimetres,
// speeds in centimetres per second, durations in seconds and angles in degrees.
type Settings struct {
	Walking struct {
		Speed float32 `yaml:"speed"`
	} `yaml:"walking"`
	Running struct {
		Speed float32 `yaml:"speed"`
		// UseStamina is whether running drains stamina. If false, the entity can run forever.
		UseStamina bool    `yaml:"use_stamina"`
		MaxStamina float32 `yaml:"max_stamina"`
		// DepletionTime is the time a full stamina bar lasts while running.
		DepletionTime float32 `yaml:"depletion_time"`
		// RecoveryTime is the time it takes to recover a full stamina bar.
		RecoveryTime float32 `yaml:"recovery_time"`
	} `yaml:"running"`
	Crouching struct {
		Speed float32 `yaml:"speed"`
		// CrouchedHalfHeight is the capsule half height while crouched.
		CrouchedHalfHeight float32 `yaml:"crouched_half_height"`
		// TraceHeightOffset offsets the start of the stand-up room check above standing height.
		TraceHeightOffset float32 `yaml:"trace_height_offset"`
		// TransitionTime is the time it takes to resize the capsule.
		TransitionTime float32 `yaml:"transition_time"`
	} `yaml:"crouching"`
	Sliding struct {
		MaxSpeed      float32 `yaml:"max_speed"`
		ForwardForce  float32 `yaml:"forward_force"`
		SidewaysForce float32 `yaml:"sideways_force"`
		// CancelWithRun is whether running may interrupt a slide.
		CancelWithRun bool `yaml:"cancel_with_run"`
		// InfluenceTime is the time it takes the sliding influence to decay to zero on flat ground.
		InfluenceTime float32 `yaml:"influence_time"`
	} `yaml:"sliding"`
	Jumping struct {
		MaxCharges int     `yaml:"max_charges"`
		ZVelocity  float32 `yaml:"z_velocity"`
	} `yaml:"jumping"`
	Dashing struct {
		Type       DashType `yaml:"type"`
		Speed      float32  `yaml:"speed"`
		MaxCharges int      `yaml:"max_charges"`
		// Duration is the length of the dash movement.
		Duration float32 `yaml:"duration"`
		// RecoveryTime is the time it takes to recover every dash charge from zero.
		RecoveryTime float32 `yaml:"recovery_time"`
	} `yaml:"dashing"`
	Mantling struct {
		Type  MantleType `yaml:"type"`
		Speed float32    `yaml:"speed"`
		// TraceForwardDistance is the maximum distance of the forward wall sweep.
		TraceForwardDistance float32 `yaml:"trace_forward_distance"`
		// HeightTraceLength is how far above the wall impact the surface sweep starts.
		HeightTraceLength float32 `yaml:"height_trace_length"`
		// LocationZOffset lifts the clearance sweep slightly above the surface.
		LocationZOffset float32 `yaml:"location_z_offset"`
		// Depth is how far onto the surface the entity moves.
		Depth       float32 `yaml:"depth"`
		UpTime      float32 `yaml:"up_time"`
		ForwardTime float32 `yaml:"forward_time"`
	} `yaml:"mantling"`
	Wallrunning struct {
		Speed          float32 `yaml:"speed"`
		DistanceToWall float32 `yaml:"distance_to_wall"`
		// MaxViewDot is how far the velocity may point away from the wall before the run stops.
		MaxViewDot float32 `yaml:"max_view_dot"`
		// MaxMovementDot is the minimum alignment between forward input and velocity.
		MaxMovementDot  float32 `yaml:"max_movement_dot"`
		JumpOffVelocity float32 `yaml:"jump_off_velocity"`
		JumpUpVelocity  float32 `yaml:"jump_up_velocity"`
		// RecoverTime is the cooldown after a wall-run jump before the entity can wall-run again.
		RecoverTime float32 `yaml:"recover_time"`
		// GravityRampTime is the time it takes gravity to ramp back up from zero.
		GravityRampTime float32 `yaml:"gravity_ramp_time"`
		UseGravity      bool    `yaml:"use_gravity"`
		SpawnParticle   bool    `yaml:"spawn_particle"`
		// StuckEpsilon is the horizontal distance under which the entity counts as not moving.
		StuckEpsilon float32 `yaml:"stuck_epsilon"`
	} `yaml:"wallrunning"`
	Falling struct {
		AirborneSpeed                 float32 `yaml:"airborne_speed"`
		LandingEffectsRestorationTime float32 `yaml:"landing_effects_restoration_time"`
		UseLandingEffects             bool    `yaml:"use_landing_effects"`
	} `yaml:"falling"`
	Camera struct {
		WallRunAngle      float32 `yaml:"wall_run_angle"`
		WallRunTiltSpeed  float32 `yaml:"wall_run_tilt_speed"`
		StrafingTiltAngle float32 `yaml:"strafing_tilt_angle"`
		StrafingTiltSpeed float32 `yaml:"strafing_tilt_speed"`
		// BobDepth is how far the camera dips when landing.
		BobDepth float32 `yaml:"bob_depth"`
		BobTime  float32 `yaml:"bob_time"`
	} `yaml:"camera"`
	// Effects contains the cue names passed to the effects layer. An empty cue disables the effect.
	Effects struct {
		JumpSound       string `yaml:"jump_sound"`
		DashSound       string `yaml:"dash_sound"`
		DashShake       string `yaml:"dash_shake"`
		MantleShake     string `yaml:"mantle_shake"`
		LandingShake    string `yaml:"landing_shake"`
		LandingParticle string `yaml:"landing_particle"`
		WallRunParticle string `yaml:"wall_run_particle"`
	} `yaml:"effects"`
}

// DefaultSettings returns the default movement archetype.
func DefaultSettings() Settings {
	s := Settings{}
	s.Walking.Speed = 800

	s.Running.Speed = 1500
	s.Running.UseStamina = true
	s.Running.MaxStamina = 100
	s.Running.DepletionTime = 5
	s.Running.RecoveryTime = 3

	s.Crouching.Speed = 250
	s.Crouching.CrouchedHalfHeight = 44
	s.Crouching.TraceHeightOffset = 3
	s.Crouching.TransitionTime = 0.2

	s.Sliding.MaxSpeed = 2000
	s.Sliding.ForwardForce = 500000
	s.Sliding.SidewaysForce = 350000
	s.Sliding.InfluenceTime = 1

	s.Jumping.MaxCharges = 2
	s.Jumping.ZVelocity = 700

	s.Dashing.Type = DashTypeMovement
	s.Dashing.Speed = 10000
	s.Dashing.MaxCharges = 2
	s.Dashing.Duration = 0.2
	s.Dashing.RecoveryTime = 4

	s.Mantling.Type = MantleTypeVelocity
	s.Mantling.Speed = 2000
	s.Mantling.TraceForwardDistance = 50
	s.Mantling.HeightTraceLength = 100
	s.Mantling.LocationZOffset = 5
	s.Mantling.Depth = 75
	s.Mantling.UpTime = 0.15
	s.Mantling.ForwardTime = 0.1

	s.Wallrunning.Speed = 600
	s.Wallrunning.DistanceToWall = 50
	s.Wallrunning.MaxViewDot = 0.95
	s.Wallrunning.MaxMovementDot = 0.95
	s.Wallrunning.JumpOffVelocity = 800
	s.Wallrunning.JumpUpVelocity = 800
	s.Wallrunning.RecoverTime = 0.1
	s.Wallrunning.GravityRampTime = 1
	s.Wallrunning.UseGravity = true
	s.Wallrunning.SpawnParticle = true
	s.Wallrunning.StuckEpsilon = 0.01

	s.Falling.AirborneSpeed = 800
	s.Falling.LandingEffectsRestorationTime = 0.4
	s.Falling.UseLandingEffects = true

	s.Camera.WallRunAngle = 15
	s.Camera.WallRunTiltSpeed = 2
	s.Camera.StrafingTiltAngle = 5
	s.Camera.StrafingTiltSpeed = 3
	s.Camera.BobDepth = 10
	s.Camera.BobTime = 0.3

	s.Effects.JumpSound = "jump"
	s.Effects.DashSound = "dash"
	s.Effects.DashShake = "dash"
	s.Effects.MantleShake = "mantle"
	s.Effects.LandingShake = "landing"
	s.Effects.LandingParticle = "landing"
	s.Effects.WallRunParticle = "wallrun"
	return s
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return errors.New("settings file already exists")
	}
	data, err := yaml.Marshal(DefaultSettings())
	if err != nil {
		return fmt.Errorf("failed encoding default settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed creating settings file: %w", err)
	}
	return nil
}

// Load will load the settings from your settings file, and return an error if the file does not exist
// or holds invalid values. Values missing from the file keep their defaults.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading settings: %w", err)
	}

	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("error decoding settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
