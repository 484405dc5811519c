package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/stride/game"
	"github.com/oomph-ac/stride/settings"
)

func TestTiltTarget(t *testing.T) {
	s := settings.DefaultSettings()
	tests := []struct {
		name        string
		wallRunning bool
		side        int
		strafe      float32
		want        Tilt
	}{
		{"wall on right leans left", true, 1, 0, Tilt{-15, 2}},
		{"wall on left leans right", true, -1, 1, Tilt{15, 2}},
		{"strafing right", false, 1, 1, Tilt{5, 3}},
		{"strafing left", false, 0, -1, Tilt{-5, 3}},
		{"idle", false, 0, 0, Tilt{0, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TiltTarget(tt.wallRunning, tt.side, tt.strafe, s); got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestInterpTo(t *testing.T) {
	tests := []struct {
		name                       string
		current, target, dt, speed float32
		want                       float32
	}{
		{"partial step", 0, 10, 0.1, 2, 2},
		{"step clamps to target", 0, 10, 1, 5, 10},
		{"zero speed snaps", 3, 10, 0.1, 0, 10},
		{"already there", 10, 10, 0.1, 2, 10},
		{"shortest arc across 180", 170, -170, 0.125, 2, 175},
		{"shortest arc wraps", -170, 170, 0.25, 2, 180},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InterpTo(tt.current, tt.target, tt.dt, tt.speed); !game.ApproxEq(got, tt.want, 1e-3) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestBobOffset(t *testing.T) {
	if got := BobOffset(0.5, 10); got != (mgl32.Vec3{0, 0, -5}) {
		t.Fatalf("expected half depth offset, got %v", got)
	}
	if got := BobOffset(0, 10); got != (mgl32.Vec3{}) {
		t.Fatalf("expected no offset at rest, got %v", got)
	}
}
