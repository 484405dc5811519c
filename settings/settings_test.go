package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultSettingsAreValid(t *testing.T) {
	if err := DefaultSettings().Validate(); err != nil {
		t.Fatalf("expected default settings to be valid: %v", err)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		createFile bool
		content    string
		wantErr    string
		validate   func(t *testing.T, s Settings)
	}{
		{
			name:       "partial file keeps defaults",
			createFile: true,
			content: `running:
  speed: 1800
  use_stamina: false
dashing:
  type: camera
mantling:
  type: location
`,
			validate: func(t *testing.T, s Settings) {
				if s.Running.Speed != 1800 || s.Running.UseStamina {
					t.Errorf("running = %+v, expected speed 1800 without stamina", s.Running)
				}
				if s.Running.MaxStamina != 100 {
					t.Errorf("Running.MaxStamina = %v, expected default 100", s.Running.MaxStamina)
				}
				if s.Dashing.Type != DashTypeCamera {
					t.Errorf("Dashing.Type = %v, expected camera", s.Dashing.Type)
				}
				if s.Mantling.Type != MantleTypeLocation {
					t.Errorf("Mantling.Type = %v, expected location", s.Mantling.Type)
				}
				if s.Walking.Speed != 800 {
					t.Errorf("Walking.Speed = %v, expected default 800", s.Walking.Speed)
				}
			},
		},
		{
			name:       "missing file",
			createFile: false,
			wantErr:    "error reading settings",
		},
		{
			name:       "unknown dash type",
			createFile: true,
			content:    "dashing:\n  type: teleport\n",
			wantErr:    "unknown dash type",
		},
		{
			name:       "negative speed",
			createFile: true,
			content:    "walking:\n  speed: -1\n",
			wantErr:    "walking.speed must not be negative",
		},
		{
			name:       "dot product out of range",
			createFile: true,
			content:    "wallrunning:\n  max_view_dot: 1.5\n",
			wantErr:    "wallrunning.max_view_dot",
		},
		{
			name:       "zero jump charges",
			createFile: true,
			content:    "jumping:\n  max_charges: 0\n",
			wantErr:    "jumping.max_charges must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "archetype.yaml")
			if tt.createFile {
				if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
					t.Fatalf("failed writing settings file: %v", err)
				}
			}

			s, err := Load(path)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.validate(t, s)
		})
	}
}

func TestSaveDefaultRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archetype.yaml")
	if err := SaveDefault(path); err != nil {
		t.Fatalf("unexpected error saving defaults: %v", err)
	}
	if err := SaveDefault(path); err == nil {
		t.Fatal("expected saving over an existing file to fail")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed reading saved settings: %v", err)
	}
	if !strings.Contains(string(data), "type: movement") || !strings.Contains(string(data), "type: velocity") {
		t.Fatalf("expected enumerations to be written as text, got:\n%s", data)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error loading defaults: %v", err)
	}
	if s != DefaultSettings() {
		t.Fatalf("expected loaded settings to equal defaults, got %+v", s)
	}
}
