package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/scenekit/internal/actor"
)

// isolate points the user and local search paths at empty directories.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home, work = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var bounce BounceConfig
	if err := yaml.Unmarshal(GetDefaultYAML("bounce"), &bounce); err != nil {
		t.Fatalf("bounce.yaml: %v", err)
	}
	if bounce != DefaultBounceConfig() {
		t.Errorf("bounce.yaml = %+v, expected %+v", bounce, DefaultBounceConfig())
	}

	var runner RunnerConfig
	if err := yaml.Unmarshal(GetDefaultYAML("runner"), &runner); err != nil {
		t.Fatalf("runner.yaml: %v", err)
	}
	if runner != DefaultRunnerConfig() {
		t.Errorf("runner.yaml = %+v, expected %+v", runner, DefaultRunnerConfig())
	}

	if GetDefaultYAML("pong") != nil {
		t.Error("unknown demo should have no default YAML")
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultBounceConfig().Validate(); err != nil {
		t.Errorf("bounce defaults: %v", err)
	}
	if err := DefaultRunnerConfig().Validate(); err != nil {
		t.Errorf("runner defaults: %v", err)
	}
}

func TestBounceDefaults(t *testing.T) {
	cfg := DefaultBounceConfig()
	action, err := cfg.Bound()
	if err != nil {
		t.Fatalf("Bound() failed: %v", err)
	}
	if action != actor.Bounce {
		t.Errorf("Bound() = %v, expected Bounce", action)
	}
	if cfg.Speed != 4 || cfg.Angle != 230 || cfg.Text != "DVD" {
		t.Errorf("motion = %q speed %v angle %v, expected DVD speed 4 angle 230", cfg.Text, cfg.Speed, cfg.Angle)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	cfg, err := LoadBounce("")
	if err != nil {
		t.Fatalf("LoadBounce() failed: %v", err)
	}
	if cfg != DefaultBounceConfig() {
		t.Errorf("with no files, expected embedded defaults, got %+v", cfg)
	}

	writeFile(t, filepath.Join(work, "configs", "bounce.yaml"), "speed: 2\n")
	cfg, _ = LoadBounce("")
	if cfg.Speed != 2 {
		t.Errorf("local config: Speed = %v, expected 2", cfg.Speed)
	}
	if cfg.Angle != 230 {
		t.Errorf("keys missing from the file should keep defaults, Angle = %v", cfg.Angle)
	}

	writeFile(t, filepath.Join(home, ".scenekit", "configs", "bounce.yaml"), "speed: 3\n")
	cfg, _ = LoadBounce("")
	if cfg.Speed != 3 {
		t.Errorf("user config should win over local, Speed = %v", cfg.Speed)
	}

	custom := filepath.Join(t.TempDir(), "mine.yaml")
	writeFile(t, custom, "speed: 7\nbound_action: wrap\n")
	cfg, err = LoadBounce(custom)
	if err != nil {
		t.Fatalf("LoadBounce(custom) failed: %v", err)
	}
	if cfg.Speed != 7 || cfg.BoundAction != "wrap" {
		t.Errorf("custom config = %+v", cfg)
	}
}

func TestLoadSkipsInvalidUserConfig(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".scenekit", "configs", "runner.yaml"), "floor:\n  rows: 1\n")

	cfg, err := LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if cfg.Floor.Rows != DefaultRunnerConfig().Floor.Rows {
		t.Errorf("invalid user config should be skipped, Floor.Rows = %d", cfg.Floor.Rows)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"malformed yaml", "speed: [\n"},
		{"unknown bound action", "bound_action: explode\n"},
		{"bad color", "text_color: nope\n"},
		{"negative frame rate", "scene:\n  frame_rate: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			writeFile(t, path, tt.content)
			if _, err := LoadBounce(path); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := LoadBounce(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestRunnerValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*RunnerConfig)
	}{
		{"zero frames", func(c *RunnerConfig) { c.Runner.Frames = 0 }},
		{"flat hurdle", func(c *RunnerConfig) { c.Hurdle.Height = 0 }},
		{"tiny floor", func(c *RunnerConfig) { c.Floor.Cols = 1 }},
		{"upward gravity", func(c *RunnerConfig) { c.Physics.Gravity = -0.2 }},
		{"downward jump", func(c *RunnerConfig) { c.Physics.JumpImpulse = 1 }},
		{"bad hurdle color", func(c *RunnerConfig) { c.Hurdle.Color = "#12" }},
		{"bad background", func(c *RunnerConfig) { c.Scene.Background = "plaid" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePreset(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePreset(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePreset(%q) = %q, expected %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestApplyRunnerPreset(t *testing.T) {
	cfg := DefaultRunnerConfig()
	ApplyRunnerPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultRunnerConfig()
	ApplyRunnerPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset difficulty = %+v", cfg.Difficulty)
	}
	if cfg.Hurdle.Height != DefaultRunnerConfig().Hurdle.Height+2 {
		t.Errorf("hard preset hurdle height = %d", cfg.Hurdle.Height)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("hard preset should stay valid: %v", err)
	}
}

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score int
		want  float64
	}{
		{0, 0},
		{5, 0.5},
		{10, 1},
		{50, 1},
	}
	for _, tt := range tests {
		if got := d.Level(tt.score, 0); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tt.score, got, tt.want)
		}
	}

	if got := d.Speed(2, 10, 0); math.Abs(got-4) > 1e-9 {
		t.Errorf("Speed at max level = %v, expected 4", got)
	}

	d.SetInitialLevel(0.5)
	if got := d.Level(5, 0); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Level from 0.5 at half progress = %v, expected 0.75", got)
	}

	d.SetEnabled(false)
	if got := d.Level(10, 0); got != 0.5 {
		t.Errorf("disabled Level = %v, expected the initial level", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
	})
	if got := d.Level(1000, 25); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("time Level = %v, expected 0.25", got)
	}

	none := NewDifficultyManager(DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: "none"}})
	if none.IsEnabled() {
		t.Error("progression type none should not be enabled")
	}
}
