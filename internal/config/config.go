// Package config provides YAML-based demo configuration loading and
// difficulty management for scenekit.
package config

import (
	"fmt"
	"image/color"

	"github.com/vovakirdan/scenekit/internal/actor"
	"github.com/vovakirdan/scenekit/internal/gfx"
)

// SceneConfig contains the settings every demo scene shares.
type SceneConfig struct {
	FrameRate  int    `yaml:"frame_rate"` // overridden by --fps
	Background string `yaml:"background"` // color name or hex
	ShowTiles  bool   `yaml:"show_tiles"`
}

// BackgroundColor parses the background color.
func (c SceneConfig) BackgroundColor() (color.RGBA, error) {
	return gfx.ParseColor(c.Background)
}

// Validate rejects settings the scene loop cannot run with.
func (c SceneConfig) Validate() error {
	if c.FrameRate < 0 {
		return fmt.Errorf("config: negative frame rate %d", c.FrameRate)
	}
	if _, err := c.BackgroundColor(); err != nil {
		return fmt.Errorf("config: background: %w", err)
	}
	return nil
}

// BounceConfig contains all configuration for the bounce demo.
type BounceConfig struct {
	Scene       SceneConfig `yaml:"scene"`
	Text        string      `yaml:"text"`
	TextColor   string      `yaml:"text_color"`
	BoxColor    string      `yaml:"box_color"`
	Speed       float64     `yaml:"speed"`
	Angle       float64     `yaml:"angle"`        // degrees, 0 = right, 90 = up
	BoundAction string      `yaml:"bound_action"` // wrap, bounce, stop, hide or continue
}

// Bound parses the bound action.
func (c BounceConfig) Bound() (actor.BoundAction, error) {
	return actor.ParseBoundAction(c.BoundAction)
}

// Validate checks the scene settings, colors and bound action.
func (c BounceConfig) Validate() error {
	if err := c.Scene.Validate(); err != nil {
		return err
	}
	for _, s := range []string{c.TextColor, c.BoxColor} {
		if _, err := gfx.ParseColor(s); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if _, err := c.Bound(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// RunnerConfig contains all configuration for the runner demo.
type RunnerConfig struct {
	Scene      SceneConfig      `yaml:"scene"`
	Physics    RunnerPhysics    `yaml:"physics"`
	Runner     RunnerPlayer     `yaml:"runner"`
	Hurdle     RunnerHurdle     `yaml:"hurdle"`
	Floor      RunnerFloor      `yaml:"floor"`
	Sound      RunnerSound      `yaml:"sound"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RunnerPhysics defines the jump arc.
type RunnerPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// RunnerPlayer defines the runner sprite.
type RunnerPlayer struct {
	X             int `yaml:"x"`
	Width         int `yaml:"width"`
	Height        int `yaml:"height"`
	Frames        int `yaml:"frames"`
	AnimThreshold int `yaml:"anim_threshold"` // ticks between frames
}

// RunnerHurdle defines the obstacle.
type RunnerHurdle struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Color  string  `yaml:"color"`
}

// RunnerFloor defines the boundary grid laid over the canvas.
// The last row is the floor; the first column is the wall that scores.
type RunnerFloor struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// RunnerSound defines the jump sound.
type RunnerSound struct {
	JumpFile string  `yaml:"jump_file"` // optional WAV; a tone is used when empty
	ToneHz   float64 `yaml:"tone_hz"`
	ToneMS   int     `yaml:"tone_ms"`
}

// Validate checks the settings the runner cannot play with.
func (c RunnerConfig) Validate() error {
	if err := c.Scene.Validate(); err != nil {
		return err
	}
	if c.Runner.Width <= 0 || c.Runner.Height <= 0 || c.Runner.Frames <= 0 {
		return fmt.Errorf("config: runner needs a positive size and frame count")
	}
	if c.Hurdle.Width <= 0 || c.Hurdle.Height <= 0 {
		return fmt.Errorf("config: hurdle needs a positive size")
	}
	if c.Floor.Rows < 2 || c.Floor.Cols < 2 {
		return fmt.Errorf("config: floor grid must be at least 2x2, got %dx%d", c.Floor.Rows, c.Floor.Cols)
	}
	if c.Physics.Gravity <= 0 || c.Physics.JumpImpulse >= 0 {
		return fmt.Errorf("config: gravity must be positive and jump impulse negative")
	}
	if _, err := gfx.ParseColor(c.Hurdle.Color); err != nil {
		return fmt.Errorf("config: hurdle: %w", err)
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty selects normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (easy, normal, hard, fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
