package config

import (
	_ "embed"
)

//go:embed defaults/bounce.yaml
var defaultBounceYAML []byte

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultSceneConfig returns the scene settings demos start from.
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		FrameRate:  30,
		Background: "black",
	}
}

// DefaultBounceConfig returns the default bounce configuration.
func DefaultBounceConfig() BounceConfig {
	scene := DefaultSceneConfig()
	scene.Background = "#101820"
	return BounceConfig{
		Scene:       scene,
		Text:        "DVD",
		TextColor:   "white",
		BoxColor:    "#23637e",
		Speed:       4,
		Angle:       230,
		BoundAction: "bounce",
	}
}

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	scene := DefaultSceneConfig()
	scene.Background = "#1d3b53"
	scene.ShowTiles = true
	return RunnerConfig{
		Scene: scene,
		Physics: RunnerPhysics{
			Gravity:      0.2,
			JumpImpulse:  -2.6,
			MaxFallSpeed: 4.0,
		},
		Runner: RunnerPlayer{
			X:             24,
			Width:         10,
			Height:        14,
			Frames:        6,
			AnimThreshold: 2,
		},
		Hurdle: RunnerHurdle{
			Width:  4,
			Height: 8,
			Speed:  2.5,
			Color:  "orange",
		},
		Floor: RunnerFloor{
			Rows: 12,
			Cols: 16,
		},
		Sound: RunnerSound{
			ToneHz: 660,
			ToneMS: 120,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 25,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a demo.
func GetDefaultYAML(demoID string) []byte {
	switch demoID {
	case "bounce":
		return defaultBounceYAML
	case "runner":
		return defaultRunnerYAML
	default:
		return nil
	}
}
