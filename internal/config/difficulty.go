package config

// DifficultyManager scales demo parameters as a run progresses.
type DifficultyManager struct {
	cfg   DifficultyConfig
	level float64 // level at zero progress
}

// NewDifficultyManager creates a manager starting at cfg.InitialLevel.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, level: clamp01(cfg.InitialLevel)}
}

// SetInitialLevel overrides the starting level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.level = clamp01(level)
}

// SetEnabled enables or disables progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether the level moves with progress.
func (d *DifficultyManager) IsEnabled() bool {
	if !d.cfg.Enabled {
		return false
	}
	t := d.cfg.Progression.Type
	return t == "score" || t == "time"
}

// Level returns the difficulty level (0.0 to 1.0) after score points and
// ticks. It climbs linearly from the initial level to 1.0 at max_at.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.IsEnabled() {
		return d.level
	}

	progress := float64(score)
	if d.cfg.Progression.Type == "time" {
		progress = float64(ticks)
	}
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}
	return d.level + clamp01(progress/maxAt)*(1-d.level)
}

// Speed scales baseSpeed up to baseSpeed * (1 + speed_multiplier) at the
// hardest level.
func (d *DifficultyManager) Speed(baseSpeed float64, score, ticks int) float64 {
	return baseSpeed * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
