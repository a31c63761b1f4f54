package config

import "math"

// Difficulty scalar bounds.
const (
	MinDifficulty = 1.0
	MaxDifficulty = 3.0
)

// What the difficulty scalar acts on.
const (
	TargetStep  = "step"  // Divides the robot's movement step
	TargetScore = "score" // Multiplies brick points
)

// DifficultyConfig defines the difficulty scalar and what it scales.
type DifficultyConfig struct {
	Level  float64 `yaml:"level"`  // 1.0 = easy, 3.0 = hard
	Target string  `yaml:"target"` // "step" or "score"
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// LevelForPreset returns the difficulty level for a preset.
func LevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 2.0
	case DifficultyHard:
		return 3.0
	default:
		return MinDifficulty
	}
}

// DifficultyManager derives gameplay parameters from the difficulty scalar.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.Level = clampF(cfg.Level, MinDifficulty, MaxDifficulty)
	return &DifficultyManager{cfg: cfg}
}

// Level returns the clamped difficulty scalar.
func (d *DifficultyManager) Level() float64 {
	return d.cfg.Level
}

// StepSize returns the movement step for the current difficulty.
func (d *DifficultyManager) StepSize(base float64) float64 {
	if d.cfg.Target != TargetStep {
		return base
	}
	return base / d.cfg.Level
}

// PointsMultiplier returns the factor applied to brick points.
func (d *DifficultyManager) PointsMultiplier() int {
	if d.cfg.Target != TargetScore {
		return 1
	}
	return int(math.Round(d.cfg.Level))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
