package config

import (
	_ "embed"
)

//go:embed defaults/brickbot.yaml
var defaultBrickbotYAML []byte

// DefaultBrickbotConfig returns the built-in configuration.
// It mirrors defaults/brickbot.yaml and is used when the embedded file cannot be parsed.
func DefaultBrickbotConfig() BrickbotConfig {
	return BrickbotConfig{
		Field: FieldConfig{
			Width:    400,
			Layout:   "grid",
			Columns:  10,
			Rows:     3,
			Distance: 100,
			RowGap:   10,
		},
		Brick: BrickConfig{
			Width:  0,
			Height: 20,
			Depth:  20,
			Type:   0,
		},
		Robot: RobotConfig{
			MaxEnergy:  100,
			EnergyCost: 1,
			StepSize:   10,
			TurnAngle:  15,
			Radius:     5,
			Smoothing:  0.5,
			EyeHeight:  40,
		},
		Pose: PoseConfig{
			HeadRotation: 0,
			BodyRotation: 0,
			LegScale:     1,
		},
		Camera: CameraConfig{
			FOV:        45,
			Near:       0.1,
			Far:        5000,
			Position:   [3]float64{0, 300, -300},
			Target:     [3]float64{0, 0, 100},
			OrbitSpeed: 0.05,
			ZoomStep:   20,
		},
		Difficulty: DifficultyConfig{
			Level:  1,
			Target: TargetStep,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBrickbotYAML
}
