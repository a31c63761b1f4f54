// Package config provides YAML-based game configuration loading and
// difficulty management for brickbot.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for unusable configurations.
var ErrInvalidConfig = errors.New("invalid config")

// BrickbotConfig contains all configuration for a brickbot session.
type BrickbotConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Brick      BrickConfig      `yaml:"brick"`
	Robot      RobotConfig      `yaml:"robot"`
	Pose       PoseConfig       `yaml:"pose"`
	Camera     CameraConfig     `yaml:"camera"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig describes the brick field.
type FieldConfig struct {
	Width    float64 `yaml:"width"`
	Layout   string  `yaml:"layout"`   // "grid", "line" or "checker"
	Columns  int     `yaml:"columns"`  // Bricks per row
	Rows     int     `yaml:"rows"`     // Ignored by the "line" layout
	Distance float64 `yaml:"distance"` // Z of the first row, measured from the robot start
	RowGap   float64 `yaml:"row_gap"`
}

// BrickConfig holds per-brick parameters. A zero Width means field.width / columns.
type BrickConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Depth  float64 `yaml:"depth"`
	Type   int     `yaml:"type"`
}

// RobotConfig defines the robot's movement and energy budget.
type RobotConfig struct {
	MaxEnergy  int     `yaml:"max_energy"`
	EnergyCost int     `yaml:"energy_cost"` // Energy spent per frame
	StepSize   float64 `yaml:"step_size"`
	TurnAngle  float64 `yaml:"turn_angle"` // Degrees per turn command
	Radius     float64 `yaml:"radius"`     // Reach used by the touch test
	Smoothing  float64 `yaml:"smoothing"`  // 1 snaps the rendered pose to the logical one
	EyeHeight  float64 `yaml:"eye_height"`
}

// PoseConfig contains the visual tuning values for the robot model.
type PoseConfig struct {
	HeadRotation float64 `yaml:"head_rotation"` // Degrees, [-80, 80]
	BodyRotation float64 `yaml:"body_rotation"` // Degrees, [-45, 30]
	LegScale     float64 `yaml:"leg_scale"`     // [1, 1.2]
}

// CameraConfig defines the primary camera and its orbit controls.
type CameraConfig struct {
	FOV        float64    `yaml:"fov"` // Vertical, degrees
	Near       float64    `yaml:"near"`
	Far        float64    `yaml:"far"`
	Position   [3]float64 `yaml:"position"`
	Target     [3]float64 `yaml:"target"`
	OrbitSpeed float64    `yaml:"orbit_speed"` // Radians per dragged cell
	ZoomStep   float64    `yaml:"zoom_step"`   // World units per wheel notch
}

// Pose limits, taken from the tuning panel ranges.
const (
	MinHeadRotation = -80.0
	MaxHeadRotation = 80.0
	MinBodyRotation = -45.0
	MaxBodyRotation = 30.0
	MinLegScale     = 1.0
	MaxLegScale     = 1.2
)

// Known field layouts.
var knownLayouts = map[string]bool{
	"grid":    true,
	"line":    true,
	"checker": true,
}

// Validate reports the first unusable value in the configuration.
func (c BrickbotConfig) Validate() error {
	switch {
	case c.Field.Width <= 0:
		return fmt.Errorf("%w: field.width must be positive, got %v", ErrInvalidConfig, c.Field.Width)
	case c.Field.Columns <= 0:
		return fmt.Errorf("%w: field.columns must be positive, got %d", ErrInvalidConfig, c.Field.Columns)
	case c.Field.Rows <= 0:
		return fmt.Errorf("%w: field.rows must be positive, got %d", ErrInvalidConfig, c.Field.Rows)
	case !knownLayouts[c.Field.Layout]:
		return fmt.Errorf("%w: unknown field.layout %q", ErrInvalidConfig, c.Field.Layout)
	case c.Brick.Width < 0 || c.Brick.Height <= 0 || c.Brick.Depth <= 0:
		return fmt.Errorf("%w: brick dimensions must be positive", ErrInvalidConfig)
	case c.Robot.MaxEnergy <= 0:
		return fmt.Errorf("%w: robot.max_energy must be positive, got %d", ErrInvalidConfig, c.Robot.MaxEnergy)
	case c.Robot.EnergyCost <= 0:
		return fmt.Errorf("%w: robot.energy_cost must be positive, got %d", ErrInvalidConfig, c.Robot.EnergyCost)
	case c.Robot.StepSize <= 0:
		return fmt.Errorf("%w: robot.step_size must be positive, got %v", ErrInvalidConfig, c.Robot.StepSize)
	case c.Robot.Smoothing <= 0 || c.Robot.Smoothing > 1:
		return fmt.Errorf("%w: robot.smoothing must be in (0, 1], got %v", ErrInvalidConfig, c.Robot.Smoothing)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: camera near/far planes are inverted", ErrInvalidConfig)
	case c.Difficulty.Level < MinDifficulty || c.Difficulty.Level > MaxDifficulty:
		return fmt.Errorf("%w: difficulty.level must be in [%v, %v], got %v",
			ErrInvalidConfig, MinDifficulty, MaxDifficulty, c.Difficulty.Level)
	case c.Difficulty.Target != TargetStep && c.Difficulty.Target != TargetScore:
		return fmt.Errorf("%w: unknown difficulty.target %q", ErrInvalidConfig, c.Difficulty.Target)
	}
	return nil
}

// clampPose forces the pose into the ranges the robot model supports.
func (c *BrickbotConfig) clampPose() {
	c.Pose.HeadRotation = clampF(c.Pose.HeadRotation, MinHeadRotation, MaxHeadRotation)
	c.Pose.BodyRotation = clampF(c.Pose.BodyRotation, MinBodyRotation, MaxBodyRotation)
	c.Pose.LegScale = clampF(c.Pose.LegScale, MinLegScale, MaxLegScale)
}
