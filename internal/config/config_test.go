package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultBrickbotConfig(), cfg, "embedded YAML and DefaultBrickbotConfig() disagree")
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("field:\n  width: 200\n  layout: line\nrobot:\n  max_energy: 50\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 200.0, cfg.Field.Width)
	assert.Equal(t, "line", cfg.Field.Layout)
	assert.Equal(t, 50, cfg.Robot.MaxEnergy)
	assert.Equal(t, 10.0, cfg.Robot.StepSize, "unset values keep defaults")
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParseClampsPose(t *testing.T) {
	cfg, err := Parse([]byte("pose:\n  head_rotation: 120\n  body_rotation: -90\n  leg_scale: 3\n"))
	require.NoError(t, err)
	assert.Equal(t, MaxHeadRotation, cfg.Pose.HeadRotation)
	assert.Equal(t, MinBodyRotation, cfg.Pose.BodyRotation)
	assert.Equal(t, MaxLegScale, cfg.Pose.LegScale)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BrickbotConfig)
	}{
		{"zero field width", func(c *BrickbotConfig) { c.Field.Width = 0 }},
		{"zero columns", func(c *BrickbotConfig) { c.Field.Columns = 0 }},
		{"unknown layout", func(c *BrickbotConfig) { c.Field.Layout = "spiral" }},
		{"negative brick width", func(c *BrickbotConfig) { c.Brick.Width = -1 }},
		{"no energy", func(c *BrickbotConfig) { c.Robot.MaxEnergy = 0 }},
		{"free frames", func(c *BrickbotConfig) { c.Robot.EnergyCost = 0 }},
		{"smoothing above one", func(c *BrickbotConfig) { c.Robot.Smoothing = 1.5 }},
		{"inverted planes", func(c *BrickbotConfig) { c.Camera.Far = 0.01 }},
		{"difficulty out of range", func(c *BrickbotConfig) { c.Difficulty.Level = 4 }},
		{"unknown target", func(c *BrickbotConfig) { c.Difficulty.Target = "lives" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBrickbotConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	assert.NoError(t, DefaultBrickbotConfig().Validate(), "defaults validate")
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultBrickbotConfig()
	ApplyPreset(&cfg, DifficultyHard)
	assert.Equal(t, 3.0, cfg.Difficulty.Level)
	assert.Equal(t, 75, cfg.Robot.MaxEnergy)

	fixed := DefaultBrickbotConfig()
	fixed.Difficulty.Level = 2.5
	ApplyPreset(&fixed, DifficultyFixed)
	assert.Equal(t, 2.5, fixed.Difficulty.Level, "fixed preset keeps the configured level")
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	cfg := DefaultBrickbotConfig()
	cfg.Field.Layout = "checker"
	data, err := Marshal(cfg)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "checker", back.Field.Layout)
}
