package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDifficultyManagerStep(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{Level: 2, Target: TargetStep})

	assert.Equal(t, 5.0, dm.StepSize(10))
	assert.Equal(t, 1, dm.PointsMultiplier(), "points unscaled when scaling step")
}

func TestDifficultyManagerScore(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{Level: 2.6, Target: TargetScore})

	assert.Equal(t, 10.0, dm.StepSize(10), "step unchanged when scaling score")
	assert.Equal(t, 3, dm.PointsMultiplier())
}

func TestDifficultyManagerClampsLevel(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{Level: 0, Target: TargetStep})
	assert.Equal(t, MinDifficulty, dm.Level())
}

func TestParsePreset(t *testing.T) {
	tests := map[string]DifficultyPreset{
		"easy":   DifficultyEasy,
		"normal": DifficultyNormal,
		"hard":   DifficultyHard,
		"fixed":  DifficultyFixed,
		"insane": "",
		"":       "",
	}
	for in, want := range tests {
		assert.Equal(t, want, ParsePreset(in), "ParsePreset(%q)", in)
	}
}
