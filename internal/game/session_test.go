package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickbot/internal/config"
	"github.com/vovakirdan/brickbot/internal/core"
)

func play(t *testing.T, cfg config.BrickbotConfig, seed int64) *Session {
	t.Helper()
	sched := NewManualScheduler()
	s, err := NewSession(Options{Config: cfg, Seed: seed, Scheduler: sched})
	require.NoError(t, err)

	s.Loop.Start()
	script := []core.KeyCode{core.KeyUp, core.KeyLeft, core.KeyUp, core.KeyV, core.KeyRight, core.KeyUp, core.KeyUp}
	for _, code := range script {
		s.Input.HandleKey(code)
		sched.Step()
	}
	sched.Run(1000)
	return s
}

func TestSessionIsDeterministic(t *testing.T) {
	cfg := config.DefaultBrickbotConfig()
	a := play(t, cfg, 1).Snapshot()
	b := play(t, cfg, 1).Snapshot()
	c := play(t, cfg, 99).Snapshot()

	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, a.Hash(), c.Hash(), "the seed only affects colors")
	assert.True(t, a.Dead)
	assert.Equal(t, uint64(100), a.Frames)
}

func TestSessionRejectsBadField(t *testing.T) {
	cfg := config.DefaultBrickbotConfig()
	cfg.Field.Layout = "nope"
	_, err := NewSession(Options{Config: cfg, Scheduler: NewManualScheduler()})
	require.ErrorIs(t, err, ErrUnknownLayout)

	_, err = NewSession(Options{Config: config.DefaultBrickbotConfig()})
	assert.Error(t, err)
}

func TestSessionDifficultyTargets(t *testing.T) {
	cfg := config.DefaultBrickbotConfig()
	cfg.Difficulty = config.DifficultyConfig{Level: 2, Target: config.TargetScore}
	s, err := NewSession(Options{Config: cfg, Scheduler: NewManualScheduler()})
	require.NoError(t, err)
	assert.Equal(t, 20, s.Scene.Bricks()[0].Points())

	cfg.Difficulty = config.DifficultyConfig{Level: 2, Target: config.TargetStep}
	s, err = NewSession(Options{Config: cfg, Scheduler: NewManualScheduler()})
	require.NoError(t, err)
	s.Loop.Start()
	s.Input.HandleKey(core.KeyUp)
	assert.InDelta(t, 5, s.Scene.Robot().Position().Z(), 1e-9)
	assert.Equal(t, 10, s.Scene.Bricks()[0].Points())
}

func TestSessionIDsAreUnique(t *testing.T) {
	a, _, _ := newTestSession(t, singleBrickConfig())
	b, _, _ := newTestSession(t, singleBrickConfig())
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "ENERGY: 100% · POINTS: 0", a.Status())
}
