package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickbot/internal/config"
	"github.com/vovakirdan/brickbot/internal/core"
)

func newTestModel(t *testing.T, energy int) Model {
	t.Helper()
	cfg := config.DefaultBrickbotConfig()
	cfg.Robot.MaxEnergy = energy
	m, err := NewModel(cfg, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 1000, Seed: 1}, nil)
	require.NoError(t, err)
	return m
}

// nextFrame runs cmd and returns the first frame message it produces.
func nextFrame(t *testing.T, cmd tea.Cmd) FrameMsg {
	t.Helper()
	require.NotNil(t, cmd, "expected a frame command")
	switch msg := cmd().(type) {
	case FrameMsg:
		return msg
	case tea.BatchMsg:
		for _, c := range msg {
			if c != nil {
				return nextFrame(t, c)
			}
		}
	}
	require.FailNow(t, "command produced no frame")
	return FrameMsg{}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return nm, cmd
}

func TestModelRunsFrames(t *testing.T) {
	m := newTestModel(t, 100)
	cmd := m.Init()
	require.True(t, m.Session().Loop.Running(), "Init starts the loop")

	for i := 0; i < 3; i++ {
		m, cmd = update(t, m, nextFrame(t, cmd))
	}
	assert.Equal(t, uint64(3), m.Session().Loop.Frames())
	assert.Contains(t, m.View(), "ENERGY: 97% · POINTS: 0")
}

func TestModelStartStopKey(t *testing.T) {
	m := newTestModel(t, 100)
	cmd := m.Init()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	require.False(t, m.Session().Loop.Running(), "space stops the loop")

	// The frame already in flight was cancelled
	m, _ = update(t, m, nextFrame(t, cmd))
	assert.Zero(t, m.Session().Loop.Frames())

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.True(t, m.Session().Loop.Running(), "space restarts the loop")
	assert.NotNil(t, cmd)
}

func TestModelGameOverAndRestart(t *testing.T) {
	m := newTestModel(t, 2)
	cmd := m.Init()
	first := m.Session().ID

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	require.Equal(t, first, m.Session().ID, "restart before game over is ignored")

	m, cmd = update(t, m, nextFrame(t, cmd))
	m, cmd = update(t, m, nextFrame(t, cmd))
	assert.Nil(t, cmd, "no frame is requested after game over")
	assert.Contains(t, m.View(), GameOverText(0))

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	require.NotEqual(t, first, m.Session().ID, "restart builds a new session")
	assert.True(t, m.Session().Loop.Running())
	assert.NotNil(t, cmd)
	assert.NotContains(t, m.View(), "Game over!")
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, 100)
	m.Init()

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd, "expected quit command")
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.Session().Loop.Running(), "quitting stops the loop")
	assert.Empty(t, m.View())
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, 100)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	w, h := m.viewport()
	assert.Equal(t, w, m.renderer.Screen().Width())
	assert.Equal(t, h, m.renderer.Screen().Height())
	assert.Equal(t, 100, w)
	assert.Less(t, h, 30)
}

func TestModelCameraToggle(t *testing.T) {
	m := newTestModel(t, 100)
	m.Init()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'v'}})
	assert.Contains(t, m.View(), "camera: Eye")
}
