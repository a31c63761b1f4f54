package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickbot/internal/core"
)

func TestCommandsDroppedWhileStopped(t *testing.T) {
	s, _, _ := newTestSession(t, singleBrickConfig())
	before := s.Snapshot()

	for _, code := range []core.KeyCode{core.KeyLeft, core.KeyUp, core.KeyRight, core.KeyDown, core.KeyV, 0, 999} {
		assert.False(t, s.Input.HandleKey(code), "key %d", code)
	}
	after := s.Snapshot()
	assert.Equal(t, before.Hash(), after.Hash())
	assert.Equal(t, CameraNormal, s.State.Mode())
}

func TestCommandsDroppedWhenDead(t *testing.T) {
	s, sched, _ := newTestSession(t, singleBrickConfig())
	s.Loop.Start()
	sched.Run(100)
	require.True(t, s.Scene.Robot().IsDead())
	before := s.Snapshot()

	for _, code := range []core.KeyCode{core.KeySpace, core.KeyLeft, core.KeyUp, core.KeyRight, core.KeyDown, core.KeyV} {
		assert.False(t, s.Input.HandleKey(code), "key %d", code)
	}
	after := s.Snapshot()
	assert.Equal(t, before.Hash(), after.Hash())
	assert.False(t, s.Loop.Running())
}

func TestStartStopKey(t *testing.T) {
	s, sched, _ := newTestSession(t, singleBrickConfig())

	assert.True(t, s.Input.HandleKey(core.KeySpace))
	assert.True(t, s.Loop.Running())
	assert.Equal(t, 1, sched.Pending())

	assert.True(t, s.Input.HandleKey(core.KeySpace))
	assert.False(t, s.Loop.Running())
	assert.Zero(t, sched.Pending())
}

func TestMovementKeys(t *testing.T) {
	s, _, _ := newTestSession(t, singleBrickConfig())
	robot := s.Scene.Robot()
	s.Loop.Start()

	require.True(t, s.Input.HandleKey(core.KeyUp))
	assert.InDelta(t, 10, robot.Position().Z(), 1e-9)
	require.True(t, s.Input.HandleKey(core.KeyDown))
	assert.InDelta(t, 0, robot.Position().Z(), 1e-9)
	require.True(t, s.Input.HandleKey(core.KeyLeft))
	assert.Greater(t, robot.Heading(), 0.0)
	require.True(t, s.Input.HandleKey(core.KeyRight))
	require.True(t, s.Input.HandleKey(core.KeyRight))
	assert.Less(t, robot.Heading(), 0.0)
}

func TestCameraToggle(t *testing.T) {
	s, sched, rec := newTestSession(t, singleBrickConfig())
	controls := s.Scene.CameraControls()

	assert.False(t, s.Input.HandleKey(core.KeyV), "toggle needs a running loop")
	assert.Equal(t, CameraNormal, s.State.Mode())

	s.Loop.Start()
	require.True(t, s.Input.HandleKey(core.KeyV))
	assert.Equal(t, CameraEye, s.State.Mode())
	assert.False(t, controls.Enabled)

	sched.Step()
	assert.Same(t, s.Scene.EyeCamera(), rec.lastCam)

	require.True(t, s.Input.HandleKey(core.KeyV))
	assert.Equal(t, CameraNormal, s.State.Mode())
	assert.True(t, controls.Enabled)
}

func TestPointerGatedByCameraMode(t *testing.T) {
	s, sched, _ := newTestSession(t, singleBrickConfig())
	cam := s.Scene.Camera()
	s.Loop.Start()
	require.True(t, s.Input.HandleKey(core.KeyV))

	before := cam.Position
	s.Input.HandlePointer(PointerEvent{Kind: PointerDown})
	s.Input.HandlePointer(PointerEvent{Kind: PointerDrag, DX: 40, DY: 10})
	s.Input.HandlePointer(PointerEvent{Kind: PointerWheel, Wheel: 3})
	sched.Step()
	assert.Equal(t, before, cam.Position, "eye mode ignores the pointer")

	require.True(t, s.Input.HandleKey(core.KeyV))
	s.Input.HandlePointer(PointerEvent{Kind: PointerDown})
	s.Input.HandlePointer(PointerEvent{Kind: PointerDrag, DX: 40})
	sched.Step()
	assert.NotEqual(t, before, cam.Position)
}

func TestHandleResize(t *testing.T) {
	s, _, rec := newTestSession(t, singleBrickConfig())
	s.Input.HandleResize(120, 40, 1.5)
	assert.Equal(t, 120, rec.width)
	assert.Equal(t, 40, rec.height)
	assert.Equal(t, 1.5, s.Scene.Camera().Aspect)
}
