package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneTouchBreaksOnce(t *testing.T) {
	s, _, _ := newTestSession(t, singleBrickConfig())
	scene := s.Scene

	assert.Empty(t, scene.Animate())
	assert.Equal(t, 1, scene.RemainingBricks())

	res, broken := scene.MoveRobot(Forward)
	assert.Equal(t, MoveApplied, res)
	assert.Empty(t, broken, "z=10 is out of reach")

	_, broken = scene.MoveRobot(Forward)
	require.Len(t, broken, 1)
	assert.Zero(t, scene.RemainingBricks())
	assert.Equal(t, 10, scene.Robot().CurrentPoints())

	_, broken = scene.MoveRobot(Forward)
	assert.Empty(t, broken, "broken bricks are not touched again")
	assert.Empty(t, scene.Animate())
	assert.Equal(t, 10, scene.Robot().CurrentPoints())
}

func TestSceneLargeStepSweepsBricks(t *testing.T) {
	cfg := singleBrickConfig()
	cfg.Robot.StepSize = 100
	s, _, _ := newTestSession(t, cfg)
	scene := s.Scene

	// One step jumps from z=0 to z=100, well past the far face at z=40
	_, broken := scene.MoveRobot(Forward)
	require.Len(t, broken, 1)
	assert.InDelta(t, 100, scene.Robot().Position().Z(), 1e-9)
	assert.Equal(t, 10, scene.Robot().CurrentPoints())
}

func TestSceneTurnsBreakInPlace(t *testing.T) {
	s, _, _ := newTestSession(t, singleBrickConfig())
	scene := s.Scene

	scene.MoveRobot(Forward)
	scene.Robot().placeAt(mgl64.Vec3{0, 0, 18})
	_, broken := scene.MoveRobot(TurnLeft)
	assert.Len(t, broken, 1, "a turn within reach still touches")
}

func TestSceneAnimateTouchesAtRest(t *testing.T) {
	s, _, _ := newTestSession(t, singleBrickConfig())
	scene := s.Scene

	scene.Robot().placeAt(mgl64.Vec3{0, 0, 30})
	broken := scene.Animate()
	require.Len(t, broken, 1)
	assert.Empty(t, scene.TouchedBricks())
}

func TestSceneClampsRobotToField(t *testing.T) {
	s, _, _ := newTestSession(t, singleBrickConfig())
	scene := s.Scene

	for i := 0; i < 50; i++ {
		scene.MoveRobot(Backward)
	}
	assert.InDelta(t, -100, scene.Robot().Position().Z(), 1e-9)

	scene.MoveRobot(TurnLeft)
	scene.MoveRobot(TurnLeft)
	scene.MoveRobot(TurnLeft)
	scene.MoveRobot(TurnLeft)
	scene.MoveRobot(TurnLeft)
	scene.MoveRobot(TurnLeft)
	for i := 0; i < 50; i++ {
		scene.MoveRobot(Forward)
	}
	assert.InDelta(t, 200, scene.Robot().Position().X(), 1e-9)
}

func TestEyeCameraFollowsRobot(t *testing.T) {
	cfg := singleBrickConfig()
	s, _, _ := newTestSession(t, cfg)
	scene := s.Scene

	scene.MoveRobot(Backward)
	scene.Animate()

	eye := scene.EyeCamera()
	assert.True(t, eye.Position.ApproxEqual(mgl64.Vec3{0, cfg.Robot.EyeHeight, -10}), "eye at %v", eye.Position)
	dir := eye.Target.Sub(eye.Position).Normalize()
	assert.True(t, dir.ApproxEqual(mgl64.Vec3{0, 0, 1}), "eye looks along heading, got %v", dir)
}

func TestCameraControlsOrbit(t *testing.T) {
	cam := &Camera{Position: mgl64.Vec3{0, 300, -300}, Target: mgl64.Vec3{0, 0, 100}}
	cc := NewCameraControls(cam, 0.05, 20)
	radius := cam.Position.Sub(cam.Target).Len()

	cc.Queue(PointerEvent{Kind: PointerDrag, DX: 10})
	cc.Update()
	assert.False(t, cam.Position.ApproxEqual(mgl64.Vec3{0, 300, -300}))
	assert.InDelta(t, radius, cam.Position.Sub(cam.Target).Len(), 1e-6)

	cc.Queue(PointerEvent{Kind: PointerWheel, Wheel: 1})
	cc.Update()
	assert.InDelta(t, radius-20, cam.Position.Sub(cam.Target).Len(), 1e-6)

	cc.Enabled = false
	before := cam.Position
	cc.Queue(PointerEvent{Kind: PointerDrag, DX: 50, DY: 50})
	cc.Update()
	assert.Equal(t, before, cam.Position)
}

func TestActiveCamera(t *testing.T) {
	s, _, _ := newTestSession(t, singleBrickConfig())
	assert.Same(t, s.Scene.Camera(), s.Scene.ActiveCamera(CameraNormal))
	assert.Same(t, s.Scene.EyeCamera(), s.Scene.ActiveCamera(CameraEye))

	s.Scene.SetCameraAspect(2)
	assert.Equal(t, 2.0, s.Scene.Camera().Aspect)
	assert.Equal(t, 2.0, s.Scene.EyeCamera().Aspect)
	s.Scene.SetCameraAspect(0)
	assert.Equal(t, 2.0, s.Scene.Camera().Aspect)
}

func TestEyeCameraAppliesBodyAndHeadRotation(t *testing.T) {
	cfg := singleBrickConfig()
	cfg.Pose.BodyRotation = 30
	cfg.Pose.HeadRotation = 60
	s, _, _ := newTestSession(t, cfg)

	s.Scene.Animate()
	eye := s.Scene.EyeCamera()
	dir := eye.Target.Sub(eye.Position).Normalize()
	assert.True(t, dir.ApproxEqualThreshold(mgl64.Vec3{1, 0, 0}, 1e-9), "eye looks along +X, got %v", dir)
}
