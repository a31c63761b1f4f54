package game

import (
	"github.com/go-gl/mathgl/mgl64"
)

// eyeLookDistance is how far ahead of the robot the eye camera aims.
const eyeLookDistance = 100.0

// SceneParams configures the scene graph.
type SceneParams struct {
	FieldWidth float64
	EyeHeight  float64
	Pose       Pose
	Camera     Camera // Primary camera
	OrbitSpeed float64
	ZoomStep   float64
}

// Scene is the scene graph: it owns the robot, the bricks and both cameras,
// and answers spatial questions about them.
type Scene struct {
	robot     *Robot
	bricks    []*Brick
	camera    *Camera
	eyeCamera *Camera
	controls  *CameraControls

	eyeHeight float64
	pose      Pose

	// Walkable area on the ground plane
	minX, maxX float64
	minZ, maxZ float64
}

// NewScene assembles a scene around a robot and its brick field.
func NewScene(robot *Robot, bricks []*Brick, p SceneParams) *Scene {
	primary := p.Camera
	if primary.Up == (mgl64.Vec3{}) {
		primary.Up = mgl64.Vec3{0, 1, 0}
	}
	eye := primary
	eye.Up = mgl64.Vec3{0, 1, 0}

	half := p.FieldWidth / 2
	s := &Scene{
		robot:     robot,
		bricks:    bricks,
		camera:    &primary,
		eyeCamera: &eye,
		eyeHeight: p.EyeHeight,
		pose:      p.Pose,
		minX:      -half,
		maxX:      half,
		minZ:      -half / 2,
		maxZ:      half / 2,
	}
	for _, b := range bricks {
		_, hi := b.Bounds()
		s.maxZ = max(s.maxZ, hi.Z()+half/2)
	}
	s.controls = NewCameraControls(s.camera, p.OrbitSpeed, p.ZoomStep)
	s.followRobot()
	return s
}

// Robot returns the robot.
func (s *Scene) Robot() *Robot { return s.robot }

// Bricks returns the bricks in creation order.
func (s *Scene) Bricks() []*Brick { return s.bricks }

// Camera returns the primary camera.
func (s *Scene) Camera() *Camera { return s.camera }

// EyeCamera returns the robot's eye-level camera.
func (s *Scene) EyeCamera() *Camera { return s.eyeCamera }

// CameraControls returns the orbit controls of the primary camera.
func (s *Scene) CameraControls() *CameraControls { return s.controls }

// ActiveCamera returns the camera selected by mode.
func (s *Scene) ActiveCamera(mode CameraMode) *Camera {
	if mode == CameraEye {
		return s.eyeCamera
	}
	return s.camera
}

// SetCameraAspect updates the aspect ratio of both cameras.
func (s *Scene) SetCameraAspect(aspect float64) {
	if aspect <= 0 {
		return
	}
	s.camera.Aspect = aspect
	s.eyeCamera.Aspect = aspect
}

// MoveRobot forwards a movement command and keeps the robot on the field.
// Bricks touched anywhere along the path are broken immediately, so several
// moves between two frames cannot carry the robot through a brick.
// Returns the bricks broken by this move.
func (s *Scene) MoveRobot(d Direction) (MoveResult, []*Brick) {
	from := s.robot.Position()
	res := s.robot.Move(d)
	if res != MoveApplied {
		return res, nil
	}
	p := s.robot.Position()
	s.robot.placeAt(mgl64.Vec3{
		mgl64.Clamp(p.X(), s.minX, s.maxX),
		p.Y(),
		mgl64.Clamp(p.Z(), s.minZ, s.maxZ),
	})
	return res, s.breakAlong(from, s.robot.Position())
}

// breakAlong breaks every intact brick within reach of the segment.
func (s *Scene) breakAlong(from, to mgl64.Vec3) []*Brick {
	var broken []*Brick
	for _, b := range s.bricks {
		if !b.Broken() && b.TouchesSegment(from, to, s.robot.Radius()) {
			s.robot.OnBrickTouch(b)
			broken = append(broken, b)
		}
	}
	return broken
}

// TouchedBricks returns the intact bricks the robot currently touches.
func (s *Scene) TouchedBricks() []*Brick {
	var touched []*Brick
	pos := s.robot.Position()
	for _, b := range s.bricks {
		if !b.Broken() && b.Touches(pos, s.robot.Radius()) {
			touched = append(touched, b)
		}
	}
	return touched
}

// RemainingBricks counts the bricks that are not broken.
func (s *Scene) RemainingBricks() int {
	n := 0
	for _, b := range s.bricks {
		if !b.Broken() {
			n++
		}
	}
	return n
}

// Animate advances one frame: camera controls, robot easing, the eye camera,
// and brick touches at the current position. Returns the bricks broken this
// frame.
func (s *Scene) Animate() []*Brick {
	s.controls.Update()
	s.robot.Animate(s.pose)
	s.followRobot()

	pos := s.robot.Position()
	return s.breakAlong(pos, pos)
}

// followRobot places the eye camera at the robot's head. The look direction
// combines the heading with the body and head rotation of the pose.
func (s *Scene) followRobot() {
	pos := s.robot.DisplayPosition()
	height := s.eyeHeight * max(s.pose.LegScale, 1)
	eye := pos.Add(mgl64.Vec3{0, height, 0})

	look := mgl64.Rotate3DY(s.robot.DisplayHeading() + s.pose.BodyRotation + s.pose.HeadRotation).Mul3x1(mgl64.Vec3{0, 0, 1})
	s.eyeCamera.Position = eye
	s.eyeCamera.Target = eye.Add(look.Mul(eyeLookDistance))
}
