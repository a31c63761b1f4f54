package game

import (
	"github.com/vovakirdan/brickbot/internal/core"
)

// InputController turns key, pointer and resize events into commands on the
// session. Commands that are illegal in the current state are dropped.
type InputController struct {
	session *Session
}

// NewInputController binds a controller to a session.
func NewInputController(s *Session) *InputController {
	return &InputController{session: s}
}

// HandleKey dispatches a key code through the binding table.
// Returns true if the key changed any state.
func (ic *InputController) HandleKey(code core.KeyCode) bool {
	return ic.HandleAction(core.ActionForKey(code))
}

// HandleAction applies a semantic action with its gate.
func (ic *InputController) HandleAction(a core.Action) bool {
	s := ic.session
	robot := s.Scene.Robot()

	if a == core.ActionStartStop {
		if robot.IsDead() {
			return false
		}
		if s.Loop.Running() {
			s.Loop.Stop()
			s.logger.Debug("animation loop stopped")
		} else {
			s.Loop.Start()
			s.logger.Debug("animation loop started")
		}
		return true
	}

	if !s.Loop.Running() || robot.IsDead() {
		if a != core.ActionNone {
			s.logger.Debug("command dropped", "action", a, "running", s.Loop.Running(), "dead", robot.IsDead())
		}
		return false
	}

	switch a {
	case core.ActionTurnLeft:
		return ic.move(TurnLeft)
	case core.ActionMoveForward:
		return ic.move(Forward)
	case core.ActionTurnRight:
		return ic.move(TurnRight)
	case core.ActionMoveBackward:
		return ic.move(Backward)
	case core.ActionToggleCamera:
		if s.State.Toggle(s.Loop, s.Scene) {
			s.logger.Debug("camera mode", "mode", s.State.Mode())
			return true
		}
	}
	return false
}

func (ic *InputController) move(d Direction) bool {
	s := ic.session
	res, broken := s.Scene.MoveRobot(d)
	for _, b := range broken {
		s.logger.Debug("brick broken", "brick", b.ID(), "points", b.Points(), "total", s.Scene.Robot().CurrentPoints(), "by", d)
	}
	return res == MoveApplied
}

// HandlePointer enables camera controls only in Normal mode, then hands the
// event to them.
func (ic *InputController) HandlePointer(ev PointerEvent) {
	s := ic.session
	controls := s.Scene.CameraControls()
	if ev.Kind == PointerDown || ev.Kind == PointerWheel {
		controls.Enabled = s.State.Mode() == CameraNormal
	}
	controls.Queue(ev)
}

// HandleResize updates the camera aspect and the renderer surface.
// aspect is width/height as seen by the viewer.
func (ic *InputController) HandleResize(width, height int, aspect float64) {
	s := ic.session
	s.Scene.SetCameraAspect(aspect)
	if s.renderer != nil {
		s.renderer.Resize(width, height)
	}
}
