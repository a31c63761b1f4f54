package game

// CameraMode selects the active viewpoint.
type CameraMode int

const (
	CameraNormal CameraMode = iota // Primary camera, orbit controls allowed
	CameraEye                      // Robot eye level, orbit controls disabled
)

// String returns a human-readable name for the mode.
func (m CameraMode) String() string {
	switch m {
	case CameraNormal:
		return "Normal"
	case CameraEye:
		return "Eye"
	default:
		return "Unknown"
	}
}

// ApplicationState tracks the camera mode. Normal is the initial state.
type ApplicationState struct {
	mode CameraMode
}

// NewApplicationState returns a state in Normal mode.
func NewApplicationState() *ApplicationState {
	return &ApplicationState{mode: CameraNormal}
}

// Mode returns the current camera mode.
func (a *ApplicationState) Mode() CameraMode {
	return a.mode
}

// Toggle flips Normal and Eye. It is a no-op unless the loop is running and
// the robot is alive. Camera controls are disabled while in Eye mode.
func (a *ApplicationState) Toggle(loop *AnimationLoop, scene *Scene) bool {
	if !loop.Running() || scene.Robot().IsDead() {
		return false
	}
	if a.mode == CameraNormal {
		a.mode = CameraEye
	} else {
		a.mode = CameraNormal
	}
	scene.CameraControls().Enabled = a.mode == CameraNormal
	return true
}
