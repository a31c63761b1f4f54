package core

// KeyCode is a host-independent key identifier. Values match the classic DOM
// keyCode numbers so the binding table stays stable across hosts.
type KeyCode int

// Recognized key codes.
const (
	KeySpace KeyCode = 32
	KeyLeft  KeyCode = 37
	KeyUp    KeyCode = 38
	KeyRight KeyCode = 39
	KeyDown  KeyCode = 40
	KeyV     KeyCode = 86
)

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone         Action = iota
	ActionStartStop           // Space - start or pause the animation loop
	ActionTurnLeft            // Left arrow
	ActionMoveForward         // Up arrow
	ActionTurnRight           // Right arrow
	ActionMoveBackward        // Down arrow
	ActionToggleCamera        // V - switch between normal and eye camera
)

// keyActions is the fixed binding table.
var keyActions = map[KeyCode]Action{
	KeySpace: ActionStartStop,
	KeyLeft:  ActionTurnLeft,
	KeyUp:    ActionMoveForward,
	KeyRight: ActionTurnRight,
	KeyDown:  ActionMoveBackward,
	KeyV:     ActionToggleCamera,
}

// ActionForKey returns the action bound to a key code, or ActionNone.
func ActionForKey(code KeyCode) Action {
	return keyActions[code]
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStartStop:
		return "StartStop"
	case ActionTurnLeft:
		return "TurnLeft"
	case ActionMoveForward:
		return "MoveForward"
	case ActionTurnRight:
		return "TurnRight"
	case ActionMoveBackward:
		return "MoveBackward"
	case ActionToggleCamera:
		return "ToggleCamera"
	default:
		return "Unknown"
	}
}
