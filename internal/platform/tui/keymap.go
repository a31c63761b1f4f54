package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickbot/internal/core"
	"github.com/vovakirdan/brickbot/internal/game"
)

// KeyMap defines the key bindings for a play session.
type KeyMap struct {
	StartStop key.Binding
	Left      key.Binding
	Forward   key.Binding
	Right     key.Binding
	Back      key.Binding
	Camera    key.Binding
	Restart   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.StartStop, k.Forward, k.Left, k.Camera, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Forward, k.Back, k.Left, k.Right},
		{k.StartStop, k.Camera},
		{k.Restart, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		StartStop: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "start/stop"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "turn left"),
		),
		Forward: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "forward"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "turn right"),
		),
		Back: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "back"),
		),
		Camera: key.NewBinding(
			key.WithKeys("v", "V"),
			key.WithHelp("v", "camera"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyCode translates a key message to the game's key code.
// Returns false for keys the game does not bind.
func (k KeyMap) KeyCode(msg tea.KeyMsg) (core.KeyCode, bool) {
	switch {
	case key.Matches(msg, k.StartStop):
		return core.KeySpace, true
	case key.Matches(msg, k.Left):
		return core.KeyLeft, true
	case key.Matches(msg, k.Forward):
		return core.KeyUp, true
	case key.Matches(msg, k.Right):
		return core.KeyRight, true
	case key.Matches(msg, k.Back):
		return core.KeyDown, true
	case key.Matches(msg, k.Camera):
		return core.KeyV, true
	}
	return 0, false
}

// pointerTracker turns Bubble Tea mouse events into pointer events with
// drag deltas.
type pointerTracker struct {
	lastX, lastY int
	dragging     bool
}

// Translate maps a mouse message. Returns false for events the camera
// controls do not use.
func (p *pointerTracker) Translate(msg tea.MouseMsg) (game.PointerEvent, bool) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		return game.PointerEvent{Kind: game.PointerWheel, Wheel: 1}, true
	case msg.Button == tea.MouseButtonWheelDown:
		return game.PointerEvent{Kind: game.PointerWheel, Wheel: -1}, true
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		p.lastX, p.lastY = msg.X, msg.Y
		p.dragging = true
		return game.PointerEvent{Kind: game.PointerDown}, true
	case msg.Action == tea.MouseActionMotion && p.dragging:
		ev := game.PointerEvent{Kind: game.PointerDrag, DX: msg.X - p.lastX, DY: msg.Y - p.lastY}
		p.lastX, p.lastY = msg.X, msg.Y
		return ev, true
	case msg.Action == tea.MouseActionRelease && p.dragging:
		p.dragging = false
		return game.PointerEvent{Kind: game.PointerUp}, true
	}
	return game.PointerEvent{}, false
}
