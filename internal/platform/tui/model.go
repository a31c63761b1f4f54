package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbot/internal/config"
	"github.com/vovakirdan/brickbot/internal/core"
	"github.com/vovakirdan/brickbot/internal/game"
)

var (
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)
	deadStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	modeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	overlayStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("255")).Padding(1, 3)
	overlayTitle  = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
	overlayFooter = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// hud holds what the loop reports through its hooks. It is shared by
// pointer so Model copies see the same values.
type hud struct {
	status string
	over   bool
	points int
}

// Model is the Bubble Tea model for a brickbot session.
type Model struct {
	cfg     config.BrickbotConfig
	runtime core.RuntimeConfig
	logger  *log.Logger

	keys    KeyMap
	help    help.Model
	pointer *pointerTracker

	sched    *frameScheduler
	renderer *ScreenRenderer
	session  *game.Session
	hud      *hud

	quitting bool
}

// NewModel creates a model and its first session.
func NewModel(cfg config.BrickbotConfig, rt core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := Model{
		cfg:     cfg,
		runtime: rt,
		logger:  logger,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		pointer: &pointerTracker{},
	}
	m.help.Width = rt.ScreenW
	if err := m.newSession(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Session returns the running game session.
func (m Model) Session() *game.Session {
	return m.session
}

// newSession replaces the session with a freshly initialized one.
func (m *Model) newSession() error {
	seed := m.runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	w, h := m.viewport()
	m.sched = newFrameScheduler(m.runtime.TickRate)
	m.renderer = NewScreenRenderer(w, h)
	m.hud = &hud{}
	st := m.hud

	s, err := game.NewSession(game.Options{
		Config:    m.cfg,
		Seed:      seed,
		Aspect:    viewAspect(w, h),
		Scheduler: m.sched,
		Renderer:  m.renderer,
		Hooks: game.LoopHooks{
			Status: func(msg string) { st.status = msg },
			GameOver: func(points int) {
				st.over = true
				st.points = points
			},
		},
		Logger: m.logger,
	})
	if err != nil {
		return err
	}
	st.status = s.Status()
	m.session = s
	return nil
}

// viewport returns the size left for the scene after the status line and help.
func (m Model) viewport() (int, int) {
	helpH := lipgloss.Height(m.help.View(m.keys))
	return max(m.runtime.ScreenW, 0), max(m.runtime.ScreenH-1-helpH, 0)
}

// viewAspect is the visual aspect of a w x h cell area.
func viewAspect(w, h int) float64 {
	return core.RuntimeConfig{ScreenW: w, ScreenH: h}.Aspect()
}

// Init starts the animation loop.
func (m Model) Init() tea.Cmd {
	m.session.Loop.Start()
	return m.sched.Drain()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := m.pointer.Translate(msg); ok {
			m.session.Input.HandlePointer(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case FrameMsg:
		m.sched.Fire(msg)
		return m, m.sched.Drain()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.session.Loop.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		if !m.hud.over {
			return m, nil
		}
		if err := m.newSession(); err != nil {
			m.logger.Error("cannot restart", "error", err)
			return m, tea.Quit
		}
		m.logger.Info("session restarted", "session", m.session.ID)
		m.session.Loop.Start()
		return m, m.sched.Drain()
	}

	if code, ok := m.keys.KeyCode(msg); ok {
		m.session.Input.HandleKey(code)
	}
	return m, m.sched.Drain()
}

// resize propagates the current viewport to the session.
func (m *Model) resize() {
	w, h := m.viewport()
	m.session.Input.HandleResize(w, h, viewAspect(w, h))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	style := statusStyle
	if m.session.Scene.Robot().IsDead() {
		style = deadStyle
	}
	status := style.Render(m.hud.status) + "  " + modeStyle.Render("camera: "+m.session.State.Mode().String())

	var body string
	if m.hud.over {
		w, h := m.viewport()
		body = lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, m.gameOverView())
	} else {
		body = RenderScreen(m.renderer.Screen())
	}

	return lipgloss.JoinVertical(lipgloss.Left, status, body, m.help.View(m.keys))
}

// GameOverText is the headline shown when the robot dies.
func GameOverText(points int) string {
	return fmt.Sprintf("Game over! Total points: %d", points)
}

func (m Model) gameOverView() string {
	scene := m.session.Scene
	total := len(scene.Bricks())
	rows := []table.Row{
		{"Frames", fmt.Sprint(m.session.Loop.Frames())},
		{"Bricks broken", fmt.Sprintf("%d / %d", total-scene.RemainingBricks(), total)},
		{"Points", fmt.Sprint(m.hud.points)},
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Stat", Width: 14},
			{Title: "Value", Width: 10},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(false),
	)
	styles := table.DefaultStyles()
	styles.Selected = lipgloss.NewStyle()
	t.SetStyles(styles)

	return overlayStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		overlayTitle.Render(GameOverText(m.hud.points)),
		"",
		t.View(),
		"",
		overlayFooter.Render("r restart · q quit"),
	))
}

// Run starts the Bubble Tea program for one local session.
func Run(cfg config.BrickbotConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(cfg, rt, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
