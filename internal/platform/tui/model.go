package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/session"
)

// Model is the Bubble Tea model for one snake session. Frame messages are fed
// to the session's scheduler; the frame loop stops when a game ends and starts
// again on restart.
type Model struct {
	session  *session.Session
	styler   *Styler
	running  bool // A frame command is outstanding
	quitting bool
}

// NewModel creates a model around an existing session. Init starts its frame
// loop.
func NewModel(s *session.Session, styler *Styler) Model {
	return Model{
		session: s,
		styler:  styler,
		running: true,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.session.FrameInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.session.Resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.session.HandleKey(msg) {
	case session.Quit:
		m.quitting = true
		return m, tea.Quit
	case session.Restarted:
		if !m.running {
			m.running = true
			return m, frameCmd(m.session.FrameInterval())
		}
	}
	return m, nil
}

func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	res := m.session.Frame(now)
	if !res.Reschedule {
		m.running = false
		return m, nil
	}
	m.running = true
	return m, frameCmd(m.session.FrameInterval())
}

// View renders the session screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.styler.Render(m.session.Screen())
}

// Running reports whether the frame loop is active.
func (m Model) Running() bool {
	return m.running
}

// Run plays a session in the local terminal until the player quits.
func Run(s *session.Session) error {
	model := NewModel(s, NewStyler(lipgloss.DefaultRenderer()))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
