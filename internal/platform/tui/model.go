package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/scenekit/internal/core"
)

// Model is the Bubble Tea model for running a scene session. The game
// loop runs in a command; the model only forwards input and shows frames.
type Model struct {
	session  *Session
	renderer *lipgloss.Renderer
	keys     KeyMap
	help     help.Model
	ctx      context.Context
	cancel   context.CancelFunc
	frame    *core.Screen
	width    int
	err      error
	quitting bool
}

// NewModel creates a model for s. The game stops when ctx is done. A nil
// renderer uses the process's terminal.
func NewModel(ctx context.Context, s *Session, r *lipgloss.Renderer) Model {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	ctx, cancel := context.WithCancel(ctx)

	w, _ := s.Surface.Size()
	return Model{
		session:  s,
		renderer: r,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		ctx:      ctx,
		cancel:   cancel,
		width:    w,
	}
}

// Init starts the game loop and waits for its first frame.
func (m Model) Init() tea.Cmd {
	g, ctx := m.session.Game, m.ctx
	run := func() tea.Msg {
		return DoneMsg{Err: g.Run(ctx)}
	}
	return tea.Batch(run, waitFrame(m.session.Surface))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := mouseEvent(msg); ok {
			m.session.Queue.Push(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		if msg.surface != nil && msg.surface != m.session.Surface {
			return m, nil
		}
		m.frame = msg.Screen
		return m, waitFrame(m.session.Surface)

	case DoneMsg:
		m.err = msg.Err
		m.quitting = true
		m.cancel()
		return m, tea.Quit
	}

	return m, nil
}

// handleKey forwards keys to the scene. Quit is delivered as a scene event
// so the running tick completes; a second quit cancels the loop outright.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		if m.quitting {
			m.cancel()
			return m, nil
		}
		m.quitting = true
		m.session.Queue.Push(core.QuitEvent())
		return m, nil
	}

	m.session.Queue.Push(core.KeyDown(keyName(msg)))
	return m, nil
}

// View renders the latest frame and a status line.
func (m Model) View() string {
	if m.frame == nil {
		return centerText("starting "+m.session.Title+"...", m.width)
	}

	status := m.renderer.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render(m.session.Title + " · " + m.help.View(m.keys))

	return RenderScreen(m.renderer, m.frame) + "\n" + status
}

// Err returns the error the game loop ended with, if any.
func (m Model) Err() error {
	if errors.Is(m.err, ErrClosed) {
		return nil
	}
	return m.err
}

// Play runs s on the local terminal until the game ends or the user quits.
func Play(ctx context.Context, s *Session) error {
	defer s.Close()

	p := tea.NewProgram(
		NewModel(ctx, s, nil),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
