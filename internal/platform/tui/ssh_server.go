package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/scenekit/internal/core"
	"github.com/vovakirdan/scenekit/internal/registry"
	"github.com/vovakirdan/scenekit/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.scenekit/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// FrameRate overrides the demos' configured rate when positive.
	FrameRate int

	// LogOutput receives server logs. Nil means stderr.
	LogOutput io.Writer
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.scenekit/scores.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer serves demos over SSH, one scene game per session.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	out := cfg.LogOutput
	if out == nil {
		out = os.Stderr
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "scenekit-ssh",
	})

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("tui: cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".scenekit", "host_key")
	}
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", mkdirErr)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// scores returns the store as a registry.ScoreStore, nil when there is none.
func (s *SSHServer) scores() registry.ScoreStore {
	if s.store == nil {
		return nil
	}
	return s.store
}

// scoreSource returns the store as a ScoreSource, nil when there is none.
func (s *SSHServer) scoreSource() ScoreSource {
	if s.store == nil {
		return nil
	}
	return s.store
}

// teaHandler creates the session model for each SSH session. A command
// argument (ssh host -t runner) skips the menu.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	m := NewSessionModel(sess.Context(), s, sess.User(), bubbletea.MakeRenderer(sess), pty.Window.Width, pty.Window.Height)
	if args := sess.Command(); len(args) > 0 {
		m.initial = args[0]
	}

	return m, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

type sessionState int

const (
	stateMenu sessionState = iota
	stateDifficulty
	stateScores
	stateGame
)

// startMsg launches a demo without going through the menu.
type startMsg struct {
	demoID string
}

// SessionModel manages one SSH session: menu -> (difficulty) -> demo -> menu.
type SessionModel struct {
	ctx      context.Context
	server   *SSHServer
	user     string
	renderer *lipgloss.Renderer
	width    int
	height   int
	initial  string
	state    sessionState

	menu       MenuModel
	difficulty DifficultyModel
	scores     ScoreboardModel
	game       Model
	session    *Session
	pendingID  string
	lastErr    error
}

// NewSessionModel creates a session model starting at the menu.
func NewSessionModel(ctx context.Context, srv *SSHServer, user string, r *lipgloss.Renderer, width, height int) SessionModel {
	return SessionModel{
		ctx:      ctx,
		server:   srv,
		user:     user,
		renderer: r,
		width:    width,
		height:   height,
		menu:     NewMenuModel(width, height),
	}
}

// Init starts the demo named on the command line, if any.
func (m SessionModel) Init() tea.Cmd {
	if m.initial == "" {
		return m.menu.Init()
	}
	id := m.initial
	return func() tea.Msg { return startMsg{demoID: id} }
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}
	if sm, ok := msg.(startMsg); ok {
		return m.choose(sm.demoID)
	}

	switch m.state {
	case stateDifficulty:
		return m.updateDifficulty(msg)
	case stateScores:
		return m.updateScores(msg)
	case stateGame:
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		return m, tea.Quit
	case m.menu.WantsScoreboard():
		m.state = stateScores
		m.scores = NewScoreboardModel(m.server.scoreSource(), m.width, m.height)
		return m, nil
	case m.menu.Selected() != "":
		return m.choose(m.menu.Selected())
	}
	return m, cmd
}

// choose asks for a difficulty when the demo offers presets, then launches it.
func (m SessionModel) choose(id string) (tea.Model, tea.Cmd) {
	info, ok := registry.Info(id)
	if !ok {
		m.lastErr = fmt.Errorf("%w: %q", registry.ErrUnknownDemo, id)
		return m.backToMenu()
	}
	if info.Tunable {
		m.state = stateDifficulty
		m.pendingID = id
		m.difficulty = NewDifficultyModel(info.Title, m.width)
		return m, nil
	}
	return m.launch(id, "")
}

func (m SessionModel) updateDifficulty(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, _ := m.difficulty.Update(msg)
	m.difficulty = next.(DifficultyModel)

	switch {
	case m.difficulty.quitting:
		return m, tea.Quit
	case m.difficulty.back:
		return m.backToMenu()
	}
	if preset, ok := m.difficulty.Selected(); ok {
		return m.launch(m.pendingID, string(preset))
	}
	return m, nil
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)

	switch {
	case m.scores.IsQuitting():
		return m, tea.Quit
	case m.scores.IsGoingBack():
		return m.backToMenu()
	}
	return m, cmd
}

// launch builds the demo for this terminal and starts its game loop.
func (m SessionModel) launch(id, difficulty string) (tea.Model, tea.Cmd) {
	w, h := core.CanvasForTerminal(m.width, m.height)
	sess, err := NewSession(SessionConfig{
		DemoID:  id,
		CanvasW: w,
		CanvasH: h,
		Options: registry.Options{
			Difficulty: difficulty,
			FrameRate:  m.server.config.FrameRate,
			Seed:       time.Now().UnixNano(),
			Player:     m.user,
			Scores:     m.server.scores(),
		},
		Logger: m.server.logger.With("user", m.user, "demo", id),
	})
	if err != nil {
		m.server.logger.Error("cannot start demo", "user", m.user, "demo", id, "error", err)
		m.lastErr = err
		return m.backToMenu()
	}

	m.session = sess
	m.game = NewModel(m.ctx, sess, m.renderer)
	m.state = stateGame
	m.lastErr = nil
	return m, m.game.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(DoneMsg); ok {
		m.session.Close()
		m.session = nil
		m.lastErr = done.Err
		if errors.Is(done.Err, ErrClosed) {
			m.lastErr = nil
		}
		return m.backToMenu()
	}

	next, cmd := m.game.Update(msg)
	m.game = next.(Model)
	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.state = stateMenu
	m.pendingID = ""
	m.menu = NewMenuModel(m.width, m.height)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	switch m.state {
	case stateDifficulty:
		return m.difficulty.View()
	case stateScores:
		return m.scores.View()
	case stateGame:
		return m.game.View()
	}

	view := m.menu.View()
	if m.lastErr != nil {
		view += "\n" + centerText("error: "+m.lastErr.Error(), m.width)
	}
	return view
}
