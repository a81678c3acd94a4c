package tui

import (
	"context"
	"errors"
	"image"
	"image/color"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/scenekit/internal/actor"
	"github.com/vovakirdan/scenekit/internal/config"
	"github.com/vovakirdan/scenekit/internal/core"
	"github.com/vovakirdan/scenekit/internal/registry"
	"github.com/vovakirdan/scenekit/internal/scene"
	"github.com/vovakirdan/scenekit/internal/storage"
)

type stubDemo struct{ tunable bool }

func (stubDemo) ID() string      { return "tui-stub" }
func (stubDemo) Title() string   { return "Stub" }
func (d stubDemo) Tunable() bool { return d.tunable }

func (stubDemo) Build(g *scene.Game, _ registry.Options) error {
	w, h := g.Context().Surface.Size()
	g.NewScene("main", scene.NewMap(w, h))
	return nil
}

func init() {
	registry.Register("tui-stub", func() registry.Demo { return stubDemo{} })
	registry.Register("tui-tuned", func() registry.Demo { return stubDemo{tunable: true} })
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(SessionConfig{DemoID: "tui-stub", CanvasW: 20, CanvasH: 10})
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestSurfaceDrawing(t *testing.T) {
	s := NewSurface(4, 4)
	if w, h := s.Size(); w != 4 || h != 4 {
		t.Fatalf("Size() = %dx%d, expected 4x4", w, h)
	}

	red := image.NewUniform(color.RGBA{R: 255, A: 255})
	s.Blit(image.NewRGBA(image.Rect(0, 0, 2, 2)), image.Pt(0, 0)) // transparent
	s.FillRect(image.Rect(1, 1, 3, 3), red)

	canvas := s.Canvas()
	if got := canvas.RGBAAt(0, 0); got != core.ColorBackground {
		t.Errorf("(0,0) = %v, expected background", got)
	}
	if got := canvas.RGBAAt(2, 2); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("(2,2) = %v, expected red", got)
	}

	s.Clear()
	if got := canvas.RGBAAt(2, 2); got != core.ColorBackground {
		t.Errorf("after Clear (2,2) = %v, expected background", got)
	}
}

func TestSurfacePresentKeepsNewestFrame(t *testing.T) {
	s := NewSurface(2, 4)
	blue := color.RGBA{B: 255, A: 255}

	if err := s.Present(); err != nil {
		t.Fatalf("Present() failed: %v", err)
	}
	s.FillRect(image.Rect(0, 0, 1, 1), blue)
	if err := s.Present(); err != nil {
		t.Fatalf("Present() failed: %v", err)
	}

	screen := <-s.Frames()
	if screen.Width() != 2 || screen.Height() != 2 {
		t.Errorf("screen is %dx%d, expected 2x2", screen.Width(), screen.Height())
	}
	if got := screen.Get(0, 0); got.Rune != core.HalfBlock || got.Fg != blue {
		t.Errorf("cell (0,0) = %+v, expected blue upper half", got)
	}
	select {
	case <-s.Frames():
		t.Error("older frame should have been replaced")
	default:
	}

	s.Close()
	s.Close()
	if err := s.Present(); !errors.Is(err, ErrClosed) {
		t.Errorf("Present() after Close = %v, expected ErrClosed", err)
	}
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		msg      tea.KeyMsg
		expected string
	}{
		{keyMsg("space"), "space"},
		{keyMsg("enter"), "enter"},
		{keyMsg("esc"), "esc"},
		{keyMsg("down"), "down"},
		{keyMsg("w"), "w"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := keyName(tt.msg); got != tt.expected {
				t.Errorf("keyName() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestMouseEvent(t *testing.T) {
	ev, ok := mouseEvent(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !ok {
		t.Fatal("left press should map to an event")
	}
	expected := core.PointerButton(3, 8, actor.PrimaryButton, true)
	if ev != expected {
		t.Errorf("event = %+v, expected %+v", ev, expected)
	}

	ev, ok = mouseEvent(tea.MouseMsg{X: 5, Y: 1, Action: tea.MouseActionMotion})
	if !ok || ev != core.PointerMove(5, 2) {
		t.Errorf("motion = %+v, %v", ev, ok)
	}

	if _, ok := mouseEvent(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}); ok {
		t.Error("wheel should not map to a button event")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 3)
	img := image.NewRGBA(image.Rect(0, 0, 6, 6))
	s.DrawImage(img, 0)

	out := RenderScreen(lipgloss.NewRenderer(io.Discard), s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, expected 3", len(lines))
	}
	for i, l := range lines {
		if w := lipgloss.Width(l); w != 6 {
			t.Errorf("line %d width = %d, expected 6", i, w)
		}
	}
	if strings.Count(out, string(core.HalfBlock)) != 18 {
		t.Errorf("expected 18 half blocks in %q", out)
	}
}

func TestNewSessionUnknownDemo(t *testing.T) {
	_, err := NewSession(SessionConfig{DemoID: "missing", CanvasW: 10, CanvasH: 10})
	if !errors.Is(err, registry.ErrUnknownDemo) {
		t.Errorf("NewSession(missing) = %v, expected ErrUnknownDemo", err)
	}
}

func TestModelForwardsInput(t *testing.T) {
	sess := newTestSession(t)
	var m tea.Model = NewModel(context.Background(), sess, nil)

	m, _ = m.Update(keyMsg("w"))
	m, _ = m.Update(keyMsg("space"))
	m, _ = m.Update(tea.MouseMsg{X: 2, Y: 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	got := sess.Queue.Poll()
	expected := []core.Event{
		core.KeyDown("w"),
		core.KeyDown("space"),
		core.PointerButton(2, 6, actor.PrimaryButton, false),
	}
	if len(got) != len(expected) {
		t.Fatalf("queued %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("event %d = %+v, expected %+v", i, got[i], expected[i])
		}
	}
}

func TestModelQuitFlow(t *testing.T) {
	sess := newTestSession(t)
	var m tea.Model = NewModel(context.Background(), sess, nil)

	m, cmd := m.Update(keyMsg("q"))
	if cmd != nil {
		t.Error("quit key should wait for the game loop")
	}
	if got := sess.Queue.Poll(); len(got) != 1 || got[0].Type != core.EventQuit {
		t.Errorf("queued %v, expected one quit event", got)
	}

	boom := errors.New("boom")
	m, cmd = m.Update(DoneMsg{Err: boom})
	if !isQuit(cmd) {
		t.Error("DoneMsg should quit the program")
	}
	if err := m.(Model).Err(); !errors.Is(err, boom) {
		t.Errorf("Err() = %v, expected boom", err)
	}

	m, _ = m.Update(DoneMsg{Err: ErrClosed})
	if err := m.(Model).Err(); err != nil {
		t.Errorf("Err() = %v, expected nil for a closed surface", err)
	}
}

func TestModelShowsFrames(t *testing.T) {
	sess := newTestSession(t)
	var m tea.Model = NewModel(context.Background(), sess, nil)

	if !strings.Contains(m.View(), "starting Stub") {
		t.Errorf("View() before the first frame = %q", m.View())
	}

	other := NewSurface(2, 2)
	m, cmd := m.Update(FrameMsg{Screen: core.NewScreen(2, 1), surface: other})
	if cmd != nil || m.(Model).frame != nil {
		t.Error("frames from another surface should be ignored")
	}

	m, cmd = m.Update(FrameMsg{Screen: core.NewScreen(20, 5), surface: sess.Surface})
	if cmd == nil {
		t.Error("a frame should schedule the next wait")
	}
	view := m.View()
	if lines := strings.Split(view, "\n"); len(lines) != 6 {
		t.Errorf("View() has %d lines, expected 5 frame rows and a status line", len(lines))
	}
	if !strings.Contains(view, "Stub") || !strings.Contains(view, "quit") {
		t.Errorf("status line missing from %q", view)
	}
}

func TestSessionGameLoop(t *testing.T) {
	sess := newTestSession(t)
	done := make(chan error, 1)
	go func() { done <- sess.Game.Run(context.Background()) }()

	select {
	case screen := <-sess.Surface.Frames():
		if screen.Width() != 20 || screen.Height() != 5 {
			t.Errorf("frame is %dx%d, expected 20x5", screen.Width(), screen.Height())
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no frame presented")
	}

	sess.Queue.Push(core.QuitEvent())
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("game loop did not stop on quit")
	}
}

func TestMenuModel(t *testing.T) {
	var m tea.Model = NewMenuModel(60, 20)
	items := m.(MenuModel).items
	if len(items) < 2 {
		t.Fatalf("menu has %d items, expected the registered demos", len(items))
	}

	m, _ = m.Update(keyMsg("down"))
	m, cmd := m.Update(keyMsg("enter"))
	if !isQuit(cmd) {
		t.Error("select should end the menu program")
	}
	if got := m.(MenuModel).Selected(); got != items[1].ID {
		t.Errorf("Selected() = %q, expected %q", got, items[1].ID)
	}

	m, _ = NewMenuModel(60, 20).Update(keyMsg("tab"))
	if !m.(MenuModel).WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}
	m, _ = NewMenuModel(60, 20).Update(keyMsg("q"))
	if !m.(MenuModel).IsQuitting() {
		t.Error("q should quit")
	}
}

func TestDifficultyModel(t *testing.T) {
	var m tea.Model = NewDifficultyModel("Runner", 60)
	if _, ok := m.(DifficultyModel).Selected(); ok {
		t.Error("nothing should be selected yet")
	}
	if !strings.Contains(m.View(), "RUNNER") {
		t.Errorf("View() = %q", m.View())
	}

	m, _ = m.Update(keyMsg("down"))
	m, cmd := m.Update(keyMsg("enter"))
	if !isQuit(cmd) {
		t.Error("select should end the picker program")
	}
	if p, ok := m.(DifficultyModel).Selected(); !ok || p != config.DifficultyHard {
		t.Errorf("Selected() = %q, %v, expected hard", p, ok)
	}
}

type fakeScores struct {
	entries []storage.ScoreEntry
	stats   map[string]*storage.DemoStats
}

func (f fakeScores) TopScores(demoID string, limit int) ([]storage.ScoreEntry, error) {
	var out []storage.ScoreEntry
	for _, e := range f.entries {
		if e.DemoID == demoID && len(out) < limit {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f fakeScores) Stats() (map[string]*storage.DemoStats, error) { return f.stats, nil }

func TestScoreboardModel(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	src := fakeScores{
		entries: []storage.ScoreEntry{
			{DemoID: "tui-stub", Player: "ann", Score: 9, Ticks: 300, CreatedAt: now},
			{DemoID: "tui-stub", Score: 4, Ticks: 120, CreatedAt: now},
			{DemoID: "tui-tuned", Player: "bob", Score: 1, CreatedAt: now},
		},
		stats: map[string]*storage.DemoStats{
			"tui-stub": {DemoID: "tui-stub", RunsCount: 2, HighScore: 9, AvgScore: 6.5, LastPlayed: now},
		},
	}

	var m tea.Model = NewScoreboardModel(src, 100, 30)
	sb := m.(ScoreboardModel)
	for sb.Demo() != "tui-stub" {
		m, _ = m.Update(keyMsg("tab"))
		sb = m.(ScoreboardModel)
	}

	rows := sb.Rows()
	if len(rows) != 2 {
		t.Fatalf("Rows() = %v, expected 2 rows", rows)
	}
	if rows[0][1] != "ann" || rows[0][2] != "9" || rows[1][1] != "-" {
		t.Errorf("rows = %v", rows)
	}
	if s := sb.summary(); !strings.Contains(s, "2 runs") || !strings.Contains(s, "best 9") {
		t.Errorf("summary() = %q", s)
	}

	m, cmd := m.Update(keyMsg("esc"))
	if !isQuit(cmd) || !m.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	sb := NewScoreboardModel(nil, 60, 20)
	if len(sb.Rows()) != 0 {
		t.Errorf("Rows() = %v, expected none", sb.Rows())
	}
	if !strings.Contains(sb.View(), "No scores recorded yet") {
		t.Error("empty scoreboard should say so")
	}
}

func TestSessionModelFlow(t *testing.T) {
	srv := &SSHServer{logger: log.New(io.Discard)}
	var m tea.Model = NewSessionModel(context.Background(), srv, "ann", nil, 40, 13)

	m, _ = m.Update(startMsg{demoID: "missing"})
	if sm := m.(SessionModel); sm.state != stateMenu || sm.lastErr == nil {
		t.Errorf("unknown demo: state=%v err=%v", sm.state, sm.lastErr)
	}

	m, _ = m.Update(startMsg{demoID: "tui-tuned"})
	if sm := m.(SessionModel); sm.state != stateDifficulty || sm.pendingID != "tui-tuned" {
		t.Fatalf("tunable demo: state=%v pending=%q", sm.state, sm.pendingID)
	}
	m, _ = m.Update(keyMsg("enter"))
	sm := m.(SessionModel)
	if sm.state != stateGame || sm.session == nil {
		t.Fatalf("after choosing a preset: state=%v", sm.state)
	}
	if w, h := sm.session.Surface.Size(); w != 40 || h != 24 {
		t.Errorf("canvas = %dx%d, expected 40x24", w, h)
	}

	m, _ = m.Update(DoneMsg{})
	if sm := m.(SessionModel); sm.state != stateMenu || sm.session != nil || sm.lastErr != nil {
		t.Errorf("after the game: state=%v session=%v err=%v", sm.state, sm.session, sm.lastErr)
	}

	m, _ = m.Update(keyMsg("tab"))
	if m.(SessionModel).state != stateScores {
		t.Error("tab should open the scoreboard")
	}
	m, _ = m.Update(keyMsg("esc"))
	if m.(SessionModel).state != stateMenu {
		t.Error("esc should return to the menu")
	}
}
