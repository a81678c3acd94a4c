package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/scenekit/internal/core"
)

// FrameMsg carries a presented frame to the model.
type FrameMsg struct {
	Screen  *core.Screen
	surface *Surface
}

// DoneMsg reports that the game loop returned.
type DoneMsg struct {
	Err error
}

// waitFrame blocks until the surface presents the next frame.
func waitFrame(s *Surface) tea.Cmd {
	return func() tea.Msg {
		select {
		case screen := <-s.Frames():
			return FrameMsg{Screen: screen, surface: s}
		case <-s.done:
			return nil
		}
	}
}
