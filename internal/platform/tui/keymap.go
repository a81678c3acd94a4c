package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/scenekit/internal/actor"
	"github.com/vovakirdan/scenekit/internal/core"
)

// KeyMap holds the bindings the terminal handles itself. Every other key is
// forwarded to the scene.
type KeyMap struct {
	Quit key.Binding
}

// ShortHelp returns key bindings for the status line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Quit}}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// keyName converts a Bubble Tea key into the name scenes match on.
func keyName(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeySpace:
		return "space"
	case tea.KeyEnter:
		return "enter"
	case tea.KeyEsc:
		return "esc"
	}
	return msg.String()
}

// mouseEvent maps a terminal mouse message onto canvas pixels. A cell
// covers two pixel rows, so y lands on the upper one.
func mouseEvent(msg tea.MouseMsg) (core.Event, bool) {
	x, y := float64(msg.X), float64(msg.Y*2)

	switch msg.Action {
	case tea.MouseActionMotion:
		return core.PointerMove(x, y), true
	case tea.MouseActionPress, tea.MouseActionRelease:
		button, ok := mouseButtons[msg.Button]
		if !ok {
			return core.Event{}, false
		}
		return core.PointerButton(x, y, button, msg.Action == tea.MouseActionPress), true
	}
	return core.Event{}, false
}

var mouseButtons = map[tea.MouseButton]int{
	tea.MouseButtonLeft:   actor.PrimaryButton,
	tea.MouseButtonMiddle: actor.PrimaryButton + 1,
	tea.MouseButtonRight:  actor.PrimaryButton + 2,
}
