package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/scenekit/internal/config"
)

var difficultyChoices = []struct {
	preset config.DifficultyPreset
	desc   string
}{
	{config.DifficultyEasy, "lower hurdles, starts slow"},
	{config.DifficultyNormal, "starts at 30% speed-up"},
	{config.DifficultyHard, "taller hurdles, heavier gravity"},
	{config.DifficultyFixed, "no speed-up"},
}

// DifficultyModel lets users choose a difficulty preset before a demo.
type DifficultyModel struct {
	title    string
	cursor   int
	width    int
	keys     MenuKeyMap
	help     help.Model
	chosen   bool
	quitting bool
	back     bool
}

// NewDifficultyModel creates a picker with normal preselected.
func NewDifficultyModel(title string, width int) DifficultyModel {
	return DifficultyModel{
		title:  title,
		cursor: 1,
		width:  width,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(difficultyChoices)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			m.chosen = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// View renders the preset list.
func (m DifficultyModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(strings.ToUpper(m.title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, c := range difficultyChoices {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%-7s %s", cursor, c.preset, c.desc), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.ShortHelpView([]key.Binding{m.keys.Select, m.keys.Back, m.keys.Quit}), m.width))
	return b.String()
}

// Selected returns the chosen preset and whether one was chosen.
func (m DifficultyModel) Selected() (config.DifficultyPreset, bool) {
	if !m.chosen {
		return "", false
	}
	return difficultyChoices[m.cursor].preset, true
}

// RunDifficultySelector asks for a preset. It returns false when the user
// backed out or quit.
func RunDifficultySelector(title string, width int) (config.DifficultyPreset, bool, error) {
	p := tea.NewProgram(NewDifficultyModel(title, width), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return "", false, err
	}
	m, ok := final.(DifficultyModel)
	if !ok {
		return "", false, nil
	}
	preset, chosen := m.Selected()
	return preset, chosen, nil
}
