package tui

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type confirmStyles struct {
	question lipgloss.Style
	selected lipgloss.Style
	cursor   lipgloss.Style
	help     lipgloss.Style
}

func newConfirmStyles() confirmStyles {
	return confirmStyles{
		question: PrimaryTitleStyle(),
		selected: PrimarySelectedStyle(),
		cursor:   PrimaryCursorStyle(),
		help:     HelpStyle(),
	}
}

type confirmModel struct {
	question string
	cursor   int
	accepted bool
	decided  bool
	quitting bool

	styles confirmStyles
}

func NewConfirmModel(question string) confirmModel {
	return confirmModel{
		question: question,
		styles:   newConfirmStyles(),
	}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "y", "Y":
			m.accepted = true
			m.decided = true
			return m, tea.Quit

		case "n", "N":
			m.accepted = false
			m.decided = true
			return m, tea.Quit

		case "enter":
			m.accepted = m.cursor == 0
			m.decided = true
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < 1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.quitting || m.decided {
		return ""
	}

	var s strings.Builder
	s.WriteString("\n")
	s.WriteString(m.styles.question.Render(m.question))
	s.WriteString("\n\n")

	options := []string{"Yes", "No"}
	for i, option := range options {
		cursor := "  "
		display := option
		if m.cursor == i {
			cursor = m.styles.cursor.Render("▶ ")
			display = m.styles.selected.Render(option)
		}
		s.WriteString(fmt.Sprintf("%s%s\n", cursor, display))
	}

	s.WriteString("\n")
	s.WriteString(m.styles.help.Render("↑/↓: Navigate  Enter: Select  Y/N: Answer directly  Esc: Cancel\n"))
	return s.String()
}

// RunConsentPrompt asks question and reports whether the user answered yes.
// Dismissing the prompt counts as a no.
func RunConsentPrompt(question string) (bool, error) {
	InitCommonStyles(os.Stdout)
	m := NewConfirmModel(question)
	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("error running TUI: %w", err)
	}

	result := finalModel.(confirmModel)
	return result.decided && result.accepted, nil
}
