package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type CancellationError struct{}

func (e *CancellationError) Error() string {
	return "operation cancelled"
}

// maxVisibleVersions caps the list window; npm's full history runs to
// hundreds of entries.
const maxVisibleVersions = 12

type versionSelectStyles struct {
	title    lipgloss.Style
	selected lipgloss.Style
	cursor   lipgloss.Style
	hint     lipgloss.Style
	more     lipgloss.Style
	help     lipgloss.Style
}

func newVersionSelectStyles() versionSelectStyles {
	return versionSelectStyles{
		title:    PrimaryTitleStyle().MarginBottom(1),
		selected: PrimarySelectedStyle(),
		cursor:   PrimaryCursorStyle(),
		hint:     WarningStyle(),
		more:     SubtleTextStyle(),
		help:     HelpStyle(),
	}
}

type versionsMsg struct {
	versions []string
	hint     string
	err      error
}

func fetchVersionsCmd(fetch func() ([]string, error), hint func(versions []string) string) tea.Cmd {
	return func() tea.Msg {
		versions, err := fetch()
		if err != nil {
			return versionsMsg{err: err}
		}
		msg := versionsMsg{versions: versions}
		if hint != nil {
			msg.hint = hint(versions)
		}
		return msg
	}
}

type versionSelectModel struct {
	fetch func() ([]string, error)
	hint  func(versions []string) string

	versions []string
	notice   string
	loaded   bool
	cursor   int
	offset   int
	selected string
	chosen   bool
	quitting bool
	err      error
	spinner  spinner.Model

	styles versionSelectStyles
}

func NewVersionSelectModel(fetch func() ([]string, error), hint func(versions []string) string) versionSelectModel {
	return versionSelectModel{
		fetch:   fetch,
		hint:    hint,
		spinner: NewPrimarySpinner(),
		styles:  newVersionSelectStyles(),
	}
}

func (m versionSelectModel) Init() tea.Cmd {
	return tea.Batch(fetchVersionsCmd(m.fetch, m.hint), m.spinner.Tick)
}

func (m versionSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case versionsMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		if len(msg.versions) == 0 {
			m.err = fmt.Errorf("no published npm versions found")
			return m, tea.Quit
		}
		m.versions = msg.versions
		m.notice = msg.hint
		m.loaded = true
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			if m.loaded {
				m.selected = m.versions[m.cursor]
				m.chosen = true
				return m, tea.Quit
			}

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}

		case "down", "j":
			if m.loaded && m.cursor < len(m.versions)-1 {
				m.cursor++
				if m.cursor >= m.offset+maxVisibleVersions {
					m.offset = m.cursor - maxVisibleVersions + 1
				}
			}
		}
	}
	return m, nil
}

func (m versionSelectModel) View() string {
	if m.err != nil || m.quitting || m.chosen {
		return ""
	}

	var s strings.Builder
	s.WriteString("\n")

	if !m.loaded {
		s.WriteString(fmt.Sprintf("%s Fetching published npm versions...\n", m.spinner.View()))
		return s.String()
	}

	if m.notice != "" {
		s.WriteString(m.styles.hint.Render("⚠ " + m.notice))
		s.WriteString("\n\n")
	}

	s.WriteString(m.styles.title.Render("Which version do you want to install?"))
	s.WriteString("\n")

	if m.offset > 0 {
		s.WriteString(m.styles.more.Render(fmt.Sprintf("  ↑ %d more", m.offset)))
		s.WriteString("\n")
	}

	end := m.offset + maxVisibleVersions
	if end > len(m.versions) {
		end = len(m.versions)
	}
	for i := m.offset; i < end; i++ {
		cursor := "  "
		display := m.versions[i]
		if m.cursor == i {
			cursor = m.styles.cursor.Render("▶ ")
			display = m.styles.selected.Render(display)
		}
		s.WriteString(fmt.Sprintf("%s%s\n", cursor, display))
	}

	if end < len(m.versions) {
		s.WriteString(m.styles.more.Render(fmt.Sprintf("  ↓ %d more", len(m.versions)-end)))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(m.styles.help.Render("↑/↓: Navigate  Enter: Select  Esc: Cancel\n"))
	return s.String()
}

// RunVersionSelect fetches the published version list and lets the user pick
// one. hint may be nil; when set it is called with the fetched list and its
// non-empty return is shown above the choices. Dismissing the list returns a
// *CancellationError.
func RunVersionSelect(fetch func() ([]string, error), hint func(versions []string) string) (string, error) {
	InitCommonStyles(os.Stdout)
	m := NewVersionSelectModel(fetch, hint)
	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("error running TUI: %w", err)
	}

	result := finalModel.(versionSelectModel)

	if result.err != nil {
		return "", result.err
	}

	if !result.chosen {
		return "", &CancellationError{}
	}

	return result.selected, nil
}
