package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// UpgradeProgressModel shows a spinner while a blocking action runs.
type UpgradeProgressModel struct {
	spinner  spinner.Model
	message  string
	quitting bool
	done     bool
	err      error
	action   func() error
}

type upgradeDoneMsg struct {
	err error
}

func runUpgradeAction(action func() error) tea.Cmd {
	return func() tea.Msg {
		return upgradeDoneMsg{err: action()}
	}
}

func NewUpgradeProgressModel(message string, action func() error) UpgradeProgressModel {
	InitCommonStyles(os.Stdout)
	return UpgradeProgressModel{
		spinner: NewPrimarySpinner(),
		message: message,
		action:  action,
	}
}

func (m UpgradeProgressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, runUpgradeAction(m.action))
}

func (m UpgradeProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case upgradeDoneMsg:
		m.done = true
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m UpgradeProgressModel) View() string {
	if m.quitting || m.done {
		return ""
	}
	return fmt.Sprintf("%s %s\n", m.spinner.View(), SubtleTextStyle().Render(m.message))
}

// RunUpgradeProgress runs action behind a spinner labelled with message and
// returns the action's error once it finishes.
func RunUpgradeProgress(message string, action func() error) error {
	InitCommonStyles(os.Stdout)
	m := NewUpgradeProgressModel(message, action)
	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running upgrade progress: %w", err)
	}

	result := finalModel.(UpgradeProgressModel)
	if result.err != nil {
		return result.err
	}

	return nil
}
