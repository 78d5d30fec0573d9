package tui

import (
	"io"

	"github.com/cchamberlain/npm-windows-upgrade/tui/theme"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyleTUI   lipgloss.Style
	warningStyleTUI lipgloss.Style
	successStyleTUI lipgloss.Style

	primaryStyle         lipgloss.Style
	primaryTitleStyle    lipgloss.Style
	primaryCursorStyle   lipgloss.Style
	primarySelectedStyle lipgloss.Style
	subtleTextStyle      lipgloss.Style
	helpStyleTUI         lipgloss.Style
	commandStyleTUI      lipgloss.Style
	warningBoxStyle      lipgloss.Style
)

func InitCommonStyles(out io.Writer) {
	theme.Init(out)

	errorStyleTUI = theme.Error()
	warningStyleTUI = theme.Warning()
	successStyleTUI = theme.Success()

	primaryStyle = theme.Primary()
	primaryTitleStyle = primaryStyle.Bold(true)
	primaryCursorStyle = primaryStyle
	primarySelectedStyle = primaryTitleStyle
	subtleTextStyle = theme.Neutral()
	helpStyleTUI = theme.Neutral().Italic(true)
	commandStyleTUI = theme.Command()
	warningBoxStyle = warningStyleTUI.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.WarningColor)).
		Padding(1, 2)
}

func RenderWarningSimple(message string) string {
	if message == "" {
		return ""
	}
	return warningStyleTUI.Render("⚠ " + message)
}

func RenderWarning(message string) string {
	if message == "" {
		return ""
	}
	return warningStyleTUI.Render("⚠ Warning: " + message)
}

func RenderSuccessSimple(message string) string {
	if message == "" {
		return ""
	}
	return successStyleTUI.Render("✓ " + message)
}

func RenderError(err error) string {
	if err == nil {
		return ""
	}
	return errorStyleTUI.Render("✗ Error: " + err.Error())
}

func RenderErrorMessage(message string) string {
	if message == "" {
		return ""
	}
	return errorStyleTUI.Render("✗ " + message)
}

func PrimaryStyle() lipgloss.Style {
	return primaryStyle
}

func PrimaryTitleStyle() lipgloss.Style {
	return primaryTitleStyle
}

func PrimaryCursorStyle() lipgloss.Style {
	return primaryCursorStyle
}

func PrimarySelectedStyle() lipgloss.Style {
	return primarySelectedStyle
}

func SubtleTextStyle() lipgloss.Style {
	return subtleTextStyle
}

func HelpStyle() lipgloss.Style {
	return helpStyleTUI
}

func CommandStyle() lipgloss.Style {
	return commandStyleTUI
}

func WarningStyle() lipgloss.Style {
	return warningStyleTUI
}

func SuccessStyle() lipgloss.Style {
	return successStyleTUI
}

func ErrorStyle() lipgloss.Style {
	return errorStyleTUI
}

func WarningBoxStyle() lipgloss.Style {
	return warningBoxStyle
}

func NewPrimarySpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = primaryStyle
	return s
}
