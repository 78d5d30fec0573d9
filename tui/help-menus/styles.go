package helpmenus

import (
	"io"
	"sync"

	"github.com/cchamberlain/npm-windows-upgrade/tui/theme"
	"github.com/charmbracelet/lipgloss"
)

// Help-screen styles, bound once per process. The screen is static text, so
// nothing rebinds after the first render.
var (
	HeaderStyle      lipgloss.Style
	SectionStyle     lipgloss.Style
	CommandStyle     lipgloss.Style
	CommandTextStyle lipgloss.Style
	FlagStyle        lipgloss.Style
	DescStyle        lipgloss.Style
	ExampleStyle     lipgloss.Style
	LinkStyle        lipgloss.Style
)

const (
	labelHex   = "#f8f8f2"
	descHex    = "#f2f2f2"
	flagHex    = "#ff6b35"
	exampleHex = "#bcbcbc"

	// Column widths keep the two-column sections aligned.
	nameColumnWidth = 20
	flagColumnWidth = 15
)

var bindOnce sync.Once

func InitHelpStyles(out io.Writer) {
	theme.Init(out)

	bindOnce.Do(func() {
		r := theme.Renderer()
		accent := theme.Primary().Bold(true)
		label := r.NewStyle().Foreground(lipgloss.Color(labelHex)).Bold(true)

		HeaderStyle = accent.Padding(1, 0)
		SectionStyle = label.MarginTop(1)
		CommandStyle = accent.Width(nameColumnWidth)
		CommandTextStyle = accent
		FlagStyle = r.NewStyle().Foreground(lipgloss.Color(flagHex)).Bold(true).Width(flagColumnWidth)
		DescStyle = r.NewStyle().Foreground(lipgloss.Color(descHex))
		ExampleStyle = r.NewStyle().Foreground(lipgloss.Color(exampleHex)).Italic(true)
		LinkStyle = label.Underline(true)
	})
}
