/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package helpmenus

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func RenderRootHelp(cmd *cobra.Command) {
	InitHelpStyles(os.Stdout)

	var output strings.Builder

	// Get version from cobra command
	version := cmd.Root().Version
	if version == "" {
		version = "1.0.0"
	}
	versionText := "v " + version

	// Calculate centering (77 chars total width inside the box)
	boxWidth := 77
	leftPadding := (boxWidth - len(versionText)) / 2
	rightPadding := boxWidth - len(versionText) - leftPadding

	header := fmt.Sprintf(`
╭─────────────────────────────────────────────────────────────────────────────╮
│                                                                             │
│                          ⬆  NPM WINDOWS UPGRADE  ⬆                          │
│%s%s%s│
│                                                                             │
╰─────────────────────────────────────────────────────────────────────────────╯
	`, strings.Repeat(" ", leftPadding), versionText, strings.Repeat(" ", rightPadding))

	output.WriteString(HeaderStyle.Render(header))
	output.WriteString("\n\n")

	// Description
	output.WriteString(DescStyle.Render(cmd.Long))
	output.WriteString("\n\n\n")

	// Usage Section
	output.WriteString(SectionStyle.Render("● USAGE"))
	output.WriteString("\n\n")
	output.WriteString("  ")
	output.WriteString(CommandTextStyle.Render("npm-windows-upgrade [--version:<version>]"))
	output.WriteString("\n\n")

	// Flags Section
	output.WriteString(SectionStyle.Render("● FLAGS"))
	output.WriteString("\n\n")

	output.WriteString("  ")
	output.WriteString(FlagStyle.Render("--version:"))
	output.WriteString("   ")
	output.WriteString(DescStyle.Render("install this exact version and skip the interactive list"))
	output.WriteString("\n")
	output.WriteString("  ")
	output.WriteString(FlagStyle.Render(""))
	output.WriteString("   ")
	output.WriteString(ExampleStyle.Render("npm-windows-upgrade --version:3.0.0"))
	output.WriteString("\n")

	output.WriteString("  ")
	output.WriteString(FlagStyle.Render("-h, --help"))
	output.WriteString("   ")
	output.WriteString(DescStyle.Render("show this screen"))
	output.WriteString("\n\n")

	// Steps Section
	output.WriteString(SectionStyle.Render("● WHAT IT DOES"))
	output.WriteString("\n\n")

	steps := []struct {
		name string
		desc string
	}{
		{"1.  Ask", "confirms you want to upgrade npm"},
		{"2.  Check policy", "PowerShell scripts must be allowed to run"},
		{"3.  Check network", "the npm registry must be reachable"},
		{"4.  Pick version", "choose from the published list, newest first"},
		{"5.  Upgrade", "runs the elevated helper script"},
		{"6.  Verify", "confirms npm now reports the chosen version"},
	}
	for _, step := range steps {
		output.WriteString("  ")
		output.WriteString(CommandStyle.Render(step.name))
		output.WriteString("   ")
		output.WriteString(DescStyle.Render(step.desc))
		output.WriteString("\n")
	}
	output.WriteString("\n")

	// Footer
	output.WriteString(SectionStyle.Render("● TIPS"))
	output.WriteString("\n\n")

	output.WriteString("  ")
	output.WriteString(CommandStyle.Render("Allow scripts"))
	output.WriteString("   ")
	output.WriteString(DescStyle.Render("Set-ExecutionPolicy Unrestricted -Scope CurrentUser"))
	output.WriteString("\n")

	output.WriteString("  ")
	output.WriteString(CommandStyle.Render("Issues"))
	output.WriteString("   ")
	output.WriteString(LinkStyle.Render("https://github.com/cchamberlain/npm-windows-upgrade/issues"))
	output.WriteString("\n\n")

	fmt.Fprint(os.Stdout, output.String())
}
