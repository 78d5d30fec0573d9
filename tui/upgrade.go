package tui

import (
	"fmt"
	"os"
	"strings"
)

// issueURL is where mismatch reports should be filed.
const issueURL = "https://github.com/cchamberlain/npm-windows-upgrade/issues"

func RenderUpgradeSuccess(version string) string {
	InitCommonStyles(os.Stdout)
	return SuccessStyle().Render(fmt.Sprintf("✓ Upgrade finished. Your new npm version is %s. Have a nice day!", version))
}

func RenderPolicyInstructions() string {
	InitCommonStyles(os.Stdout)

	var content strings.Builder
	content.WriteString(ErrorStyle().Render("Scripts cannot be executed on this system."))
	content.WriteString("\n")
	content.WriteString(ErrorStyle().Render("To fix, run the command below as Administrator in PowerShell and try again:"))
	content.WriteString("\n\n")
	content.WriteString(CommandStyle().Render("Set-ExecutionPolicy Unrestricted -Scope CurrentUser"))

	return WarningBoxStyle().Render(content.String())
}

func RenderOffline() string {
	InitCommonStyles(os.Stdout)
	return ErrorStyle().Render("✗ We have trouble connecting to the Internet. Are you offline?")
}

func RenderRegistryFailure() string {
	InitCommonStyles(os.Stdout)

	var content strings.Builder
	content.WriteString(ErrorStyle().Render("✗ We could not show the latest available versions."))
	content.WriteString("\n")
	content.WriteString("Try running this script again with the version you want to install. For example:\n")
	content.WriteString(CommandStyle().Render("npm-windows-upgrade --version:3.0.0"))
	return content.String()
}

func RenderNoSelection() string {
	InitCommonStyles(os.Stdout)
	return WarningStyle().Render("No version selected. npm was not upgraded.")
}

func RenderAdminRequired() string {
	InitCommonStyles(os.Stdout)

	var content strings.Builder
	content.WriteString(ErrorStyle().Render("✗ npm can only be upgraded from an elevated shell."))
	content.WriteString("\n")
	content.WriteString("Right-click PowerShell, choose \"Run as Administrator\", and run this tool again.")
	return content.String()
}

func RenderRelaunched() string {
	InitCommonStyles(os.Stdout)
	return WarningStyle().Render("⚠ The upgrade continued in a new elevated PowerShell window. Check that window for the result.")
}

// RenderVersionMismatch dumps everything the helper printed so the report
// filed at the issue tracker is actionable.
func RenderVersionMismatch(requested, actual string, stdout, stderr []string) string {
	InitCommonStyles(os.Stdout)

	var content strings.Builder
	content.WriteString(ErrorStyle().Render(fmt.Sprintf("✗ The upgrade did not work as expected: you asked for npm v%s, but npm now reports version %s.", requested, displayVersion(actual))))
	content.WriteString("\n")
	content.WriteString(fmt.Sprintf("Please report the issue, including the output below, at %s\n", issueURL))
	content.WriteString("\n")
	content.WriteString(SubtleTextStyle().Render("Helper output:"))
	content.WriteString("\n")
	content.WriteString(renderChunks(stdout))
	content.WriteString("\n")
	content.WriteString(SubtleTextStyle().Render("Helper errors:"))
	content.WriteString("\n")
	content.WriteString(renderChunks(stderr))
	return content.String()
}

// RenderScriptDiagnostic formats one live stderr chunk from the helper.
func RenderScriptDiagnostic(chunk string) string {
	InitCommonStyles(os.Stdout)
	return ErrorStyle().Render("Error: ") + chunk
}

func displayVersion(v string) string {
	if strings.TrimSpace(v) == "" {
		return "unknown"
	}
	return v
}

func renderChunks(chunks []string) string {
	if len(chunks) == 0 {
		return SubtleTextStyle().Render("(no output)") + "\n"
	}
	return strings.Join(chunks, "\n") + "\n"
}
