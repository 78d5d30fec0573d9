package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

// TestRenderVersionMismatch verifies the diagnostic dump names both versions,
// the issue tracker, and every captured chunk.
func TestRenderVersionMismatch(t *testing.T) {
	out := RenderVersionMismatch(
		"9.0.0",
		"6.14.18",
		[]string{"chunk one", "chunk two"},
		[]string{"stderr chunk"},
	)

	assert.Contains(t, out, "9.0.0")
	assert.Contains(t, out, "6.14.18")
	assert.Contains(t, out, "https://github.com/cchamberlain/npm-windows-upgrade/issues")
	assert.Contains(t, out, "chunk one")
	assert.Contains(t, out, "chunk two")
	assert.Contains(t, out, "stderr chunk")
}

// TestRenderVersionMismatchEmpty verifies the dump stays readable when the
// verification query failed and the helper printed nothing.
func TestRenderVersionMismatchEmpty(t *testing.T) {
	out := RenderVersionMismatch("9.0.0", "", nil, nil)

	assert.Contains(t, out, "unknown")
	assert.Contains(t, out, "(no output)")
}

// TestRenderPolicyInstructions verifies the remediation block includes the
// exact command to run.
func TestRenderPolicyInstructions(t *testing.T) {
	out := RenderPolicyInstructions()

	assert.Contains(t, out, "Scripts cannot be executed on this system.")
	assert.Contains(t, out, "run the command below as Administrator in PowerShell")
	assert.Contains(t, out, "Set-ExecutionPolicy Unrestricted -Scope CurrentUser")
}

func TestRenderMessages(t *testing.T) {
	assert.Contains(t, RenderUpgradeSuccess("9.0.0"), "Upgrade finished. Your new npm version is 9.0.0. Have a nice day!")
	assert.Contains(t, RenderOffline(), "We have trouble connecting to the Internet. Are you offline?")
	assert.Contains(t, RenderRegistryFailure(), "npm-windows-upgrade --version:3.0.0")
	assert.Contains(t, RenderNoSelection(), "No version selected. npm was not upgraded.")
	assert.Contains(t, RenderAdminRequired(), "Run as Administrator")
	assert.Contains(t, RenderRelaunched(), "new elevated PowerShell window")
	assert.Contains(t, RenderScriptDiagnostic("boom"), "Error: ")
	assert.Contains(t, RenderScriptDiagnostic("boom"), "boom")
}

// TestUpgradeProgressModel verifies that the spinner disappears once the
// action reports back and that its error is preserved.
func TestUpgradeProgressModel(t *testing.T) {
	actionErr := errors.New("spawn failed")
	m := NewUpgradeProgressModel("Upgrading npm to v9.0.0...", nil)

	assert.Contains(t, m.View(), "Upgrading npm to v9.0.0...")

	model, _ := m.Update(upgradeDoneMsg{err: actionErr})
	result := model.(UpgradeProgressModel)

	assert.True(t, result.done)
	assert.ErrorIs(t, result.err, actionErr)
	assert.Empty(t, result.View())
}

// TestRunUpgradeAction verifies the action's result is delivered as a done
// message.
func TestRunUpgradeAction(t *testing.T) {
	actionErr := errors.New("helper failed")
	msg := runUpgradeAction(func() error { return actionErr })()

	done, ok := msg.(upgradeDoneMsg)
	assert.True(t, ok)
	assert.ErrorIs(t, done.err, actionErr)

	msg = runUpgradeAction(func() error { return nil })()
	assert.NoError(t, msg.(upgradeDoneMsg).err)
}

// TestUpgradeProgressInterrupt verifies ctrl+c dismisses the spinner view.
func TestUpgradeProgressInterrupt(t *testing.T) {
	m := NewUpgradeProgressModel("Upgrading npm to v9.0.0...", nil)
	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	result := model.(UpgradeProgressModel)
	assert.True(t, result.quitting)
	assert.Empty(t, result.View())
}
