/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/cchamberlain/npm-windows-upgrade/internal/npm"
	"github.com/cchamberlain/npm-windows-upgrade/internal/powershell"
	"github.com/cchamberlain/npm-windows-upgrade/internal/preflight"
	"github.com/cchamberlain/npm-windows-upgrade/internal/updatecheck"
	"github.com/cchamberlain/npm-windows-upgrade/internal/upgrade"
	"github.com/cchamberlain/npm-windows-upgrade/sentry"
	"github.com/cchamberlain/npm-windows-upgrade/tui"
)

const (
	consentQuestion = "This tool will upgrade npm. Do you want to continue?"
	goodbyeMessage  = "Well then, we're done here. Have a nice day!"
)

// runUpgrade walks the gates in order. Every gate failure prints its own
// message and returns nil; only the platform guard propagates an error.
func runUpgrade(ctx context.Context, opts options) error {
	if err := preflight.CheckPlatform(runtime.GOOS); err != nil {
		return err
	}

	consent, err := tui.RunConsentPrompt(consentQuestion)
	if err != nil {
		return err
	}
	if !consent {
		fmt.Println(goodbyeMessage)
		return nil
	}
	sentry.AddBreadcrumb("upgrade", "consent granted", nil, sentry.LevelInfo)

	if !preflight.PolicyAllowsScripts(powershell.QueryExecutionPolicy(ctx)) {
		fmt.Println(tui.RenderPolicyInstructions())
		return nil
	}
	sentry.AddBreadcrumb("upgrade", "execution policy allows scripts", nil, sentry.LevelInfo)

	if !preflight.Online(ctx) {
		fmt.Println(tui.RenderOffline())
		return nil
	}
	sentry.AddBreadcrumb("upgrade", "connectivity check passed", nil, sentry.LevelInfo)

	target, err := resolveTargetVersion(ctx, opts)
	if err != nil {
		var cancelled *tui.CancellationError
		if errors.As(err, &cancelled) {
			fmt.Println(tui.RenderNoSelection())
			return nil
		}
		fmt.Println(tui.RenderRegistryFailure())
		return nil
	}
	sentry.AddBreadcrumb("upgrade", "target version resolved",
		map[string]interface{}{"version": target}, sentry.LevelInfo)

	return executeUpgrade(ctx, target)
}

// resolveTargetVersion returns the explicit version when one was given and
// otherwise lets the user pick from the published list, newest first.
func resolveTargetVersion(ctx context.Context, opts options) (string, error) {
	if opts.TargetVersion != "" {
		return opts.TargetVersion, nil
	}

	fetch := func() ([]string, error) {
		published, err := npm.PublishedVersions(ctx)
		if err != nil {
			return nil, err
		}
		return npm.ChoiceList(published), nil
	}

	return tui.RunVersionSelect(fetch, outdatedHint(ctx))
}

// outdatedHint builds the advisory line shown above the version list. Any
// failure suppresses the hint rather than blocking the prompt.
func outdatedHint(ctx context.Context) func(versions []string) string {
	return func(versions []string) string {
		installed, err := npm.InstalledVersion(ctx)
		if err != nil {
			return ""
		}
		return formatOutdatedHint(installed, versions)
	}
}

func formatOutdatedHint(installed string, versions []string) string {
	res := updatecheck.Check(installed, versions)
	if res.Skipped || !res.Outdated {
		return ""
	}
	return fmt.Sprintf("The latest published npm is v%s; you are running v%s.", res.LatestVersion, res.InstalledVersion)
}

func executeUpgrade(ctx context.Context, target string) error {
	executor := &upgrade.Executor{
		Prefix:           npm.GlobalPrefix,
		InstalledVersion: npm.InstalledVersion,
		RunScript:        powershell.RunUpgradeScript,
		Spin:             tui.RunUpgradeProgress,
		Notify:           PrintWarningSimple,
		Echo: func(chunk string) {
			fmt.Fprintln(os.Stderr, tui.RenderScriptDiagnostic(chunk))
		},
	}

	res, err := executor.Run(ctx, target)
	if err != nil {
		return fmt.Errorf("run upgrade helper: %w", err)
	}

	fmt.Println(renderOutcome(res))
	return nil
}

func renderOutcome(res upgrade.Result) string {
	switch res.Outcome {
	case upgrade.OutcomeAdminRequired:
		return tui.RenderAdminRequired()
	case upgrade.OutcomeRelaunched:
		return tui.RenderRelaunched()
	case upgrade.OutcomeSuccess:
		return tui.RenderUpgradeSuccess(res.Actual)
	default:
		return tui.RenderVersionMismatch(res.Requested, res.Actual, res.Capture.Stdout, res.Capture.Stderr)
	}
}
