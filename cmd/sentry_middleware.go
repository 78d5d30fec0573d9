package cmd

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/cchamberlain/npm-windows-upgrade/internal/version"
	"github.com/cchamberlain/npm-windows-upgrade/sentry"
	"github.com/cchamberlain/npm-windows-upgrade/tui"
	sentrygo "github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"
)

// WrapCommandWithSentry wraps a cobra.Command's RunE function
// to automatically capture panics to Sentry
func WrapCommandWithSentry(cmd *cobra.Command) {
	if cmd.RunE == nil {
		return
	}

	originalRunE := cmd.RunE
	cmd.RunE = func(c *cobra.Command, args []string) error {
		defer sentry.CapturePanic(&sentry.EventOptions{
			Tags: sentry.NewTags().
				Set("command", cmd.Name()).
				Set("version", version.BuildVersion),
		})

		return originalRunE(c, args)
	}
}

// CaptureCommandError captures errors from command execution
// It filters out user cancellations and categorizes errors
func CaptureCommandError(cmd *cobra.Command, err error) {
	if err == nil {
		return
	}

	// Don't capture user cancellations
	var cancellationErr *tui.CancellationError
	if errors.As(err, &cancellationErr) {
		return
	}

	eventID := sentry.CaptureError(err, &sentry.EventOptions{
		Tags: sentry.NewTags().
			Set("command", cmd.Name()).
			Set("version", version.BuildVersion).
			Set("error_type", errorType(err)),
		Extra: sentry.NewExtra().
			Set("args", os.Args[1:]),
		Level:       ptr(levelForError(err)),
		Fingerprint: []string{cmd.Name(), errorType(err)},
	})

	if eventID != nil {
		// Flush to ensure the event is sent before the process exits
		// (os.Exit skips deferred functions)
		sentry.Flush(2 * time.Second)
	}
}

// ptr is a helper to create a pointer to a value
func ptr[T any](v T) *T {
	return &v
}

// errorType buckets an error by the collaborator that produced it.
func errorType(err error) string {
	errStr := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errStr, "powershell") || strings.Contains(errStr, "helper"):
		return "helper"
	case strings.Contains(errStr, "npm"):
		return "npm"
	case strings.Contains(errStr, "lookup") || strings.Contains(errStr, "dns"):
		return "network"
	default:
		return "internal"
	}
}

// levelForError determines the appropriate Sentry level for an error
func levelForError(err error) sentrygo.Level {
	if errorType(err) == "network" {
		return sentrygo.LevelWarning
	}
	return sentrygo.LevelError
}
