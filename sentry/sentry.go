// Package sentry wraps sentry-go for crash reporting. Everything is a no-op
// until Init is called with a non-empty DSN.
package sentry

import (
	"fmt"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
)

// Config holds Sentry configuration options
type Config struct {
	DSN         string
	Environment string  // "dev" or "production"
	Release     string  // e.g., "npm-windows-upgrade@4.1.0"
	Debug       bool
	SampleRate  float64 // 0.0 to 1.0

	// FilteredErrors lists message substrings that are never reported,
	// e.g. user-initiated cancellations.
	FilteredErrors []string
}

// Init initializes Sentry with the provided configuration
func Init(cfg Config) error {
	if cfg.DSN == "" {
		return nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      cfg.Environment,
		Release:          cfg.Release,
		Debug:            cfg.Debug,
		AttachStacktrace: true,
		SampleRate:       cfg.SampleRate,

		// BeforeSend hook for filtering
		BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
			if event.Message != "" {
				for _, filtered := range cfg.FilteredErrors {
					if strings.Contains(event.Message, filtered) {
						return nil // Drop event
					}
				}
			}

			// Check exception messages too
			for _, exception := range event.Exception {
				for _, filtered := range cfg.FilteredErrors {
					if strings.Contains(exception.Value, filtered) {
						return nil
					}
				}
			}

			return event
		},
	})

	if err != nil {
		return fmt.Errorf("failed to initialize Sentry: %w", err)
	}

	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("environment", cfg.Environment)
	})

	return nil
}

// Flush flushes buffered events with timeout
func Flush(timeout time.Duration) bool {
	return sentry.Flush(timeout)
}

// CaptureError captures an error with typed options
func CaptureError(err error, opts *EventOptions) *sentry.EventID {
	if err == nil {
		return nil
	}

	var eventID *sentry.EventID
	sentry.WithScope(func(scope *sentry.Scope) {
		if opts != nil {
			for k, v := range opts.Tags {
				scope.SetTag(k, v)
			}
			for k, v := range opts.Extra {
				scope.SetExtra(k, v)
			}
			if opts.Level != nil {
				scope.SetLevel(*opts.Level)
			}
			if opts.Fingerprint != nil {
				scope.SetFingerprint(opts.Fingerprint)
			}
		}

		eventID = sentry.CaptureException(err)
	})
	return eventID
}

// AddBreadcrumb adds a breadcrumb for context tracking
// Breadcrumbs are global and attach to all subsequent events in the same scope
func AddBreadcrumb(category string, message string, data map[string]interface{}, level Level) {
	sentry.AddBreadcrumb(&sentry.Breadcrumb{
		Type:      "default",
		Category:  category,
		Message:   message,
		Data:      data,
		Level:     sentry.Level(level),
		Timestamp: time.Now(),
	})
}

// Level is a Sentry severity level (re-exported for convenience)
type Level = sentry.Level

// Sentry level constants
const (
	LevelDebug   = sentry.LevelDebug
	LevelInfo    = sentry.LevelInfo
	LevelWarning = sentry.LevelWarning
	LevelError   = sentry.LevelError
	LevelFatal   = sentry.LevelFatal
)

// CapturePanic should be used in a defer statement to capture and report panics.
// It recovers from panic, reports to Sentry, flushes, and re-panics.
// Example: defer sentry.CapturePanic(&sentry.EventOptions{...})
func CapturePanic(opts *EventOptions) {
	if r := recover(); r != nil {
		sentry.WithScope(func(scope *sentry.Scope) {
			scope.SetLevel(sentry.LevelFatal)

			if opts != nil {
				for k, v := range opts.Tags {
					scope.SetTag(k, v)
				}
				for k, v := range opts.Extra {
					scope.SetExtra(k, v)
				}
			}

			sentry.CurrentHub().Recover(r)
		})
		sentry.Flush(5 * time.Second)
		panic(r) // Re-panic after capturing
	}
}
