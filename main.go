package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/cchamberlain/npm-windows-upgrade/cmd"
	"github.com/cchamberlain/npm-windows-upgrade/internal/console"
	"github.com/cchamberlain/npm-windows-upgrade/internal/version"
	"github.com/cchamberlain/npm-windows-upgrade/sentry"
	sentrygo "github.com/getsentry/sentry-go"
)

func main() {
	console.Init()

	_ = initSentry()
	defer sentry.Flush(2 * time.Second)

	defer sentry.CapturePanic(&sentry.EventOptions{
		Tags: sentry.NewTags().
			Set("version", version.BuildVersion).
			Set("os", runtime.GOOS),
	})

	cmd.Execute()
}

func initSentry() error {
	// DSN is injected at build time - if empty, Sentry is disabled
	if version.SentryDSN == "" {
		return nil
	}

	err := sentry.Init(sentry.Config{
		DSN:         version.SentryDSN,
		Environment: getEnvironment(),
		Release:     fmt.Sprintf("npm-windows-upgrade@%s", version.BuildVersion),
		Debug:       false,
		SampleRate:  1.0,
		FilteredErrors: []string{
			"operation cancelled",
		},
	})
	if err != nil {
		return err
	}

	// Set global context tags
	sentrygo.ConfigureScope(func(scope *sentrygo.Scope) {
		scope.SetTag("os", runtime.GOOS)
		scope.SetTag("arch", runtime.GOARCH)
		scope.SetTag("go_version", runtime.Version())
		scope.SetTag("build_commit", version.BuildCommit)
	})

	return nil
}

func getEnvironment() string {
	if version.BuildVersion == "dev" {
		return "dev"
	}
	return "production"
}
