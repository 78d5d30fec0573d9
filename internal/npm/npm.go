// Package npm shells out to the npm CLI for the queries the upgrade flow
// needs. The registry is only ever reached through npm itself, never
// directly.
package npm

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/samber/lo"
)

// command resolves through PATH; on Windows that picks up npm.cmd.
const command = "npm"

// runOutput is swapped out in tests.
var runOutput = func(ctx context.Context, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, command, args...).Output()
	return string(out), err
}

// InstalledVersion reports the version of the npm currently on PATH.
func InstalledVersion(ctx context.Context) (string, error) {
	out, err := runOutput(ctx, "-v")
	if err != nil {
		return "", fmt.Errorf("query installed npm version: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// GlobalPrefix reports npm's global install prefix. Callers treat a failure
// as "use the default location", never as fatal.
func GlobalPrefix(ctx context.Context) (string, error) {
	out, err := runOutput(ctx, "config", "--global", "get", "prefix")
	if err != nil {
		return "", fmt.Errorf("query npm global prefix: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// PublishedVersions lists every npm version on the registry, in the
// registry's ascending publish order.
func PublishedVersions(ctx context.Context) ([]string, error) {
	out, err := runOutput(ctx, "view", "npm", "versions", "--json")
	if err != nil {
		return nil, fmt.Errorf("query published npm versions: %w", err)
	}

	var versions []string
	if err := json.Unmarshal([]byte(out), &versions); err != nil {
		return nil, fmt.Errorf("parse published npm versions: %w", err)
	}
	return versions, nil
}

// ChoiceList turns the publish-ordered version list into the list shown to
// the user: trimmed, empties dropped, most recent first.
func ChoiceList(versions []string) []string {
	trimmed := lo.FilterMap(versions, func(v string, _ int) (string, bool) {
		v = strings.TrimSpace(v)
		return v, v != ""
	})
	return lo.Reverse(trimmed)
}
