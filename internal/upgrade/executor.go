// Package upgrade drives the elevated helper script and decides what a run
// actually accomplished.
package upgrade

import (
	"context"
	"fmt"
	"strings"

	"github.com/cchamberlain/npm-windows-upgrade/internal/powershell"
)

// prefixFallbackNotice is shown when the npm prefix cannot be determined.
// The helper falls back to its default install location in that case.
const prefixFallbackNotice = "We could not determine your npm install path, continuing with the default location."

// Outcome is the terminal state of an upgrade run.
type Outcome int

const (
	// OutcomeSuccess means npm reports exactly the requested version.
	OutcomeSuccess Outcome = iota
	// OutcomeVersionMismatch means the helper ran without complaint but npm
	// still reports a different version.
	OutcomeVersionMismatch
	// OutcomeAdminRequired means the helper refused to run without elevation.
	OutcomeAdminRequired
	// OutcomeRelaunched means the helper restarted itself in a new elevated
	// window, so this process can no longer observe the result.
	OutcomeRelaunched
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeVersionMismatch:
		return "version-mismatch"
	case OutcomeAdminRequired:
		return "admin-required"
	case OutcomeRelaunched:
		return "relaunched"
	default:
		return "unknown"
	}
}

// markerRules pair a leading helper message with its outcome. The first rule
// whose marker appears in the first stdout chunk wins; matching is
// case-insensitive because the helper's casing has drifted across releases.
var markerRules = []struct {
	marker  string
	outcome Outcome
}{
	{"you must be administrator", OutcomeAdminRequired},
	{"we need to relaunch this script as administrator", OutcomeRelaunched},
}

func classify(firstChunk string) (Outcome, bool) {
	lowered := strings.ToLower(firstChunk)
	for _, rule := range markerRules {
		if strings.Contains(lowered, rule.marker) {
			return rule.outcome, true
		}
	}
	return 0, false
}

// Result is what an upgrade run produced.
type Result struct {
	Outcome   Outcome
	Requested string
	// Actual is the version npm reported after a marker-free run. Empty when
	// verification was skipped or the query itself failed.
	Actual string
	// NodePath is the resolved global prefix passed to the helper, empty when
	// the prefix query failed.
	NodePath string
	Capture  powershell.Capture
}

// Executor runs the helper script and classifies the result. Collaborators
// are function fields so tests can drive the state machine with synthetic
// output; Prefix, InstalledVersion and RunScript must be set, Spin, Notify
// and Echo may be nil.
type Executor struct {
	Prefix           func(ctx context.Context) (string, error)
	InstalledVersion func(ctx context.Context) (string, error)
	RunScript        func(ctx context.Context, version, nodePath string, echo func(string)) (powershell.Capture, error)
	Spin             func(message string, action func() error) error
	Notify           func(message string)
	Echo             func(chunk string)
}

// Run upgrades npm to the target version and reports what happened. The
// returned error is non-nil only when the helper process could not be
// spawned; every other failure mode is expressed through Result.Outcome.
func (e *Executor) Run(ctx context.Context, target string) (Result, error) {
	res := Result{Requested: target}

	err := e.spin(fmt.Sprintf("Upgrading npm to v%s...", target), func() error {
		if prefix, err := e.Prefix(ctx); err != nil {
			e.notify(prefixFallbackNotice)
		} else {
			res.NodePath = prefix
		}

		capture, err := e.RunScript(ctx, target, res.NodePath, e.Echo)
		if err != nil {
			return err
		}
		res.Capture = capture
		return nil
	})
	if err != nil {
		return res, err
	}

	if outcome, matched := classify(res.Capture.FirstStdout()); matched {
		res.Outcome = outcome
		return res, nil
	}

	// A failed verification query leaves Actual empty, which can never equal
	// the target and therefore reads as a mismatch.
	if actual, err := e.InstalledVersion(ctx); err == nil {
		res.Actual = strings.TrimSpace(actual)
	}
	if res.Actual == target {
		res.Outcome = OutcomeSuccess
	} else {
		res.Outcome = OutcomeVersionMismatch
	}
	return res, nil
}

func (e *Executor) spin(message string, action func() error) error {
	if e.Spin == nil {
		return action()
	}
	return e.Spin(message, action)
}

func (e *Executor) notify(message string) {
	if e.Notify != nil {
		e.Notify(message)
	}
}
