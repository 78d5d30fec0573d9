// Package updatecheck compares the installed npm against the newest
// published release so the version picker can hint when an upgrade is
// worthwhile.
package updatecheck

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Result describes the outcome of an outdated check.
type Result struct {
	InstalledVersion string
	LatestVersion    string
	Outdated         bool
	Skipped          bool
	Reason           string
}

// Check reports whether installed lags behind the newest entry of published.
// The check is advisory: any value that fails to parse skips the comparison
// instead of failing it.
func Check(installed string, published []string) Result {
	res := Result{
		InstalledVersion: strings.TrimSpace(installed),
	}

	if res.InstalledVersion == "" {
		res.Skipped = true
		res.Reason = "unknown-installed-version"
		return res
	}

	installedSemver, err := parseVersion(res.InstalledVersion)
	if err != nil {
		res.Skipped = true
		res.Reason = "invalid-installed-version"
		return res
	}

	latestRaw, latestSemver := newestPublished(published)
	if latestSemver == nil {
		res.Skipped = true
		res.Reason = "no-published-versions"
		return res
	}

	res.LatestVersion = latestRaw
	res.Outdated = installedSemver.LessThan(latestSemver)
	return res
}

// newestPublished returns the highest parseable version in the list,
// whatever order the list arrives in. Unparseable entries are ignored.
func newestPublished(published []string) (string, *semver.Version) {
	var bestRaw string
	var best *semver.Version
	for _, raw := range published {
		v, err := parseVersion(raw)
		if err != nil {
			continue
		}
		if best == nil || v.GreaterThan(best) {
			best = v
			bestRaw = strings.TrimSpace(raw)
		}
	}
	return bestRaw, best
}

func parseVersion(v string) (*semver.Version, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, fmt.Errorf("empty version")
	}
	v = strings.TrimPrefix(v, "v")
	v = strings.TrimPrefix(v, "V")
	return semver.NewVersion(v)
}
