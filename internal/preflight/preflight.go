// Package preflight implements the environment gates that run before any
// upgrade work: host platform, PowerShell execution policy, and network
// reachability.
package preflight

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// probeHost is resolved to decide whether the registry is reachable at all.
const probeHost = "microsoft.com"

// unrestrictedToken is the only Get-ExecutionPolicy answer that passes the
// policy gate. Anything else, including Bypass, fails it.
const unrestrictedToken = "Unrestricted"

// CheckPlatform returns an error unless goos names a Windows host. This is
// the one gate that surfaces as a process failure rather than console text.
func CheckPlatform(goos string) error {
	if goos != "windows" {
		return fmt.Errorf("npm-windows-upgrade upgrades npm on Windows, but the host OS is %q", goos)
	}
	return nil
}

// PolicyAllowsScripts scans captured Get-ExecutionPolicy output for the
// unrestricted token, last line first. No lines means no.
func PolicyAllowsScripts(lines []string) bool {
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.Contains(lines[i], unrestrictedToken) {
			return true
		}
	}
	return false
}

// hostResolver is the subset of net.Resolver the probe needs.
type hostResolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// resolver is swapped out in tests.
var resolver hostResolver = net.DefaultResolver

// Online probes DNS for a well-known hostname. Only a definitive
// name-not-found answer counts as offline; any other resolver error, like a
// timeout, is treated as online.
func Online(ctx context.Context) bool {
	_, err := resolver.LookupHost(ctx, probeHost)
	if err == nil {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
		return false
	}
	return true
}
