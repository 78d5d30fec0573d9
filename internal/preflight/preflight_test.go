package preflight

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/cchamberlain/npm-windows-upgrade/internal/testutils"
	"github.com/stretchr/testify/assert"
)

// TestCheckPlatform verifies that only Windows hosts pass the guard.
func TestCheckPlatform(t *testing.T) {
	tests := []struct {
		goos    string
		wantErr bool
	}{
		{goos: "windows", wantErr: false},
		{goos: "linux", wantErr: true},
		{goos: "darwin", wantErr: true},
		{goos: "freebsd", wantErr: true},
		{goos: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			err := CheckPlatform(tt.goos)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "Windows")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestPolicyAllowsScripts verifies the backward scan for the Unrestricted
// token across captured policy output.
func TestPolicyAllowsScripts(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected bool
	}{
		{
			name:     "token on last line",
			lines:    []string{"Windows PowerShell", "Unrestricted"},
			expected: true,
		},
		{
			name:     "token on earlier line",
			lines:    []string{"Unrestricted", "some trailing banner"},
			expected: true,
		},
		{
			name:     "token embedded in a longer line",
			lines:    []string{"ExecutionPolicy: Unrestricted (CurrentUser)"},
			expected: true,
		},
		{
			name:     "restricted",
			lines:    []string{"Restricted"},
			expected: false,
		},
		{
			name:     "bypass does not pass the gate",
			lines:    []string{"Bypass"},
			expected: false,
		},
		{
			name:     "remote signed",
			lines:    []string{"RemoteSigned"},
			expected: false,
		},
		{
			name:     "no output",
			lines:    nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PolicyAllowsScripts(tt.lines))
		})
	}
}

type fakeResolver struct {
	addrs []string
	err   error
}

func (f fakeResolver) LookupHost(_ context.Context, _ string) ([]string, error) {
	return f.addrs, f.err
}

// TestOnline verifies the asymmetric DNS classification: only a
// name-not-found answer means offline.
func TestOnline(t *testing.T) {
	tests := []struct {
		name     string
		resolver hostResolver
		expected bool
	}{
		{
			name:     "successful resolution",
			resolver: fakeResolver{addrs: []string{"20.70.246.20"}},
			expected: true,
		},
		{
			name:     "name not found",
			resolver: fakeResolver{err: &net.DNSError{Err: "no such host", Name: "microsoft.com", IsNotFound: true}},
			expected: false,
		},
		{
			name:     "dns timeout still counts as online",
			resolver: fakeResolver{err: &net.DNSError{Err: "i/o timeout", Name: "microsoft.com", IsTimeout: true}},
			expected: true,
		},
		{
			name:     "non-dns error still counts as online",
			resolver: fakeResolver{err: errors.New("resolver exploded")},
			expected: true,
		},
		{
			name:     "wrapped not-found error",
			resolver: fakeResolver{err: &net.DNSError{Err: "no such host", IsNotFound: true, IsTemporary: false}},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutils.Swap[hostResolver](t, &resolver, tt.resolver)
			assert.Equal(t, tt.expected, Online(context.Background()))
		})
	}
}
