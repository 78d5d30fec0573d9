package npm

import (
	"context"
	"errors"
	"testing"

	"github.com/cchamberlain/npm-windows-upgrade/internal/testutils"
	"github.com/stretchr/testify/assert"
)

// TestInstalledVersion verifies that the npm -v output is trimmed of
// surrounding whitespace.
func TestInstalledVersion(t *testing.T) {
	var gotArgs []string
	testutils.Swap(t, &runOutput, func(_ context.Context, args ...string) (string, error) {
		gotArgs = args
		return "3.10.2\r\n", nil
	})

	got, err := InstalledVersion(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "3.10.2", got)
	assert.Equal(t, []string{"-v"}, gotArgs)
}

// TestInstalledVersion_CommandError verifies that a failed query surfaces as
// a wrapped error.
func TestInstalledVersion_CommandError(t *testing.T) {
	testutils.Swap(t, &runOutput, func(_ context.Context, _ ...string) (string, error) {
		return "", errors.New("exec: \"npm\": executable file not found")
	})

	_, err := InstalledVersion(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "query installed npm version")
}

// TestGlobalPrefix verifies the prefix query arguments and trimming.
func TestGlobalPrefix(t *testing.T) {
	var gotArgs []string
	testutils.Swap(t, &runOutput, func(_ context.Context, args ...string) (string, error) {
		gotArgs = args
		return "C:\\Users\\dev\\AppData\\Roaming\\npm\n", nil
	})

	got, err := GlobalPrefix(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "C:\\Users\\dev\\AppData\\Roaming\\npm", got)
	assert.Equal(t, []string{"config", "--global", "get", "prefix"}, gotArgs)
}

// TestGlobalPrefix_CommandError verifies that prefix query failures are
// reported to the caller instead of being swallowed here.
func TestGlobalPrefix_CommandError(t *testing.T) {
	testutils.Swap(t, &runOutput, func(_ context.Context, _ ...string) (string, error) {
		return "", errors.New("npm ERR! unknown config")
	})

	_, err := GlobalPrefix(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "query npm global prefix")
}

// TestPublishedVersions verifies JSON array parsing and the registry query
// arguments.
func TestPublishedVersions(t *testing.T) {
	var gotArgs []string
	testutils.Swap(t, &runOutput, func(_ context.Context, args ...string) (string, error) {
		gotArgs = args
		return "[\n  \"1.0.0\",\n  \"2.0.0\",\n  \"3.0.0\"\n]\n", nil
	})

	got, err := PublishedVersions(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"1.0.0", "2.0.0", "3.0.0"}, got)
	assert.Equal(t, []string{"view", "npm", "versions", "--json"}, gotArgs)
}

// TestPublishedVersions_Errors verifies that both query failures and
// malformed JSON are wrapped errors.
func TestPublishedVersions_Errors(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		err     error
		wantMsg string
	}{
		{
			name:    "command failure",
			err:     errors.New("npm ERR! network"),
			wantMsg: "query published npm versions",
		},
		{
			name:    "malformed JSON",
			out:     "npm WARN something\n[\"1.0.0\"",
			wantMsg: "parse published npm versions",
		},
		{
			name:    "single version emitted as plain string",
			out:     "\"1.0.0\"\n",
			wantMsg: "parse published npm versions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutils.Swap(t, &runOutput, func(_ context.Context, _ ...string) (string, error) {
				return tt.out, tt.err
			})

			_, err := PublishedVersions(context.Background())
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

// TestChoiceList verifies that the registry order is reversed so the newest
// version is offered first.
func TestChoiceList(t *testing.T) {
	got := ChoiceList([]string{"1.0.0", "2.0.0", "3.0.0"})
	assert.Equal(t, []string{"3.0.0", "2.0.0", "1.0.0"}, got)
}

// TestChoiceList_CleansEntries verifies trimming and empty-entry handling.
func TestChoiceList_CleansEntries(t *testing.T) {
	tests := []struct {
		name     string
		versions []string
		expected []string
	}{
		{
			name:     "whitespace trimmed",
			versions: []string{" 1.0.0 ", "2.0.0\n"},
			expected: []string{"2.0.0", "1.0.0"},
		},
		{
			name:     "empties dropped",
			versions: []string{"1.0.0", "", "  ", "2.0.0"},
			expected: []string{"2.0.0", "1.0.0"},
		},
		{
			name:     "empty input",
			versions: nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ChoiceList(tt.versions))
		})
	}
}
