package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParseArgs verifies the hand-rolled argument scan: the colon-form
// version flag, the help flags, and the rule that everything else is ignored.
func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options
	}{
		{
			name: "no arguments",
			args: nil,
			want: options{},
		},
		{
			name: "explicit version",
			args: []string{"--version:3.0.0"},
			want: options{TargetVersion: "3.0.0"},
		},
		{
			name: "dist tag version",
			args: []string{"--version:latest"},
			want: options{TargetVersion: "latest"},
		},
		{
			name: "first version flag wins",
			args: []string{"--version:3.0.0", "--version:4.0.0"},
			want: options{TargetVersion: "3.0.0"},
		},
		{
			name: "empty version value wins over later flags",
			args: []string{"--version:", "--version:4.0.0"},
			want: options{TargetVersion: ""},
		},
		{
			name: "short help",
			args: []string{"-h"},
			want: options{ShowHelp: true},
		},
		{
			name: "long help",
			args: []string{"--help"},
			want: options{ShowHelp: true},
		},
		{
			name: "version and help together",
			args: []string{"--version:3.0.0", "--help"},
			want: options{TargetVersion: "3.0.0", ShowHelp: true},
		},
		{
			name: "unknown tokens are ignored",
			args: []string{"--force", "extra", "--version=3.0.0"},
			want: options{},
		},
		{
			name: "version flag among noise",
			args: []string{"--verbose", "--version:2.7.3", "trailing"},
			want: options{TargetVersion: "2.7.3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseArgs(tt.args))
		})
	}
}
