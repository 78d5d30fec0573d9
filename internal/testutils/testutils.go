// Package testutils carries small helpers shared by package tests.
package testutils

import "testing"

// Swap replaces *target with replacement for the duration of the test and
// restores the original during cleanup. Used to stub the package-level
// process seams (npm and PowerShell invocations) without spawning anything.
func Swap[T any](t *testing.T, target *T, replacement T) {
	t.Helper()
	original := *target
	*target = replacement
	t.Cleanup(func() { *target = original })
}

// Recorder collects strings handed to a sink, preserving order.
type Recorder struct {
	Lines []string
}

// Sink returns a function that appends every received string.
func (r *Recorder) Sink() func(string) {
	return func(s string) {
		r.Lines = append(r.Lines, s)
	}
}
