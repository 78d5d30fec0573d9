//go:build !windows
// +build !windows

package console

// Init is a no-op outside Windows.
func Init() {}
