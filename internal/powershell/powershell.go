// Package powershell invokes the PowerShell commands the upgrade flow
// depends on: the execution-policy query and the elevated upgrade script
// shipped next to the binary.
package powershell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
)

const shell = "powershell.exe"

// Capture holds the ordered output chunks of a finished child process.
type Capture struct {
	Stdout   []string
	Stderr   []string
	ExitCode int
}

// FirstStdout returns the first captured stdout chunk, or "".
func (c Capture) FirstStdout() string {
	if len(c.Stdout) == 0 {
		return ""
	}
	return c.Stdout[0]
}

// runCombined is swapped out in tests.
var runCombined = func(ctx context.Context, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, shell, args...).CombinedOutput()
}

// QueryExecutionPolicy returns the combined output lines of
// Get-ExecutionPolicy. A spawn failure yields no lines, which the policy
// gate reads as restricted.
func QueryExecutionPolicy(ctx context.Context) []string {
	out, err := runCombined(ctx, "-NoProfile", "-NoLogo", "Get-ExecutionPolicy")
	if err != nil && len(out) == 0 {
		return nil
	}
	return SplitLines(string(out))
}

// SplitLines splits process output on newlines, normalizing CRLF and
// dropping the final empty line.
func SplitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// ScriptPath returns the expected location of upgrade-npm.ps1, which ships
// in a powershell directory next to the running executable.
func ScriptPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), "powershell", "upgrade-npm.ps1"), nil
}

// UpgradeArgs builds the PowerShell argument list that runs the upgrade
// script. The script performs its own elevation, so it is invoked without
// RunAs; embedded values are single-quote escaped.
func UpgradeArgs(scriptPath, version, nodePath string) []string {
	expr := fmt.Sprintf("& {& %s -version %s", psQuote(scriptPath), psQuote(version))
	if nodePath != "" {
		expr += " -NodePath " + psQuote(nodePath)
	}
	expr += " }"
	return []string{"-NoProfile", "-NoLogo", expr}
}

func psQuote(s string) string {
	// Single-quote and escape existing single quotes for PowerShell.
	s = strings.ReplaceAll(s, `'`, `''`)
	return "'" + s + "'"
}

// newCommand is swapped out in tests.
var newCommand = func(ctx context.Context, args ...string) *exec.Cmd {
	return exec.CommandContext(ctx, shell, args...)
}

// RunUpgradeScript launches the upgrade script for version, passing the npm
// prefix as -NodePath when non-empty. Both streams are captured
// incrementally; every stderr chunk is also handed to echo as it arrives.
// A nonzero exit is not an error here, only a failed spawn is: the markers
// in the captured output and the follow-up version check decide the real
// outcome.
func RunUpgradeScript(ctx context.Context, version, nodePath string, echo func(string)) (Capture, error) {
	scriptPath, err := ScriptPath()
	if err != nil {
		return Capture{}, fmt.Errorf("locate upgrade script: %w", err)
	}
	return runCapture(ctx, UpgradeArgs(scriptPath, version, nodePath), echo)
}

func runCapture(ctx context.Context, args []string, echo func(string)) (Capture, error) {
	cmd := newCommand(ctx, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return Capture{}, fmt.Errorf("open stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return Capture{}, fmt.Errorf("open stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return Capture{}, fmt.Errorf("launch %s: %w", shell, err)
	}

	var captured Capture
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		captured.Stdout = readChunks(stdout, nil)
	}()
	go func() {
		defer wg.Done()
		captured.Stderr = readChunks(stderr, echo)
	}()
	wg.Wait()

	err = cmd.Wait()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		captured.ExitCode = exitErr.ExitCode()
		err = nil
	}
	if err != nil {
		return captured, fmt.Errorf("wait for %s: %w", shell, err)
	}
	return captured, nil
}

// readChunks drains r line by line, preserving arrival order. sink, when
// non-nil, receives each chunk as it is read.
func readChunks(r io.Reader, sink func(string)) []string {
	var chunks []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		chunk := scanner.Text()
		chunks = append(chunks, chunk)
		if sink != nil {
			sink(chunk)
		}
	}
	return chunks
}
