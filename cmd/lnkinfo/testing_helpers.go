package main

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/adrg/xdg"
)

// resetCLI isolates the CLI from the user's config and environment and
// rebuilds the command tree so flag variables return to their defaults.
func resetCLI(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	state = nil
	rootCmd = newRootCmd()
	t.Cleanup(func() { state = nil })
}

// captureOutput captures stdout while running a function
func captureOutput[T any](t *testing.T, fn func() T) (string, T) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Drain concurrently so large output cannot block the writer
	done := make(chan struct{})
	var buf bytes.Buffer
	go func() {
		defer close(done)
		if _, err := buf.ReadFrom(r); err != nil {
			t.Errorf("failed to read output: %v", err)
		}
	}()

	// Run function
	result := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout
	<-done
	r.Close()

	return buf.String(), result
}

// run executes the CLI with args and returns stdout and the exit code.
func run(t *testing.T, args ...string) (string, int) {
	t.Helper()
	return captureOutput(t, func() int { return execute(args) })
}

// assertJSON checks that output is valid JSON and returns it decoded
func assertJSON(t *testing.T, output string) map[string]any {
	t.Helper()
	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("invalid JSON output: %v\nOutput: %s", err, output)
	}
	return result
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
