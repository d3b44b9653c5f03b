package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// trailBinary is set by RunWithTrailBinary before any test runs.
var trailBinary string

// RunWithTrailBinary compiles cmd/trail into a scratch directory, runs the
// package's tests against it and exits with their status.
func RunWithTrailBinary(m *testing.M) {
	dir, err := os.MkdirTemp("", "trail-bin-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "trail binary: %v\n", err)
		os.Exit(1)
	}
	trailBinary, err = compileTrail(dir)
	if err != nil {
		_ = os.RemoveAll(dir)
		fmt.Fprintf(os.Stderr, "trail binary: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

// TrailBinary returns the binary compiled by RunWithTrailBinary.
func TrailBinary(t *testing.T) string {
	t.Helper()
	if trailBinary == "" {
		t.Fatal("trail binary not built; call testhelpers.RunWithTrailBinary from TestMain")
	}
	return trailBinary
}

func compileTrail(dir string) (string, error) {
	root, err := exec.Command("go", "list", "-m", "-f", "{{.Dir}}").Output()
	if err != nil {
		return "", fmt.Errorf("failed to locate module root: %w", err)
	}
	out := filepath.Join(dir, "trail")
	cmd := exec.Command("go", "build", "-o", out, "./cmd/trail")
	cmd.Dir = strings.TrimSpace(string(root))
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("go build failed: %s: %w", output, err)
	}
	return out, nil
}

