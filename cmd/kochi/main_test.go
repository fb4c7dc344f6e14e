package main

import (
	"path/filepath"
	"testing"
)

func TestRun_HelpExitsZero(t *testing.T) {
	if code := run([]string{"--help"}); code != 0 {
		t.Fatalf("run(--help) = %d, want 0", code)
	}
}

func TestRun_BadFlagsExitTwo(t *testing.T) {
	if code := run([]string{"--no-such-flag"}); code != 2 {
		t.Fatalf("run(--no-such-flag) = %d, want 2", code)
	}
	if code := run([]string{"extra"}); code != 2 {
		t.Fatalf("run(extra) = %d, want 2", code)
	}
}

func TestRun_SummaryAndInvalidFleet(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	cfg := filepath.Join(home, "none.toml")
	prefs := filepath.Join(home, "prefs.toml")

	if code := run([]string{"--config", cfg, "--prefs", prefs, "--summary", "--seed", "4"}); code != 0 {
		t.Fatalf("run(--summary) = %d, want 0", code)
	}
	if code := run([]string{"--config", cfg, "--prefs", prefs, "--summary", "--trains", "-1"}); code != 1 {
		t.Fatalf("run(--trains -1) = %d, want 1", code)
	}
}
