package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/kochi/internal/config"
	"github.com/five82/kochi/internal/fleet"
)

func TestNewFleet_UsesConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Trains = 12
	cfg.IDWidth = 4

	store, err := NewFleet(cfg, Options{})
	if err != nil {
		t.Fatalf("NewFleet returned error: %v", err)
	}
	if store.Len() != 12 {
		t.Fatalf("Len = %d, want 12", store.Len())
	}
	if id := store.All()[0].ID; id != "0001" {
		t.Fatalf("first id = %q, want 0001", id)
	}
}

func TestNewFleet_SeedIsDeterministic(t *testing.T) {
	cfg := config.Default()
	a, err := NewFleet(cfg, Options{Seed: 9, HasSeed: true})
	if err != nil {
		t.Fatalf("NewFleet returned error: %v", err)
	}
	b, err := NewFleet(cfg, Options{Seed: 9, HasSeed: true})
	if err != nil {
		t.Fatalf("NewFleet returned error: %v", err)
	}
	for i, v := range a.All() {
		if b.All()[i] != v {
			t.Fatalf("seeded fleets differ at %d", i)
		}
	}
}

func TestRun_NegativeTrainsFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	err := Run(context.Background(), Options{
		ConfigPath: filepath.Join(t.TempDir(), "missing.toml"),
		Trains:     -5,
		Summary:    true,
		Out:        &bytes.Buffer{},
	})
	if !errors.Is(err, fleet.ErrInvalidArgument) {
		t.Fatalf("Run error = %v, want ErrInvalidArgument", err)
	}
}

func TestRun_SummaryPrintsCounts(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	logFile := filepath.Join(home, "logs", "kochi.log")

	var out bytes.Buffer
	err := Run(context.Background(), Options{
		ConfigPath: filepath.Join(home, "missing.toml"),
		PrefsPath:  filepath.Join(home, "prefs.toml"),
		Trains:     25,
		Seed:       3,
		HasSeed:    true,
		LogFile:    logFile,
		Summary:    true,
		Out:        &out,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	text := out.String()
	for _, want := range []string{"Service", "Standby", "Washing", "Maintenance", "Total", "25"} {
		if !strings.Contains(text, want) {
			t.Fatalf("summary missing %q:\n%s", want, text)
		}
	}

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "fleet initialized") {
		t.Fatalf("log file missing startup record: %q", data)
	}
}

func TestApplyOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := applyOverrides(config.Default(), Options{Trains: 40, LogFile: "~/k.log", LogLevel: "debug"})
	if cfg.Trains != 40 || cfg.LogLevel != "debug" {
		t.Fatalf("overrides not applied: %#v", cfg)
	}
	if !filepath.IsAbs(cfg.LogFile) {
		t.Fatalf("LogFile = %q, want absolute", cfg.LogFile)
	}

	unchanged := applyOverrides(config.Default(), Options{})
	if unchanged != config.Default() {
		t.Fatalf("empty overrides changed config: %#v", unchanged)
	}
}
