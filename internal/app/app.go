package app

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/five82/kochi/internal/config"
	"github.com/five82/kochi/internal/fleet"
	"github.com/five82/kochi/internal/logging"
	"github.com/five82/kochi/internal/prefs"
	"github.com/five82/kochi/internal/ui"
)

// Options configure the kochi application. Zero values defer to the config
// file.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/kochi/prefs.toml
	Trains     int
	Seed       uint64
	HasSeed    bool
	LogFile    string
	LogLevel   string

	// Summary prints the aggregate table to Out instead of starting the TUI.
	Summary bool
	Out     io.Writer
}

// Run boots kochi until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = applyOverrides(cfg, opts)

	logger, err := logging.New(logging.Options{File: cfg.LogFile, Level: cfg.LogLevel, Name: "kochi"})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	store, err := NewFleet(cfg, opts)
	if err != nil {
		return err
	}
	logger.Info("fleet initialized", zap.Int("trains", store.Len()), zap.Any("counts", store.CountsByStatus()))

	themeName := cfg.Theme
	if themeName == "" {
		themeName = prefs.Load(opts.PrefsPath).Theme
	}

	if opts.Summary {
		out := opts.Out
		if out == nil {
			return fmt.Errorf("summary requires an output writer")
		}
		_, err := fmt.Fprintln(out, ui.Summary(store, themeName))
		return err
	}

	uiOpts := ui.Options{
		Store:     store,
		Logger:    logger,
		ThemeName: themeName,
		PrefsPath: opts.PrefsPath,
		LogFile:   cfg.LogFile,
	}
	err = ui.Run(ctx, uiOpts)
	logger.Info("dashboard closed", zap.Error(err))
	return err
}

// NewFleet builds and initializes the store described by cfg. The store is
// owned by the caller and handed to the UI; nothing else can reach it.
func NewFleet(cfg config.Config, opts Options) (*fleet.Store, error) {
	storeOpts := []fleet.Option{fleet.WithIDWidth(cfg.IDWidth)}
	if opts.HasSeed {
		storeOpts = append(storeOpts, fleet.WithSeed(opts.Seed))
	}
	store := fleet.New(storeOpts...)
	if err := store.Initialize(cfg.Trains, fleet.Statuses()); err != nil {
		return nil, fmt.Errorf("initialize fleet: %w", err)
	}
	return store, nil
}

func applyOverrides(cfg config.Config, opts Options) config.Config {
	if opts.Trains != 0 {
		cfg.Trains = opts.Trains
	}
	if opts.LogFile != "" {
		if expanded, err := config.ExpandPath(opts.LogFile); err == nil {
			cfg.LogFile = expanded
		}
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	return cfg
}
