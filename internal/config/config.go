package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the startup settings for kochi.
type Config struct {
	Trains   int
	IDWidth  int
	LogFile  string // empty disables logging
	LogLevel string
	Theme    string // empty defers to prefs
}

const (
	defaultConfigPath = "~/.config/kochi/config.toml"
	defaultTrains     = 25
	defaultIDWidth    = 3
	defaultLogLevel   = "info"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Trains:   defaultTrains,
		IDWidth:  defaultIDWidth,
		LogLevel: defaultLogLevel,
	}
}

// Load locates and parses the kochi config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Trains   int    `toml:"trains"`
		IDWidth  int    `toml:"id_width"`
		LogFile  string `toml:"log_file"`
		LogLevel string `toml:"log_level"`
		Theme    string `toml:"theme"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.Trains < 0 {
		return Config{}, fmt.Errorf("parse config: trains must be positive, got %d", raw.Trains)
	}
	if raw.Trains > 0 {
		cfg.Trains = raw.Trains
	}
	if raw.IDWidth > 0 {
		cfg.IDWidth = raw.IDWidth
	}

	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
	cfg.Theme = strings.TrimSpace(raw.Theme)

	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading "~" against the home directory and returns
// an absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
