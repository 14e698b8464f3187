// Package config loads drill settings from defaults, an optional YAML
// file and MATHDRILL_ environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	// DBPath is the SQLite file. Empty means store.DefaultDBPath.
	DBPath string `yaml:"db_path"`

	// Level is the starting difficulty for every kind.
	Level int `yaml:"level"`

	// Kinds is the default drill plan. Empty means every kind.
	Kinds []string `yaml:"kinds"`

	// Questions is the number of questions per drill session.
	Questions int `yaml:"questions"`

	// AutoLevel adjusts the level per kind during a session.
	AutoLevel bool `yaml:"auto_level"`

	// Division adds ÷ to order-of-operations expressions.
	Division bool `yaml:"division"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Seed fixes the random source when non-zero.
	Seed uint64 `yaml:"seed"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Level:     1,
		Questions: 15,
		LogLevel:  "warn",
	}
}

// DefaultPath resolves the config file path:
// 1. MATHDRILL_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/mathdrill/config.yaml
// 3. ~/.config/mathdrill/config.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv("MATHDRILL_CONFIG"); p != "" {
		return p, nil
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "mathdrill", "config.yaml"), nil
}

// Load builds the configuration. An explicit path must exist; the default
// path is optional.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		slog.Debug("config file loaded", "path", path)
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// No config file; defaults apply.
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.DBPath = envStr("MATHDRILL_DB", cfg.DBPath)
	cfg.Level = envInt("MATHDRILL_LEVEL", cfg.Level)
	cfg.Questions = envInt("MATHDRILL_QUESTIONS", cfg.Questions)
	cfg.AutoLevel = envBool("MATHDRILL_AUTO_LEVEL", cfg.AutoLevel)
	cfg.Division = envBool("MATHDRILL_DIVISION", cfg.Division)
	cfg.LogLevel = envStr("MATHDRILL_LOG_LEVEL", cfg.LogLevel)
	if v := os.Getenv("MATHDRILL_KINDS"); v != "" {
		cfg.Kinds = splitList(v)
	}
	if v := os.Getenv("MATHDRILL_SEED"); v != "" {
		if s, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Seed = s
		}
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Questions < 1 {
		return fmt.Errorf("questions must be at least 1, got %d", c.Questions)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLogLevel maps a level name to a slog.Level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		return strings.EqualFold(v, "true") || v == "1"
	}
	return fallback
}
