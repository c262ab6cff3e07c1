// Package config resolves tripboard settings from defaults, an optional YAML
// file and TRIPBOARD_* environment variables.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

const (
	EnvPrefix     = "TRIPBOARD_"
	EnvConfigPath = "TRIPBOARD_CONFIG"
	logFileName   = "tripboard.log"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	// Dir holds the event database and the default log file.
	Dir string `koanf:"dir"`

	// LogFile defaults to <Dir>/tripboard.log. The TUI owns the terminal, so
	// logs never go to stderr.
	LogFile string `koanf:"log_file"`

	// LogLevel is a logrus level name: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Format selects CLI output: json or text.
	Format string `koanf:"format"`
	Pretty bool   `koanf:"pretty"`

	NoColor bool `koanf:"no_color"`
}

func New() *Config {
	return &Config{
		Dir:      defaultDir(),
		LogLevel: "info",
		Format:   "json",
	}
}

func defaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".tripboard"
	}
	return filepath.Join(home, ".tripboard")
}

// Load layers, low to high: defaults, the YAML file at path (or
// TRIPBOARD_CONFIG when path is empty), then TRIPBOARD_* env vars.
func Load(_ context.Context, path string) (*Config, error) {
	base := New()
	k := koanf.New(".")

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	// TRIPBOARD_LOG_LEVEL -> log_level
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, strings.ToLower(EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}
	// The config path itself is not a setting.
	k.Delete("config")

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Dir) == "" {
		return fmt.Errorf("%w: dir must not be empty", ErrInvalidConfig)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}
	switch c.Format {
	case "json", "text":
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Format)
	}
	return nil
}

// LogPath is where the logger writes.
func (c *Config) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(c.Dir, logFileName)
}
