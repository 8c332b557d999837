// Package config loads crmquest settings: built-in defaults, then the YAML
// file, then CQ_* environment variables. Command-line flags are applied by
// the caller on top.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"crmquest/internal/banner"
	"crmquest/internal/storage"
)

const (
	// AppDir is the directory under the user config dir holding config.yaml.
	AppDir     = "crmquest"
	configFile = "config.yaml"
)

const defaultConfigYAML = `# crmquest configuration

# SQLite file holding clients, missions and progress between runs.
# db_path: ~/.crmquest.db

# Locale used to order client names.
locale: en

# How long the completion banner stays on screen.
banner_ttl: 3s

log:
  level: info
  # Leave empty to log to stderr. The board always needs a file to stay readable.
  file: ""
`

// LogConfig controls the zap logger.
type LogConfig struct {
	Level string `yaml:"level" env:"LEVEL"`
	File  string `yaml:"file" env:"FILE"`
}

// Config is the merged configuration.
type Config struct {
	DBPath    string        `yaml:"db_path" env:"DB_PATH"`
	Locale    string        `yaml:"locale" env:"LOCALE"`
	BannerTTL time.Duration `yaml:"banner_ttl" env:"BANNER_TTL"`
	Log       LogConfig     `yaml:"log" envPrefix:"LOG_"`

	// Path is the file the config was read from, empty when none existed.
	Path string `yaml:"-"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Locale:    "en",
		BannerTTL: banner.DefaultTTL,
		Log:       LogConfig{Level: "info"},
	}
}

// DefaultPath returns ~/.config/crmquest/config.yaml (or the platform equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: user config dir: %w", err)
	}
	return filepath.Join(dir, AppDir, configFile), nil
}

// Load reads the config at path (DefaultPath when empty). A missing file is
// not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
		cfg.Path = path
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "CQ_"}); err != nil {
		return cfg, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// WriteDefault writes a commented default config to path unless a file
// already exists there.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: ensure dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigYAML), 0o644); err != nil {
		return fmt.Errorf("config: write default: %w", err)
	}
	return nil
}

func (c *Config) normalize() error {
	if c.DBPath == "" {
		p, err := storage.DefaultDBPath()
		if err != nil {
			return err
		}
		c.DBPath = p
	}
	c.DBPath = expandHome(c.DBPath)
	c.Log.File = expandHome(c.Log.File)
	if c.BannerTTL <= 0 {
		c.BannerTTL = banner.DefaultTTL
	}
	if strings.TrimSpace(c.Locale) == "" {
		c.Locale = "en"
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("config: invalid locale %q: %w", c.Locale, err)
	}
	return nil
}

// LocaleTag returns the configured locale, English when it cannot be parsed.
func (c Config) LocaleTag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return p
		}
		return filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	return p
}
