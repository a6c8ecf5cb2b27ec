// Package config loads lnkinfo settings from built-in defaults, an optional
// TOML file and LNKINFO_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/joshuapare/lnkkit/pkg/lnk"
)

// EnvPrefix prefixes every environment override, e.g. LNKINFO_CODEPAGE.
const EnvPrefix = "LNKINFO_"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the CLI settings.
type Config struct {
	DefaultType string `koanf:"default_type"` // field code used when none is given
	Console     bool   `koanf:"console"`      // report errors on the console instead of a dialog
	CodePage    string `koanf:"codepage"`     // narrow string code page, "auto" for the system one
	Color       string `koanf:"color"`
	LogLevel    string `koanf:"log_level"`
	ZeroCopy    bool   `koanf:"zero_copy"`
}

func defaults() map[string]any {
	return map[string]any{
		"default_type": lnk.DefaultField.Code(),
		"console":      false,
		"codepage":     "auto",
		"color":        ColorAuto,
		"log_level":    "",
		"zero_copy":    false,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/lnkinfo/config.toml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "lnkinfo", "config.toml")
}

// Load builds the configuration. An empty path means DefaultPath, which
// may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	} else if explicit || !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	if _, ok := lnk.ParseField(c.DefaultType); !ok {
		return fmt.Errorf("config: unknown default_type %q", c.DefaultType)
	}
	switch strings.ToLower(c.Color) {
	case ColorAuto, ColorAlways, ColorNever:
		c.Color = strings.ToLower(c.Color)
	default:
		return fmt.Errorf("config: color must be %s, %s or %s, got %q", ColorAuto, ColorAlways, ColorNever, c.Color)
	}
	return nil
}

// Field returns the configured default field.
func (c *Config) Field() lnk.Field {
	f, ok := lnk.ParseField(c.DefaultType)
	if !ok {
		return lnk.DefaultField
	}
	return f
}
