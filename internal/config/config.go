// Package config loads CLI settings from defaults, an optional YAML file and
// TAGNOTE_* environment variables, in increasing order of precedence.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/aretw0/tagnote/pkg/core"
)

// EnvPrefix is prepended to every environment override, e.g. TAGNOTE_VAULT.
const EnvPrefix = "TAGNOTE"

// Config holds the resolved settings.
type Config struct {
	Vault        string `mapstructure:"vault"`
	DefaultColor string `mapstructure:"default_color"`
	LogLevel     string `mapstructure:"log_level"`
	ReadOnly     bool   `mapstructure:"read_only"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Vault:        ".",
		DefaultColor: core.DefaultColor,
		LogLevel:     "info",
	}
}

// Load reads configuration. With an empty configPath it looks for
// config.yaml in ~/.config/tagnote and the working directory; a missing
// file is fine.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "tagnote"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("vault", d.Vault)
	v.SetDefault("default_color", d.DefaultColor)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("read_only", d.ReadOnly)
}

// Validate checks the color against the palette and the log level name.
func (c *Config) Validate() error {
	if !core.IsPaletteColor(c.DefaultColor) {
		return fmt.Errorf("default_color %q: %w", c.DefaultColor, core.ErrInvalidColor)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level maps LogLevel onto a slog level.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
