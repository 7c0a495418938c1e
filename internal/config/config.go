// Package config provides run configuration for the installer using Viper.
package config

import (
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/hollowdeep/bootstrap/internal/errors"
	"github.com/hollowdeep/bootstrap/internal/platform"
)

// AppName is the application name used for config file naming and the
// environment variable prefix (HOLLOWDEEP_*).
const AppName = "hollowdeep"

// Config holds the configuration for a single installer run.
// It is parsed once from flags and environment and never mutated afterwards.
type Config struct {
	// Prefix is the install root; bin/ and data/ are created beneath it.
	Prefix string `mapstructure:"prefix" yaml:"prefix"`

	// Source is the path to the source checkout to build.
	Source string `mapstructure:"source" yaml:"source"`

	// SkipRust skips the toolchain install step. If the toolchain is
	// absent with this set, the run fails before any build attempt.
	SkipRust bool `mapstructure:"skip_rust" yaml:"skip_rust"`

	// BuildOnly builds the release artifact and stops before installing.
	BuildOnly bool `mapstructure:"build_only" yaml:"build_only"`

	// AssumeYes answers every confirmation prompt affirmatively,
	// making the run fully non-interactive.
	AssumeYes bool `mapstructure:"assume_yes" yaml:"assume_yes"`

	// Channel is the Rust toolchain channel installed when the
	// toolchain is absent (stable, beta, nightly).
	Channel string `mapstructure:"channel" yaml:"channel"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	// Environment variable support
	viper.SetEnvPrefix("HOLLOWDEEP")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("prefix", platform.DefaultInstallRoot())
	viper.SetDefault("source", ".")
	viper.SetDefault("channel", "stable")
}

// Load reads the configuration, layering any config file over the defaults.
// A missing config file is not an error; an unreadable one is.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
			// Implicit load without a file falls back to defaults.
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	// Clean only a non-empty prefix so Validate can still catch the
	// empty case; Clean would turn "" into ".".
	if cfg.Prefix != "" {
		cfg.Prefix = filepath.Clean(cfg.Prefix)
	}
	return &cfg, nil
}

// Validate checks the configuration for obvious mistakes.
func (c *Config) Validate() error {
	if c.Prefix == "" {
		return errors.New("install prefix must not be empty")
	}
	if c.Source == "" {
		return errors.New("source path must not be empty")
	}
	switch c.Channel {
	case "stable", "beta", "nightly":
	default:
		return errors.Newf("invalid toolchain channel %q (valid: stable, beta, nightly)", c.Channel)
	}
	return nil
}
