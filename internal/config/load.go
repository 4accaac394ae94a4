package config

import (
	stderrors "errors"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/constants"
	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/errors"
)

// newViperInstance creates a Viper instance with the standard fmsched setup:
// environment prefix (FMSCHED_), key replacer, and defaults.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults configures all default values on the Viper instance.
// These defaults match the values from DefaultConfig().
// IMPORTANT: Keys must match the YAML tag names exactly for proper mapping.
func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "")
	v.SetDefault("api.token", "")
	v.SetDefault("api.timeout", (constants.DefaultHTTPTimeoutSeconds * time.Second).String())

	v.SetDefault("wizard.weightage_enabled", false)
	v.SetDefault("wizard.prefetch", true)

	v.SetDefault("templates.dir", "")
}

// isConfigNotFoundError returns true if the error is a viper config file not
// found error.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// unmarshalAndValidate unmarshals viper config into Config and validates it.
func unmarshalAndValidate(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// Load reads configuration from all available sources with proper precedence.
// Missing config files are not an error; the defaults and environment carry
// the configuration in that case.
//
// For CLI flag overrides, use LoadWithOverrides instead.
func Load() (*Config, error) {
	v := newViperInstance()

	path, err := ConfigPath()
	if err == nil && fileExists(path) {
		v.SetConfigFile(path)
		if readErr := v.ReadInConfig(); readErr != nil && !isConfigNotFoundError(readErr) {
			return nil, errors.Wrap(readErr, "failed to read config file")
		}
	}

	return unmarshalAndValidate(v)
}

// LoadWithOverrides loads configuration and applies CLI flag overrides.
// Only non-zero values in overrides are applied, allowing partial overrides.
//
// Boolean fields cannot be overridden to false here because Go's zero value
// for bool is false. The CLI handles boolean flags with Changed() checks.
func LoadWithOverrides(overrides *Config) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		applyOverrides(cfg, overrides)
	}

	if err := Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration after overrides")
	}
	return cfg, nil
}

// LoadFromPath loads configuration from a specific file path for testing.
func LoadFromPath(path string) (*Config, error) {
	v := newViperInstance()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read config: %s", path)
		}
	}
	return unmarshalAndValidate(v)
}

func applyOverrides(cfg, overrides *Config) {
	if overrides.API.BaseURL != "" {
		cfg.API.BaseURL = overrides.API.BaseURL
	}
	if overrides.API.Token != "" {
		cfg.API.Token = overrides.API.Token
	}
	if overrides.API.Timeout != 0 {
		cfg.API.Timeout = overrides.API.Timeout
	}
	if overrides.Templates.Dir != "" {
		cfg.Templates.Dir = overrides.Templates.Dir
	}
	// WeightageEnabled and Prefetch are bools; the CLI applies them via
	// explicit Changed() handling.
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// viperDecoderOption returns the decoder options for Viper unmarshal.
// This configures mapstructure to handle time.Duration conversion from strings.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	)
}
