package config

import (
	"net/url"

	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/errors"
)

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - API base URL, when set, must be an absolute http(s) URL
//   - API timeout must be positive
//
// An empty base URL passes validation; commands that need the backend check
// for it at execution time so offline commands (cron preview, template
// listing) keep working unconfigured.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if err := validateAPIConfig(&cfg.API); err != nil {
		return err
	}

	return nil
}

// validateAPIConfig checks backend-specific configuration values.
func validateAPIConfig(cfg *APIConfig) error {
	if cfg.BaseURL != "" {
		u, err := url.Parse(cfg.BaseURL)
		if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
			return errors.Wrapf(errors.ErrConfigInvalidAPI,
				"api.base_url must be an absolute http(s) URL, got %q", cfg.BaseURL)
		}
	}

	if cfg.Timeout <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalidAPI,
			"api.timeout must be positive, got %s", cfg.Timeout)
	}

	return nil
}
