package config

import (
	"time"

	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/constants"
)

// DefaultConfig returns a new Config with sensible default values.
// These defaults are used as the base layer that can be overridden by
// config files, environment variables, and CLI flags.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			// BaseURL: empty by default; must be configured before any
			// backend operation.
			BaseURL: "",

			// Token: kept out of config files; set FMSCHED_API_TOKEN.
			Token: "",

			// Timeout: short enough that a dead backend never makes a
			// wizard step feel hung.
			Timeout: constants.DefaultHTTPTimeoutSeconds * time.Second,
		},
		Wizard: WizardConfig{
			WeightageEnabled: false,
			Prefetch:         true,
		},
		Templates: TemplatesConfig{
			Dir: "",
		},
	}
}
