// Package config provides configuration management for fmsched with layered
// precedence.
//
// Configuration sources are loaded in the following order (highest precedence
// first):
//  1. CLI flags (passed via LoadWithOverrides)
//  2. Environment variables (FMSCHED_* prefix)
//  3. Global config (~/.fmsched/config.yaml)
//  4. Built-in defaults
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import internal/domain or other internal packages.
package config

import "time"

// Config is the root configuration structure for fmsched.
type Config struct {
	// API contains settings for the facility-management backend.
	API APIConfig `yaml:"api" mapstructure:"api"`

	// Wizard contains defaults applied to new schedule-definition sessions.
	Wizard WizardConfig `yaml:"wizard" mapstructure:"wizard"`

	// Templates contains settings for local checklist templates.
	Templates TemplatesConfig `yaml:"templates" mapstructure:"templates"`
}

// APIConfig contains settings for the facility-management backend.
type APIConfig struct {
	// BaseURL is the root URL of the backend, e.g. "https://fm.example.com".
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Token is the bearer token sent with every request. Prefer setting it
	// via the FMSCHED_API_TOKEN environment variable so it stays out of
	// config files.
	Token string `yaml:"token" mapstructure:"token"`

	// Timeout is the maximum duration for a single backend request.
	// Default: 15 seconds
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// WizardConfig contains defaults applied to new wizard sessions.
type WizardConfig struct {
	// WeightageEnabled turns on per-question weightage inputs by default.
	// Default: false
	WeightageEnabled bool `yaml:"weightage_enabled" mapstructure:"weightage_enabled"`

	// Prefetch warms all reference-data collections when a session starts.
	// Default: true
	Prefetch bool `yaml:"prefetch" mapstructure:"prefetch"`
}

// TemplatesConfig contains settings for local checklist templates.
type TemplatesConfig struct {
	// Dir overrides the directory scanned for local YAML templates.
	// Empty means ~/.fmsched/templates.
	Dir string `yaml:"dir" mapstructure:"dir"`
}
