package config

import (
	"os"
	"path/filepath"

	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/constants"
	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/errors"
)

// HomeDir returns the fmsched home directory. The FMSCHED_HOME environment
// variable overrides the default ~/.fmsched.
//
// Returns an error if the home directory cannot be determined.
func HomeDir() (string, error) {
	if override := os.Getenv(constants.HomeEnvVar); override != "" {
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, constants.FmschedHome), nil
}

// ConfigPath returns the full path to the global configuration file,
// typically ~/.fmsched/config.yaml.
func ConfigPath() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.ConfigFileName+"."+constants.ConfigFileType), nil
}

// LogsDir returns the directory for CLI log files, typically ~/.fmsched/logs.
func LogsDir() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.LogsDir), nil
}

// TemplatesDir returns the directory scanned for local YAML templates.
// A non-empty override wins; otherwise ~/.fmsched/templates.
func TemplatesDir(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.TemplatesDir), nil
}
