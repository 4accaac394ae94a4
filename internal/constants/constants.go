// Package constants provides shared constant values for the fmsched CLI.
//
// This package MUST NOT import any other internal packages.
package constants

// Application identity.
const (
	// AppName is the CLI binary name.
	AppName = "fmsched"

	// EnvPrefix is the prefix for environment variable configuration overrides.
	EnvPrefix = "FMSCHED"
)

// Log rotation settings for the global CLI log file.
const (
	// LogMaxSizeMB is the maximum size of a log file before rotation, in megabytes.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated log files to retain.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum age of a rotated log file, in days.
	LogMaxAgeDays = 30

	// LogCompress controls gzip compression of rotated log files.
	LogCompress = true
)

// HTTP defaults for the FM backend client.
const (
	// DefaultHTTPTimeoutSeconds is the default request timeout for backend calls.
	DefaultHTTPTimeoutSeconds = 15
)
