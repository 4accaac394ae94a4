package constants

// Directory and file names under the fmsched home directory (~/.fmsched).
const (
	// FmschedHome is the default home directory name, relative to $HOME.
	FmschedHome = ".fmsched"

	// HomeEnvVar overrides the home directory location when set.
	HomeEnvVar = "FMSCHED_HOME"

	// LogsDir is the subdirectory for log files.
	LogsDir = "logs"

	// CLILogFileName is the global CLI log file name.
	CLILogFileName = "fmsched.log"

	// TemplatesDir is the subdirectory for local schedule template files.
	TemplatesDir = "templates"

	// ConfigFileName is the config file name (without extension).
	ConfigFileName = "config"

	// ConfigFileType is the config file format.
	ConfigFileType = "yaml"
)
