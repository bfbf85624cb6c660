package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// DefaultConfigFile is the config file looked up in the working directory
	DefaultConfigFile = "snowdiff.yaml"

	// ImportDirective marks a line that inlines another SQL file during compilation
	ImportDirective = "-- snowdiff:import"

	// EnvPrefix is prepended to environment variable names read by the CLI
	EnvPrefix = "SNOWDIFF_"
)
