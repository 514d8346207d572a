package config

// OutputFormat represents the supported loc output formats
type OutputFormat string

const (
	// OutputFormatPlain writes one "<count>\t :: <path>" line per file
	OutputFormatPlain OutputFormat = "plain"

	// OutputFormatJSON represents the JSON output format
	OutputFormatJSON OutputFormat = "json"

	// OutputFormatYAML represents the YAML output format
	OutputFormatYAML OutputFormat = "yaml"
)

const (
	// EnvPrefix is prepended to every environment variable name
	EnvPrefix = "NUMLOC"

	// MaxVerbosity is the highest meaningful verbosity level
	MaxVerbosity = 3
)
