package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration parameters for the application
type Config struct {
	// Exclude lists paths pruned from loc traversal
	Exclude []string

	// AllowHidden includes entries whose name starts with a dot
	AllowHidden bool

	// Strict aborts a directory walk on the first unreadable file
	Strict bool

	// Output specifies the loc output format (plain, json, or yaml)
	Output string

	// Total appends a summary line to plain output
	Total bool

	// NoProgress disables the progress status line
	NoProgress bool

	// NoColor disables colored output
	NoColor bool

	// Verbose sets the verbosity level
	Verbose int
}

var validOutputFormats = map[string]bool{
	string(OutputFormatPlain): true,
	string(OutputFormatJSON):  true,
	string(OutputFormatYAML):  true,
}

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		Output: string(OutputFormatPlain),
	}
}

// Load reads configuration from environment variables and validates it
func Load() (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("allow_hidden", def.AllowHidden)
	v.SetDefault("strict", def.Strict)
	v.SetDefault("output", def.Output)
	v.SetDefault("total", def.Total)
	v.SetDefault("no_progress", def.NoProgress)
	v.SetDefault("no_color", def.NoColor)
	v.SetDefault("verbose", "")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	for _, key := range []string{
		"exclude", "allow_hidden", "strict", "output",
		"total", "no_progress", "no_color", "verbose",
	} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	verbose, err := parseVerbosity(v.GetString("verbose"))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Exclude:     splitList(v.GetString("exclude")),
		AllowHidden: v.GetBool("allow_hidden"),
		Strict:      v.GetBool("strict"),
		Output:      strings.ToLower(strings.TrimSpace(v.GetString("output"))),
		Total:       v.GetBool("total"),
		NoProgress:  v.GetBool("no_progress"),
		NoColor:     v.GetBool("no_color"),
		Verbose:     verbose,
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	if !validOutputFormats[c.Output] {
		return fmt.Errorf("invalid output format %q: must be one of [plain json yaml]", c.Output)
	}

	if c.Verbose < 0 {
		return fmt.Errorf("verbosity must be non-negative")
	}

	for _, p := range c.Exclude {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("exclude paths must not be empty")
		}
	}

	return nil
}

// String returns a string representation of the configuration
func (c Config) String() string {
	return fmt.Sprintf(
		"Config{Output: %s, Exclude: %v, AllowHidden: %v, Strict: %v, "+
			"Total: %v, NoProgress: %v, NoColor: %v, Verbose: %d}",
		c.Output, c.Exclude, c.AllowHidden, c.Strict,
		c.Total, c.NoProgress, c.NoColor, c.Verbose,
	)
}

// parseVerbosity accepts either a run of 'v's or a plain number. Levels
// above MaxVerbosity are clamped to it
func parseVerbosity(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return min(n, MaxVerbosity), nil
	}
	if strings.Trim(s, "v") != "" {
		return 0, fmt.Errorf("invalid verbosity %q: use a number or a run of 'v'", s)
	}
	return min(len(s), MaxVerbosity), nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
