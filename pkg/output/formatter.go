/*
Package output renders line count results as plain text, JSON or YAML.

Plain output streams one line per file as results arrive:

	formatter := output.NewFormatter(output.Config{
		Format:     output.FormatPlain,
		WithColors: true,
	}, log)

	formatter.WriteResult(os.Stdout, result) // "12\t :: src/main.go"

JSON and YAML are documents, rendered once the walk has finished:

	doc, err := formatter.Format(results, summary)
*/
package output

import (
	"fmt"
	"io"

	"github.com/sonemaro/numloc/pkg/linecount"
	"github.com/sonemaro/numloc/pkg/logger"
)

// Format represents the output format type
type Format string

const (
	FormatPlain Format = "plain"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// IsValid reports whether f names a supported format
func (f Format) IsValid() bool {
	switch f {
	case FormatPlain, FormatJSON, FormatYAML:
		return true
	}
	return false
}

// Config holds formatter configuration
type Config struct {
	Format     Format
	WithStats  bool
	WithColors bool
}

// Formatter defines the interface for output formatting
type Formatter interface {
	// Streaming reports whether results are written as they arrive
	Streaming() bool

	// WriteResult writes a single plain result line
	WriteResult(w io.Writer, r linecount.Result) error

	// WriteSummary writes the plain total line when stats are enabled
	WriteSummary(w io.Writer, s linecount.Summary) error

	// Format renders a complete document in the configured format
	Format(results []linecount.Result, s linecount.Summary) (string, error)
}

type formatter struct {
	config Config
	log    logger.Logger
}

// NewFormatter creates a new formatter instance
func NewFormatter(config Config, log logger.Logger) Formatter {
	if config.Format == "" {
		config.Format = FormatPlain
	}

	return &formatter{
		config: config,
		log:    log,
	}
}

func (f *formatter) Streaming() bool {
	return f.config.Format == FormatPlain
}

// Format renders the collected results according to the configured format
func (f *formatter) Format(results []linecount.Result, s linecount.Summary) (string, error) {
	f.log.WithFields(logger.Fields{
		"format":     f.config.Format,
		"results":    len(results),
		"withStats":  f.config.WithStats,
		"withColors": f.config.WithColors,
	}).Debug("Starting format operation")

	switch f.config.Format {
	case FormatPlain:
		return f.formatPlain(results, s)
	case FormatJSON:
		return f.formatJSON(results, s)
	case FormatYAML:
		return f.formatYAML(results, s)
	default:
		msg := fmt.Sprintf("unsupported format: %s", f.config.Format)
		f.log.Error(msg)
		return "", fmt.Errorf("%s", msg)
	}
}
