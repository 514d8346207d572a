package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/sonemaro/numloc/pkg/linecount"
)

func (f *formatter) WriteResult(w io.Writer, r linecount.Result) error {
	_, err := fmt.Fprintf(w, "%s\t :: %s\n", f.count(r.Lines), r.Path)
	return err
}

func (f *formatter) WriteSummary(w io.Writer, s linecount.Summary) error {
	if !f.config.WithStats {
		return nil
	}

	f.log.Debug("Adding statistics to output")
	_, err := fmt.Fprintf(w, "%s\t :: total (%d files, %d skipped, %d pruned)\n",
		f.count(s.Lines), s.Files, s.Skipped, s.Pruned)
	return err
}

func (f *formatter) formatPlain(results []linecount.Result, s linecount.Summary) (string, error) {
	f.log.Debug("Formatting plain output")

	var builder strings.Builder
	for _, r := range results {
		if err := f.WriteResult(&builder, r); err != nil {
			return "", err
		}
	}
	if err := f.WriteSummary(&builder, s); err != nil {
		return "", err
	}
	return builder.String(), nil
}

// count renders a line count, bold green when colors are enabled
func (f *formatter) count(n int) string {
	if !f.config.WithColors {
		return fmt.Sprint(n)
	}

	c := color.New(color.FgGreen, color.Bold)
	c.EnableColor()
	return c.Sprint(n)
}
