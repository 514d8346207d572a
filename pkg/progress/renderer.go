package progress

import (
	"fmt"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type lineRenderer struct {
	width   int
	noColor bool
	frame   int
}

// render builds one status line, never longer than the configured width
func (r *lineRenderer) render(status Status, elapsed time.Duration) string {
	spin := spinnerFrames[r.frame%len(spinnerFrames)]
	r.frame++

	head := fmt.Sprintf("%s %d files, %d lines", spin, status.Files, status.Lines)
	if status.Skipped > 0 {
		head += fmt.Sprintf(", %d skipped", status.Skipped)
	}
	head += fmt.Sprintf(" [%s]", formatElapsed(elapsed))

	line := head
	if status.CurrentItem != "" {
		line += " " + status.CurrentItem
	}
	line = truncate(line, r.width)

	if !r.noColor {
		return "\033[36m" + line + "\033[0m"
	}
	return line
}

// truncate keeps the tail of s so the current path stays readable
func truncate(s string, width int) string {
	runes := []rune(s)
	if width <= 0 || len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return "..." + string(runes[len(runes)-width+3:])
}

func formatElapsed(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return d.Truncate(time.Second).String()
}
