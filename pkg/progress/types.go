package progress

import (
	"io"
	"time"
)

// Config holds the configuration for the progress status line
type Config struct {
	// Output is where the status line is drawn. Defaults to os.Stderr.
	Output io.Writer

	// Width caps the line length (0 = detect from the terminal)
	Width int

	// NoColor disables colored output
	NoColor bool

	// RefreshRate is the minimum interval between two renders
	RefreshRate time.Duration

	// Disabled turns every call into a no-op
	Disabled bool

	// Force draws even when Output is not a terminal
	Force bool
}

// Status represents the current state of a count
type Status struct {
	// Files counted so far
	Files int

	// Lines counted so far
	Lines int

	// Skipped files so far
	Skipped int

	// CurrentItem is the path being processed
	CurrentItem string
}

// Progress defines the interface for progress visualization
type Progress interface {
	// Start begins progress visualization with an initial message
	Start(message string)

	// Update records the status and redraws if the refresh interval passed
	Update(status Status)

	// Complete draws the final status followed by message
	Complete(message string)

	// Error clears the status line and prints message
	Error(message string)

	// Clear erases the status line so other output can be written;
	// the next Update redraws it
	Clear()

	// Stop clears the status line
	Stop()

	// Enabled reports whether anything is drawn
	Enabled() bool
}
