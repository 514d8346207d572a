package linecount

import "time"

// Policy decides what happens to a file that cannot be read as text
// during a directory walk
type Policy int

const (
	// PolicySkip logs the file, counts it as skipped and continues
	PolicySkip Policy = iota
	// PolicyStrict aborts the walk with the read error
	PolicyStrict
)

func (p Policy) String() string {
	if p == PolicyStrict {
		return "strict"
	}
	return "skip"
}

// Config contains counter configuration options
type Config struct {
	Filter Filter
	Policy Policy

	// OnSkip, if set, is called for every entry skipped under PolicySkip
	OnSkip func(path string, err error)
}

// Result is the line count of a single file
type Result struct {
	Path  string `json:"path" yaml:"path"`
	Lines int    `json:"lines" yaml:"lines"`
}

// Summary contains statistics about a count operation
type Summary struct {
	// Files is the number of files counted
	Files int
	// Lines is the sum of all counted lines
	Lines int
	// Skipped is the number of files that could not be read as text
	Skipped int
	// Pruned is the number of entries removed by the filter
	Pruned int

	StartTime time.Time
	Duration  time.Duration
}

// Add records a counted file
func (s *Summary) Add(r Result) {
	s.Files++
	s.Lines += r.Lines
}
