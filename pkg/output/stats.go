package output

import (
	"github.com/sonemaro/numloc/pkg/linecount"
	"github.com/sonemaro/numloc/pkg/logger"
)

// stats holds totals for a count operation
type stats struct {
	Files    int    `json:"totalFiles" yaml:"totalFiles"`
	Lines    int    `json:"totalLines" yaml:"totalLines"`
	Skipped  int    `json:"skippedFiles" yaml:"skippedFiles"`
	Pruned   int    `json:"prunedEntries" yaml:"prunedEntries"`
	Duration string `json:"duration" yaml:"duration"`
}

func (f *formatter) calculateStats(s linecount.Summary) *stats {
	st := &stats{
		Files:    s.Files,
		Lines:    s.Lines,
		Skipped:  s.Skipped,
		Pruned:   s.Pruned,
		Duration: s.Duration.String(),
	}

	f.log.WithFields(logger.Fields{
		"files":   st.Files,
		"lines":   st.Lines,
		"skipped": st.Skipped,
		"pruned":  st.Pruned,
	}).Debug("Statistics calculated")

	return st
}
