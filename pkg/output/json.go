package output

import (
	"encoding/json"
	"time"

	"github.com/sonemaro/numloc/pkg/linecount"
	"github.com/sonemaro/numloc/pkg/logger"
)

// document is the shared JSON and YAML output shape
type document struct {
	Files      []linecount.Result `json:"files" yaml:"files"`
	Statistics *stats             `json:"statistics,omitempty" yaml:"statistics,omitempty"`
	Generated  time.Time          `json:"generated" yaml:"generated"`
}

func (f *formatter) newDocument(results []linecount.Result, s linecount.Summary) *document {
	doc := &document{
		Files:     results,
		Generated: time.Now(),
	}
	if doc.Files == nil {
		doc.Files = []linecount.Result{}
	}

	if f.config.WithStats {
		f.log.Debug("Adding statistics to document")
		doc.Statistics = f.calculateStats(s)
	}
	return doc
}

func (f *formatter) formatJSON(results []linecount.Result, s linecount.Summary) (string, error) {
	f.log.Debug("Formatting JSON output")

	bytes, err := json.MarshalIndent(f.newDocument(results, s), "", "  ")
	if err != nil {
		f.log.WithFields(logger.Fields{
			"error": err,
		}).Error("Failed to marshal JSON")
		return "", err
	}

	return string(bytes), nil
}
