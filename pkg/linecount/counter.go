/*
Package linecount counts non-blank lines in a file or across a directory
tree, pruning excluded paths and hidden entries before they are read or
descended into.

Basic usage:

	counter := linecount.NewCounter(linecount.Config{
		Filter: linecount.NewFilter([]string{"vendor"}, false),
		Policy: linecount.PolicySkip,
	}, afero.NewOsFs(), log)

	summary, err := counter.Count(ctx, "./src", func(r linecount.Result) error {
		fmt.Printf("%d\t :: %s\n", r.Lines, r.Path)
		return nil
	})

The walk is single-threaded. Results are delivered in traversal order,
siblings sorted by name.
*/
package linecount

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/spf13/afero"

	"github.com/sonemaro/numloc/pkg/logger"
)

// Counter defines the line counting operations
type Counter interface {
	// Count walks root and calls fn for every counted file. An error
	// returned by fn stops the walk and is returned as is.
	Count(ctx context.Context, root string, fn func(Result) error) (Summary, error)

	// CountAll is Count with the results collected into a slice
	CountAll(ctx context.Context, root string) ([]Result, Summary, error)
}

type counter struct {
	config Config
	fs     afero.Fs
	log    logger.Logger
}

// NewCounter creates a Counter reading from fs
func NewCounter(config Config, fs afero.Fs, log logger.Logger) Counter {
	if log == nil {
		log = logger.NewNop()
	}

	return &counter{
		config: config,
		fs:     fs,
		log:    log,
	}
}

func (c *counter) CountAll(ctx context.Context, root string) ([]Result, Summary, error) {
	var results []Result
	summary, err := c.Count(ctx, root, func(r Result) error {
		results = append(results, r)
		return nil
	})
	return results, summary, err
}

func (c *counter) Count(ctx context.Context, root string, fn func(Result) error) (summary Summary, err error) {
	summary.StartTime = time.Now()
	defer func() {
		summary.Duration = time.Since(summary.StartTime)
	}()

	c.log.WithFields(logger.Fields{
		"path":        root,
		"exclude":     c.config.Filter.Exclusions(),
		"allowHidden": c.config.Filter.AllowHidden(),
		"policy":      c.config.Policy.String(),
	}).Info("Starting line count")

	info, err := c.fs.Stat(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return summary, &PathError{Path: root, Err: ErrNotFound}
		}
		return summary, &PathError{Path: root, Err: err}
	}

	switch {
	case info.Mode().IsRegular():
		// single-file mode: an undecodable file is always fatal
		r, err := c.countFile(root)
		if err != nil {
			return summary, err
		}
		summary.Add(r)
		if err := fn(r); err != nil {
			return summary, err
		}

	case info.IsDir():
		if err := c.walkDir(ctx, root, "", &summary, fn); err != nil {
			return summary, err
		}

	default:
		return summary, &PathError{Path: root, Err: ErrUnsupported}
	}

	c.log.WithFields(logger.Fields{
		"files":   summary.Files,
		"lines":   summary.Lines,
		"skipped": summary.Skipped,
		"pruned":  summary.Pruned,
	}).Info("Line count completed")

	return summary, nil
}

// walkDir visits the entries of dir depth first. rel is dir relative to
// the walk root.
func (c *counter) walkDir(ctx context.Context, dir, rel string, summary *Summary, fn func(Result) error) error {
	c.log.WithFields(logger.Fields{
		"path": dir,
	}).Debug("Reading directory")

	entries, err := afero.ReadDir(c.fs, dir)
	if err != nil {
		c.log.WithFields(logger.Fields{
			"error": err,
			"path":  dir,
		}).Warn("Failed to read directory")
		if rel == "" {
			return &PathError{Path: dir, Err: err}
		}
		return c.handleReadError(dir, &PathError{Path: dir, Err: err}, summary)
	}

	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		entryPath := filepath.Join(dir, entry.Name())
		entryRel := filepath.Join(rel, entry.Name())

		if reason := c.config.Filter.Check(entryPath, entryRel); reason != Kept {
			c.log.WithFields(logger.Fields{
				"path":   entryPath,
				"reason": string(reason),
			}).Debug("Pruning entry")
			summary.Pruned++
			continue
		}

		switch {
		case entry.IsDir():
			if err := c.walkDir(ctx, entryPath, entryRel, summary, fn); err != nil {
				return err
			}

		case entry.Mode().IsRegular():
			r, err := c.countFile(entryPath)
			if err != nil {
				if err := c.handleReadError(entryPath, err, summary); err != nil {
					return err
				}
				continue
			}
			summary.Add(r)
			if err := fn(r); err != nil {
				return err
			}

		default:
			c.log.WithFields(logger.Fields{
				"path": entryPath,
				"mode": entry.Mode().String(),
			}).Trace("Ignoring non-regular entry")
		}
	}

	return nil
}

// handleReadError applies the configured policy to a failure on an entry
// found below the root
func (c *counter) handleReadError(path string, err error, summary *Summary) error {
	if c.config.Policy == PolicyStrict {
		return err
	}

	c.log.WithFields(logger.Fields{
		"error": err.Error(),
	}).Warn("Skipping unreadable file")
	summary.Skipped++
	if c.config.OnSkip != nil {
		c.config.OnSkip(path, err)
	}
	return nil
}

// countFile reads path fully and counts its non-blank lines
func (c *counter) countFile(path string) (Result, error) {
	content, err := afero.ReadFile(c.fs, path)
	if err != nil {
		return Result{}, &PathError{Path: path, Err: fmt.Errorf("read failed: %w", err)}
	}

	if !utf8.Valid(content) {
		return Result{}, &DecodeError{Path: path, Offset: invalidOffset(content)}
	}

	r := Result{Path: path, Lines: CountLines(content)}

	c.log.WithFields(logger.Fields{
		"path":  path,
		"size":  len(content),
		"lines": r.Lines,
	}).Trace("File counted")

	return r, nil
}

func invalidOffset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(b)
}
