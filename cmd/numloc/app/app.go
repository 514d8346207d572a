/*
Package app provides the application container for numloc. It wires the
logger, filesystem, line counter, formatter and progress line together and
cancels running work on SIGINT/SIGTERM.

Usage:

	application := app.New(cfg)
	defer application.Shutdown()

	if err := application.Convert("0xff", radix.Dec); err != nil {
	    return err
	}
*/
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/spf13/afero"

	"github.com/sonemaro/numloc/internal/config"
	"github.com/sonemaro/numloc/pkg/linecount"
	"github.com/sonemaro/numloc/pkg/logger"
	"github.com/sonemaro/numloc/pkg/output"
	"github.com/sonemaro/numloc/pkg/progress"
	"github.com/sonemaro/numloc/pkg/radix"
)

// Options overrides the default dependencies of an App
type Options struct {
	// Fs is the filesystem counted from. Defaults to the OS filesystem.
	Fs afero.Fs

	// Stdout receives converted numbers and line counts
	Stdout io.Writer

	// Stderr receives logs and the progress line
	Stderr io.Writer

	// NoSignals skips installing signal handlers
	NoSignals bool
}

// App represents the main application container
type App struct {
	config *config.Config
	log    logger.Logger
	fs     afero.Fs
	stdout io.Writer
	stderr io.Writer

	progress progress.Progress

	ctx     context.Context
	cancel  context.CancelFunc
	signals chan os.Signal
	mu      sync.Mutex
	closed  bool
}

// New creates a new application instance
func New(cfg *config.Config, opts Options) *App {
	ctx, cancel := context.WithCancel(context.Background())

	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	a := &App{
		config: cfg,
		fs:     opts.Fs,
		stdout: opts.Stdout,
		stderr: opts.Stderr,
		ctx:    ctx,
		cancel: cancel,
	}

	a.initLogger()
	a.initComponents()
	if !opts.NoSignals {
		a.setupSignalHandling()
	}

	a.log.WithFields(logger.Fields{
		"config": cfg.String(),
	}).Debug("Application initialized")

	return a
}

// Convert parses literal and writes it to stdout in the requested base
func (a *App) Convert(literal string, base radix.Base) error {
	a.log.WithFields(logger.Fields{
		"literal": literal,
		"base":    base.String(),
	}).Info("Converting number")

	out, err := radix.Convert(literal, base)
	if err != nil {
		a.log.WithFields(logger.Fields{
			"error": err.Error(),
		}).Debug("Conversion failed")
		return err
	}

	_, err = fmt.Fprintln(a.stdout, out)
	return err
}

// CountLines counts non-blank lines under path and writes the results to
// stdout. Plain output streams; json and yaml are written once complete.
func (a *App) CountLines(path string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			a.log.WithFields(logger.Fields{
				"panic": r,
				"stack": string(debug.Stack()),
			}).Error("Recovered from panic")
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	a.log.WithFields(logger.Fields{
		"path":        path,
		"exclude":     a.config.Exclude,
		"allowHidden": a.config.AllowHidden,
		"strict":      a.config.Strict,
		"output":      a.config.Output,
	}).Info("Starting line count")

	policy := linecount.PolicySkip
	if a.config.Strict {
		policy = linecount.PolicyStrict
	}

	var (
		results []linecount.Result
		status  progress.Status
	)

	counter := linecount.NewCounter(linecount.Config{
		Filter: linecount.NewFilter(a.config.Exclude, a.config.AllowHidden),
		Policy: policy,
		OnSkip: func(path string, _ error) {
			status.Skipped++
			status.CurrentItem = path
			a.progress.Update(status)
		},
	}, a.fs, a.log)

	formatter := output.NewFormatter(output.Config{
		Format:     output.Format(a.config.Output),
		WithStats:  a.config.Total,
		WithColors: a.colorsEnabled(),
	}, a.log)

	a.progress.Start("")
	summary, err := counter.Count(a.ctx, path, func(r linecount.Result) error {
		status.Files++
		status.Lines += r.Lines
		status.CurrentItem = r.Path

		if formatter.Streaming() {
			a.progress.Clear()
			if err := formatter.WriteResult(a.stdout, r); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		} else {
			results = append(results, r)
		}

		a.progress.Update(status)
		return nil
	})
	if err != nil {
		a.progress.Error("")
		return fmt.Errorf("line count failed: %w", err)
	}
	a.progress.Complete("")

	if formatter.Streaming() {
		if err := formatter.WriteSummary(a.stdout, summary); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		doc, err := formatter.Format(results, summary)
		if err != nil {
			return fmt.Errorf("output formatting failed: %w", err)
		}
		if _, err := fmt.Fprintln(a.stdout, doc); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	a.log.WithFields(logger.Fields{
		"files":    summary.Files,
		"lines":    summary.Lines,
		"skipped":  summary.Skipped,
		"pruned":   summary.Pruned,
		"duration": summary.Duration.String(),
	}).Info("Line count completed")

	return nil
}

// Shutdown releases signal handlers and clears the progress line. It is
// safe to call more than once.
func (a *App) Shutdown() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return nil
	}
	a.closed = true

	a.log.Debug("Shutting down")

	a.cancel()
	a.stopSignalHandling()
	a.progress.Stop()

	return nil
}

func (a *App) initLogger() {
	a.log = logger.NewLogger(logger.Config{
		Verbosity: a.config.Verbose,
		Output:    a.stderr,
	})

	a.log.WithFields(logger.Fields{
		"verbosity": a.config.Verbose,
	}).Debug("Logger initialized")
}

func (a *App) initComponents() {
	a.progress = progress.New(progress.Config{
		Output:   a.stderr,
		NoColor:  a.config.NoColor,
		Disabled: a.config.NoProgress,
	}, a.log)
}

// colorsEnabled reports whether stdout is a terminal that should get colors
func (a *App) colorsEnabled() bool {
	if a.config.NoColor {
		return false
	}
	f, ok := a.stdout.(*os.File)
	return ok && isTerminal(f)
}
