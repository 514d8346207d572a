/*
Package progress draws a single, continuously rewritten status line on
stderr while lines are being counted. It renders synchronously from
Update, throttled by RefreshRate, and does nothing unless its output is a
terminal (or Force is set).
*/
package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"

	"github.com/sonemaro/numloc/pkg/logger"
)

type progress struct {
	config Config
	log    logger.Logger
	writer io.Writer

	enabled    bool
	active     bool
	status     Status
	startTime  time.Time
	lastRender time.Time
	drawn      bool

	renderer *lineRenderer
	mu       sync.Mutex
}

// New creates a new progress status line
func New(config Config, log logger.Logger) Progress {
	if config.Output == nil {
		config.Output = os.Stderr
	}
	if config.RefreshRate == 0 {
		config.RefreshRate = 100 * time.Millisecond
	}

	p := &progress{
		config: config,
		log:    log,
		writer: config.Output,
	}
	p.enabled = !config.Disabled && (config.Force || p.isTerminal())

	width := config.Width
	if width == 0 {
		width = p.terminalWidth()
	}
	p.renderer = &lineRenderer{
		width:   width,
		noColor: config.NoColor,
	}

	p.log.WithFields(logger.Fields{
		"enabled": p.enabled,
		"width":   width,
		"noColor": config.NoColor,
		"refresh": config.RefreshRate.String(),
	}).Debug("Created progress line")

	return p
}

func (p *progress) Enabled() bool {
	return p.enabled
}

func (p *progress) Start(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.log.WithFields(logger.Fields{
		"message": message,
	}).Debug("Starting progress")

	p.startTime = time.Now()
	p.status = Status{}
	p.active = true

	if p.enabled && message != "" {
		p.clearLine()
		fmt.Fprint(p.writer, message)
		p.drawn = true
	}
}

func (p *progress) Update(status Status) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.status = status
	if !p.enabled || !p.active {
		return
	}

	now := time.Now()
	if p.drawn && now.Sub(p.lastRender) < p.config.RefreshRate {
		return
	}
	p.lastRender = now
	p.draw()
}

func (p *progress) Complete(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.log.WithFields(logger.Fields{
		"message": message,
	}).Debug("Completing progress")

	if p.enabled && p.active {
		p.draw()
		fmt.Fprintln(p.writer)
		if message != "" {
			fmt.Fprintln(p.writer, message)
		}
		p.drawn = false
	}
	p.active = false
}

func (p *progress) Error(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.log.WithFields(logger.Fields{
		"message": message,
	}).Debug("Error in progress")

	if p.enabled && p.active {
		p.clearLine()
		if message != "" {
			fmt.Fprintln(p.writer, message)
		}
		p.drawn = false
	}
	p.active = false
}

func (p *progress) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.enabled && p.drawn {
		p.clearLine()
		p.drawn = false
	}
}

func (p *progress) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.log.Debug("Stopping progress")

	if p.enabled && p.drawn {
		p.clearLine()
		p.drawn = false
	}
	p.active = false
}

func (p *progress) draw() {
	p.clearLine()
	fmt.Fprint(p.writer, p.renderer.render(p.status, time.Since(p.startTime)))
	p.drawn = true
}

func (p *progress) clearLine() {
	if p.config.NoColor {
		fmt.Fprint(p.writer, "\r")
		return
	}
	fmt.Fprint(p.writer, "\r\033[K")
}

func (p *progress) isTerminal() bool {
	if f, ok := p.writer.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func (p *progress) terminalWidth() int {
	if f, ok := p.writer.(*os.File); ok && p.isTerminal() {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w - 1
		}
	}
	return 79
}
