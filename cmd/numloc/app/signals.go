package app

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/sonemaro/numloc/pkg/logger"
)

// exitInterrupted is the conventional exit status after SIGINT
const exitInterrupted = 130

// signalState tracks the state of signal handling
type signalState struct {
	shutdownInitiated atomic.Bool
}

// setupSignalHandling cancels the application context on the first SIGINT
// or SIGTERM and exits on the second
func (a *App) setupSignalHandling() {
	state := &signalState{}

	a.log.Debug("Initializing signal handlers")

	a.signals = make(chan os.Signal, 1)
	signal.Notify(a.signals, syscall.SIGINT, syscall.SIGTERM)

	go a.handleSignals(a.signals, state)
}

// handleSignals processes incoming system signals until the channel closes
func (a *App) handleSignals(sigChan <-chan os.Signal, state *signalState) {
	for sig := range sigChan {
		a.log.WithFields(logger.Fields{
			"signal": sig.String(),
		}).Debug("Received system signal")

		if !state.shutdownInitiated.CompareAndSwap(false, true) {
			a.handleForcedShutdown()
			return
		}

		a.log.Warn("Interrupted, stopping line count")
		a.cancel()
	}
}

// handleForcedShutdown exits immediately after minimal cleanup
func (a *App) handleForcedShutdown() {
	a.log.Warn("Received second interrupt, forcing exit")

	if a.progress != nil {
		a.progress.Stop()
	}
	os.Exit(exitInterrupted)
}

// stopSignalHandling unregisters the handlers and ends handleSignals
func (a *App) stopSignalHandling() {
	if a.signals == nil {
		return
	}
	signal.Stop(a.signals)
	close(a.signals)
	a.signals = nil
}
