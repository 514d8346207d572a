/*
Package logger provides structured logging for numloc. It wraps uber-go/zap
behind a small interface with verbosity levels tied to the -v flag.

Basic usage:

	log := logger.NewLogger(logger.Config{
	    Verbosity: 1,
	})

	log.Warn("File is not valid text")   // Always shown
	log.Info("Counting lines")           // verbosity >= 1
	log.Debug("Visiting entry")          // verbosity >= 2
	log.Trace("Read 4096 bytes")         // verbosity >= 3

Verbosity levels:

	0: Warn, Error (default)
	1: Info + level 0
	2: Debug + level 1
	3: Trace + level 2

Level 0 keeps stderr quiet so the converter and counter output on stdout
is all a script sees.

Structured logging:

	log.WithFields(logger.Fields{
	    "path":  "/src/main.go",
	    "lines": 42,
	}).Info("File counted")

Output (JSON, one entry per line):

	{"level":"info","ts":"2026-01-20T15:04:05.000Z","message":"File counted","path":"/src/main.go","lines":42}

NewNop returns a discarding Logger for tests and library callers that do
not care about diagnostics.
*/
package logger
