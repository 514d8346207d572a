// Package config provides configuration management for numloc. Values come
// from NUMLOC_* environment variables through viper; command-line flags
// override them after loading.
//
// # Environment Variables
//
//	NUMLOC_EXCLUDE       Comma-separated paths pruned from loc traversal
//	NUMLOC_ALLOW_HIDDEN  Include dot-entries (true/false)
//	NUMLOC_STRICT        Abort on the first unreadable file (true/false)
//	NUMLOC_OUTPUT        loc output format: plain|json|yaml
//	NUMLOC_TOTAL         Append a total line to plain output (true/false)
//	NUMLOC_NO_PROGRESS   Disable the progress status line (true/false)
//	NUMLOC_NO_COLOR      Disable colored output (true/false)
//	NUMLOC_VERBOSE       Verbosity: a number, or a run of 'v's
//
// # Defaults
//
//   - Output:      "plain"
//   - Exclude:     none
//   - AllowHidden: false
//   - Strict:      false (skip unreadable files and continue)
//   - Verbose:     0
//
// # Validation
//
// Load rejects unknown output formats, negative verbosity and empty
// exclude entries:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    // invalid output format "xml": must be one of [plain json yaml]
//	    return err
//	}
package config
