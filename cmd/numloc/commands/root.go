/*
Package commands implements the CLI command structure for numloc: the
number converters (hex, bin, dec), the line counter (loc) and version.
*/
package commands

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/sonemaro/numloc/cmd/numloc/app"
	"github.com/sonemaro/numloc/internal/config"
	"github.com/sonemaro/numloc/internal/version"
)

// Options holds command-line options that apply to all commands
type Options struct {
	Config     *config.Config
	Verbosity  int
	NoProgress bool
	NoColor    bool

	// fs and noSignals are overridden by tests
	fs        afero.Fs
	noSignals bool
}

// NewRootCommand creates the root command for the application
func NewRootCommand() *cobra.Command {
	return newRootCommand(&Options{fs: afero.NewOsFs()})
}

func newRootCommand(opts *Options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "numloc [command]",
		Short: "Number base converter and line counter",
		Long: `numloc v` + version.Version + `
========================================

Converts arbitrary-precision unsigned integers between decimal, hexadecimal
and binary, and counts non-blank lines in a file or directory tree.

Literals take an optional 0x (hex) or 0b (binary) prefix; anything else is
read as decimal.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeCommand(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.Verbosity, "verbose", "v",
		"verbose logging on stderr (repeat for more)")
	rootCmd.PersistentFlags().BoolVar(&opts.NoProgress, "no-progress", false,
		"disable the progress line")
	rootCmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false,
		"disable colored output")

	rootCmd.AddCommand(newConvertCommands(opts)...)
	rootCmd.AddCommand(
		newLocCommand(opts),
		newVersionCommand(opts),
	)

	return rootCmd
}

// initializeCommand loads the environment configuration and applies the
// global flags that were set explicitly
func initializeCommand(cmd *cobra.Command, opts *Options) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Verbose = min(opts.Verbosity, config.MaxVerbosity)
	}
	if flags.Changed("no-progress") {
		cfg.NoProgress = opts.NoProgress
	}
	if flags.Changed("no-color") {
		cfg.NoColor = opts.NoColor
	}

	opts.Config = &cfg
	return nil
}

// newApp builds the application with the command's output streams
func newApp(cmd *cobra.Command, opts *Options) *app.App {
	return app.New(opts.Config, app.Options{
		Fs:        opts.fs,
		Stdout:    cmd.OutOrStdout(),
		Stderr:    cmd.ErrOrStderr(),
		NoSignals: opts.noSignals,
	})
}

// writeLine prints s followed by a newline
func writeLine(w io.Writer, s string) error {
	_, err := fmt.Fprintln(w, s)
	return err
}
