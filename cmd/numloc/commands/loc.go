package commands

import (
	"github.com/spf13/cobra"
)

type locOptions struct {
	*Options
	exclude     []string
	allowHidden bool
	strict      bool
	output      string
	total       bool
}

func newLocCommand(opts *Options) *cobra.Command {
	lo := &locOptions{
		Options: opts,
	}

	cmd := &cobra.Command{
		Use:   "loc <path>",
		Short: "Count non-blank lines in a file or directory tree",
		Long: `Counts lines that are non-empty after trimming whitespace. A file is
counted on its own; a directory is walked recursively, skipping hidden
entries and excluded paths. Each counted file is printed as

  <count>	 :: <path>

Files that are not valid UTF-8 text are skipped during a directory walk
unless --strict is given. A single file argument that is not text is
always an error.`,
		Example: `  numloc loc main.go
  numloc loc . --exclude vendor --exclude testdata
  numloc loc ~/src --allow-hidden --total
  numloc loc . -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoc(cmd, args[0], lo)
		},
	}

	cmd.Flags().StringArrayVarP(&lo.exclude, "exclude", "e", nil,
		"path to skip, relative to <path> or as given (repeatable)")
	cmd.Flags().BoolVar(&lo.allowHidden, "allow-hidden", false,
		"include entries whose name starts with a dot")
	cmd.Flags().BoolVar(&lo.strict, "strict", false,
		"abort on the first file that cannot be read as text")
	cmd.Flags().StringVarP(&lo.output, "output", "o", "plain",
		"output format: plain|json|yaml")
	cmd.Flags().BoolVar(&lo.total, "total", false,
		"print a total line (plain) or statistics (json, yaml)")

	return cmd
}

func runLoc(cmd *cobra.Command, path string, opts *locOptions) error {
	cfg := opts.Config
	flags := cmd.Flags()

	if flags.Changed("exclude") {
		cfg.Exclude = append(cfg.Exclude, opts.exclude...)
	}
	if flags.Changed("allow-hidden") {
		cfg.AllowHidden = opts.allowHidden
	}
	if flags.Changed("strict") {
		cfg.Strict = opts.strict
	}
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("total") {
		cfg.Total = opts.total
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	application := newApp(cmd, opts.Options)
	defer application.Shutdown()

	return application.CountLines(path)
}
