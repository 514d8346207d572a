package commands

import (
	"github.com/spf13/cobra"

	"github.com/sonemaro/numloc/internal/version"
)

func newVersionCommand(opts *Options) *cobra.Command {
	var showFull bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showFull {
				return writeLine(cmd.OutOrStdout(), version.FullVersion())
			}
			return writeLine(cmd.OutOrStdout(), version.Version)
		},
	}

	cmd.Flags().BoolVarP(&showFull, "full", "f", false,
		"show full version information")

	return cmd
}
