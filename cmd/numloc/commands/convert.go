package commands

import (
	"github.com/spf13/cobra"

	"github.com/sonemaro/numloc/pkg/radix"
)

var convertCommands = []struct {
	base  radix.Base
	short string
}{
	{radix.Hex, "Print the upper-case hexadecimal form of a number"},
	{radix.Bin, "Print the binary form of a number"},
	{radix.Dec, "Print the decimal form of a number"},
}

// newConvertCommands creates one command per output base
func newConvertCommands(opts *Options) []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(convertCommands))
	for _, c := range convertCommands {
		base := c.base
		cmds = append(cmds, &cobra.Command{
			Use:   base.String() + " <input>",
			Short: c.short,
			Example: "  numloc " + base.String() + " 255\n" +
				"  numloc " + base.String() + " 0xff\n" +
				"  numloc " + base.String() + " 0b11111111",
			Args: cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				application := newApp(cmd, opts)
				defer application.Shutdown()

				return application.Convert(args[0], base)
			},
		})
	}
	return cmds
}
