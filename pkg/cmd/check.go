package cmd

import (
	"github.com/spf13/cobra"

	"github.com/siyuan-infoblox/wiseimport/pkg/checker"
)

func newCheckCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check PATH",
		Short: "Report JavaScript files whose declaration block cannot be edited",
		Long: `check runs the block locator over a file or over every .js file below a
directory (skipping node_modules, dist, vendor and hidden directories) and
reports blocks that are malformed or whose dependency and parameter counts
differ. It exits with an error when any such block is found.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := checker.New(checker.CheckerConfig{
				Out:     cmd.OutOrStdout(),
				Verbose: opts.verbose,
			})
			return c.ProcessPath(args[0])
		},
	}
}
