package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/siyuan-infoblox/wiseimport/pkg/config"
	"github.com/siyuan-infoblox/wiseimport/pkg/document"
	"github.com/siyuan-infoblox/wiseimport/pkg/errors"
	"github.com/siyuan-infoblox/wiseimport/pkg/known"
	"github.com/siyuan-infoblox/wiseimport/pkg/locator"
)

func newLocateCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "locate FILE",
		Short: "Print the declaration block descriptor of FILE as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err)
			}
			desc, err := locator.Locate(document.NewBuffer(string(src)))
			if err != nil {
				return fmt.Errorf("%s: %w", errors.ErrMsgFailedToLocateBlock, err)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(desc)
		},
	}
}

func newOpenCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "open SYMBOL",
		Short: "Print the path of the file defining SYMBOL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			im, err := opts.newImporter(cmd, "")
			if err != nil {
				return err
			}
			target, err := im.OpenFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if target == "" {
				return fmt.Errorf("%s: %s", errors.ErrMsgFailedToSearch, args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), target)
			return nil
		},
	}
}

func newResolveCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve SYMBOL",
		Short: "Print the import path SYMBOL would be added with",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if _, importPath, ok := known.Lookup(cfg.Modules, args[0]); ok {
				fmt.Fprintln(cmd.OutOrStdout(), importPath)
				return nil
			}
			im, err := opts.newImporter(cmd, "")
			if err != nil {
				return err
			}
			candidate, _, err := im.Resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if candidate == nil {
				return fmt.Errorf(errors.InfoMsgCandidateNotFound, args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), candidate.ImportPath)
			return nil
		},
	}
}
