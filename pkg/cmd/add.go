package cmd

import (
	"fmt"
	"os"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"github.com/spf13/cobra"

	"github.com/siyuan-infoblox/wiseimport/pkg/document"
	"github.com/siyuan-infoblox/wiseimport/pkg/errors"
	"github.com/siyuan-infoblox/wiseimport/pkg/importer"
	"github.com/siyuan-infoblox/wiseimport/pkg/utils"
)

type cursor struct {
	line, col       int
	endLine, endCol int
}

func newAddCommand(opts *options) *cobra.Command {
	var at cursor
	cmd := &cobra.Command{
		Use:   "add FILE [SYMBOL]",
		Short: "Add a dependency to the declaration block of FILE",
		Long: `Add SYMBOL to the declaration block of FILE.

When SYMBOL is omitted, it is taken from the cursor given by --line/--col,
or from the selection --line/--col to --end-line/--end-col. Lines and columns
are 1-based.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, opts, at, args)
		},
	}
	cmd.Flags().IntVar(&at.line, "line", 0, "Cursor line (1-based)")
	cmd.Flags().IntVar(&at.col, "col", 0, "Cursor column (1-based)")
	cmd.Flags().IntVar(&at.endLine, "end-line", 0, "Selection end line (1-based, defaults to --line)")
	cmd.Flags().IntVar(&at.endCol, "end-col", 0, "Selection end column (1-based, defaults to --col)")
	return cmd
}

// selection converts the 1-based flags to an editor selection.
func (c cursor) selection() importer.Selection {
	start := document.Position{Line: c.line - 1, Column: c.col - 1}
	end := start
	if c.endLine > 0 {
		end.Line = c.endLine - 1
	}
	if c.endCol > 0 {
		end.Column = c.endCol - 1
	}
	return importer.Selection{Start: start, End: end}
}

func runAdd(cmd *cobra.Command, opts *options, at cursor, args []string) error {
	path := args[0]
	if !utils.IsModuleFile(path) {
		return fmt.Errorf("%s: %s is not a .js file", errors.ErrMsgFailedToReadFile, path)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err)
	}
	buf := document.NewBuffer(string(src))

	var symbol string
	if len(args) == 2 {
		symbol = args[1]
	} else {
		word, ok := importer.WordAt(buf, at.selection())
		if at.line <= 0 || !ok {
			return fmt.Errorf("%s", errors.ErrMsgNoWordAtCursor)
		}
		symbol = word
	}

	im, err := opts.newImporter(cmd, path)
	if err != nil {
		return err
	}
	outcome, err := im.AddDependency(cmd.Context(), buf, buf, symbol)
	if err != nil {
		return err
	}
	switch outcome {
	case importer.Added:
	case importer.AlreadyImported:
		// Stdout mode always emits the document.
		if !opts.inPlace && !opts.diff {
			fmt.Fprint(cmd.OutOrStdout(), buf.String())
		}
		return nil
	default:
		return fmt.Errorf(errors.ErrMsgOutcome, outcome)
	}

	updated := buf.String()
	switch {
	case opts.inPlace:
		if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
			return fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err)
		}
		if opts.verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), errors.InfoMsgWrote+"\n", path)
		}
	case opts.diff:
		edits := myers.ComputeEdits(span.URIFromPath(path), string(src), updated)
		fmt.Fprint(cmd.OutOrStdout(), gotextdiff.ToUnified(path, path, string(src), edits))
	default:
		fmt.Fprint(cmd.OutOrStdout(), updated)
	}
	return nil
}
