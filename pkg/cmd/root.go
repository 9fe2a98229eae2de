package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/siyuan-infoblox/wiseimport/pkg/config"
	"github.com/siyuan-infoblox/wiseimport/pkg/errors"
	"github.com/siyuan-infoblox/wiseimport/pkg/importer"
	"github.com/siyuan-infoblox/wiseimport/pkg/search"
	"github.com/siyuan-infoblox/wiseimport/pkg/utils"
	"github.com/siyuan-infoblox/wiseimport/pkg/version"
)

const (
	UseDescription   = "wiseimport [command]"
	ShortDescription = "Wise import - add dependencies to sap.ui.define modules"
	LongDescription  = `wiseimport adds a dependency to a JavaScript module.

It locates the module's declaration block, either

  sap.ui.define([ 'path/to/Dep' ], function (Dep) { ... })

or a run of "import Dep from 'path/to/Dep'" lines, finds the file defining
the symbol in the workspace and inserts the import path and the parameter
name, keeping the existing indentation and comma style.

Workspace paths are turned into import paths with an ordered list of layout
markers (e.g. /webapp/ -> sap/bi/webi/). Markers, hard-coded modules and
search exclusions can be overridden with a YAML file given by --config.`

	EnvRoot   = "WISEIMPORT_ROOT"
	EnvConfig = "WISEIMPORT_CONFIG"
)

type options struct {
	root        string
	configPath  string
	inPlace     bool
	diff        bool
	verbose     bool
	showVersion bool
	info        version.Info
}

// NewRootCommand builds the command tree. Flag defaults are read from the
// environment, which may be populated from a .env file.
func NewRootCommand(info version.Info) *cobra.Command {
	opts := &options{info: info}

	rootCmd := &cobra.Command{
		Use:          UseDescription,
		Short:        ShortDescription,
		Long:         LongDescription,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.showVersion {
				fmt.Fprintln(cmd.OutOrStdout(), opts.info.String())
				return nil
			}
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.root, "root", os.Getenv(EnvRoot), "Workspace root to search (default: nearest directory with ui5.yaml, package.json or .git)")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", os.Getenv(EnvConfig), "YAML file with layout markers, hard-coded modules and excludes")
	rootCmd.PersistentFlags().BoolVar(&opts.inPlace, "in-place", false, "Modify the file in place instead of printing to stdout")
	rootCmd.PersistentFlags().BoolVar(&opts.diff, "diff", false, "Print a unified diff instead of the modified file")
	rootCmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Print progress information to stderr")
	rootCmd.Flags().BoolVarP(&opts.showVersion, "version", "v", false, "Show version information")

	rootCmd.AddCommand(
		newAddCommand(opts),
		newCheckCommand(opts),
		newLocateCommand(opts),
		newOpenCommand(opts),
		newResolveCommand(opts),
	)
	return rootCmd
}

// newImporter wires an importer for a workspace. filePath, when set, is used
// to infer the workspace root.
func (o *options) newImporter(cmd *cobra.Command, filePath string) (*importer.Importer, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	root, err := o.workspaceRoot(filePath)
	if err != nil {
		return nil, err
	}

	var log io.Writer
	if o.verbose {
		log = cmd.ErrOrStderr()
		fmt.Fprintf(log, errors.InfoMsgWorkspaceRoot+"\n", root)
	}

	return importer.New(importer.Config{
		Tables: cfg,
		Finder: search.NewDirFinder(root),
		Notifier: importer.NotifierFunc(func(message string) {
			fmt.Fprintln(cmd.ErrOrStderr(), message)
		}),
		Log: log,
	}), nil
}

func (o *options) workspaceRoot(filePath string) (string, error) {
	root := o.root
	if root == "" && filePath != "" {
		root = utils.GetWorkspaceRoot(filePath)
	}
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errors.ErrMsgFailedToResolveRoot, err)
	}
	isDir, err := utils.IsDirectory(abs)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errors.ErrMsgFailedToCheckPath, err)
	}
	if !isDir {
		return "", fmt.Errorf("%s: %s is not a directory", errors.ErrMsgFailedToResolveRoot, abs)
	}
	return abs, nil
}

// Execute loads .env from the working directory and runs the root command.
func Execute(info version.Info) error {
	loadEnv()
	return NewRootCommand(info).Execute()
}

// loadEnv reads the given env files, .env when none are given. Variables
// already set in the environment win, and a missing file is not an error.
func loadEnv(files ...string) {
	_ = godotenv.Load(files...)
}
