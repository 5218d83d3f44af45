// Package commands implements the CLI commands for syncnm.
package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.trai.ch/syncnm/internal/app"
	"go.trai.ch/syncnm/internal/build"
	"go.trai.ch/syncnm/internal/core/domain"
)

const (
	flagVerbose   = "verbose"
	flagLogFormat = "log-format"
	flagCacheDir  = "cache-dir"
	flagTargetDir = "target-dir"
)

// CLI represents the command line interface for syncnm.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.Options) (app.RunResult, error)
	Install(ctx context.Context, opts app.Options) (app.RunResult, error)
	Uninstall(ctx context.Context, opts app.Options) error
	Prune(ctx context.Context, opts app.Options) ([]domain.Hash, error)
	Status(ctx context.Context, opts app.Options) (app.Status, error)
	Watch(ctx context.Context, opts app.Options) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "syncnm",
		Short:         "Sync node_modules when your local dependency graph changes",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().BoolP(flagVerbose, "v", false, "Log debug output")
	rootCmd.PersistentFlags().String(flagLogFormat, "", "Log format: auto, pretty or json")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newUninstallCmd())
	rootCmd.AddCommand(c.newPruneCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// addProjectFlags registers the cache location flags shared by project commands.
func addProjectFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(flagCacheDir, "c", "", "Cache directory (defaults to the user cache directory)")
	cmd.Flags().String(flagTargetDir, "", "Dependency directory to cache (defaults to node_modules)")
}

// options builds app.Options from the optional base_dir argument and flags.
// Directory flags are resolved against the working directory.
func options(cmd *cobra.Command, args []string) (app.Options, error) {
	opts := app.Options{BaseDir: "."}
	if len(args) > 0 {
		opts.BaseDir = args[0]
	}

	verbose, _ := cmd.Flags().GetBool(flagVerbose)
	logFormat, _ := cmd.Flags().GetString(flagLogFormat)
	opts.Verbose = verbose
	opts.LogFormat = domain.LogFormat(logFormat)

	for name, dst := range map[string]*string{flagCacheDir: &opts.CacheDir, flagTargetDir: &opts.TargetDir} {
		value, err := cmd.Flags().GetString(name)
		if err != nil || value == "" {
			continue
		}
		abs, err := filepath.Abs(value)
		if err != nil {
			return app.Options{}, err
		}
		*dst = abs
	}

	return opts, nil
}
