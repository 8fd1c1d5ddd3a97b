// Package commands implements the CLI commands for the strap bootstrap
// orchestrator.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.velt.ch/strap/internal/app"
	"go.velt.ch/strap/internal/core/domain"
)

// CLI represents the command line interface for strap.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "strap",
		Short:         "Bootstrap orchestrator for the velt toolchain",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "strap.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().Bool("dry-run", false, "Print what would run without touching anything")
	rootCmd.PersistentFlags().IntP("jobs", "j", 0, "Parallel job count (0 probes the CPU count)")
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase verbosity")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newTestCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newFormatCmd())
	rootCmd.AddCommand(c.newSetupCmd())
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

// SetOut redirects command output. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}

// runOptions collects the persistent flags into RunOptions for a command
// line.
func runOptions(cmd *cobra.Command, cl domain.CommandLine) app.RunOptions {
	configPath, _ := cmd.Flags().GetString("config")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	jobs, _ := cmd.Flags().GetInt("jobs")
	verbosity, _ := cmd.Flags().GetCount("verbose")

	return app.RunOptions{
		ConfigPath: configPath,
		Cmd:        cl,
		DryRun:     dryRun,
		Jobs:       jobs,
		Verbosity:  verbosity,
	}
}
