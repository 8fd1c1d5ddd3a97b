package commands

import (
	"github.com/spf13/cobra"
	"go.velt.ch/strap/internal/core/domain"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build [paths...]",
		Short: "Build the compiler, standard library, and tools",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Run(cmd.Context(), runOptions(cmd, domain.CommandLine{
				Kind:     domain.SubcommandBuild,
				Paths:    args,
				FailFast: true,
			}))
		},
	}
}

func (c *CLI) newTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test [paths...]",
		Short: "Run the test suites",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			failFast, _ := cmd.Flags().GetBool("fail-fast")
			return c.app.Run(cmd.Context(), runOptions(cmd, domain.CommandLine{
				Kind:     domain.SubcommandTest,
				Paths:    args,
				FailFast: failFast,
			}))
		},
	}
	cmd.Flags().Bool("fail-fast", false, "Abort at the first test failure instead of reporting all failures at the end")
	return cmd
}

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove build output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, _ := cmd.Flags().GetBool("all")
			return c.app.Run(cmd.Context(), runOptions(cmd, domain.CommandLine{
				Kind:     domain.SubcommandClean,
				CleanAll: all,
			}))
		},
	}
	cmd.Flags().Bool("all", false, "Also remove the download cache")
	return cmd
}

func (c *CLI) newFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format",
		Short: "Format the source tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			check, _ := cmd.Flags().GetBool("check")
			return c.app.Run(cmd.Context(), runOptions(cmd, domain.CommandLine{
				Kind:        domain.SubcommandFormat,
				FormatCheck: check,
			}))
		},
	}
	cmd.Flags().Bool("check", false, "Verify formatting without rewriting files")
	return cmd
}

func (c *CLI) newSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup [profile]",
		Short: "Write a starter configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile := ""
			if len(args) > 0 {
				profile = args[0]
			}
			return c.app.Run(cmd.Context(), runOptions(cmd, domain.CommandLine{
				Kind:         domain.SubcommandSetup,
				SetupProfile: profile,
			}))
		},
	}
}
