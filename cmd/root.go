// Package cmd wires the huddle command tree
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/huddle/internal/app"
	"github.com/thenoetrevino/huddle/internal/cli"
	"github.com/thenoetrevino/huddle/internal/cli/member"
	"github.com/thenoetrevino/huddle/internal/cli/project"
	"github.com/thenoetrevino/huddle/internal/cli/report"
	"github.com/thenoetrevino/huddle/internal/launcher"
)

// NewRootCmd builds the huddle command tree on top of the configured opener
func NewRootCmd(configured cli.Opener) *cobra.Command {
	var ephemeral bool

	// --ephemeral swaps the configured storage for memory at run time
	open := func(ctx context.Context, opts ...app.Option) (*cli.CLI, error) {
		if ephemeral {
			return cli.NewEphemeralCLI(ctx, opts...)
		}
		return configured(ctx, opts...)
	}

	rootCmd := &cobra.Command{
		Use:   "huddle",
		Short: "Huddle - a terminal dashboard for projects and the team behind them",
		Long: `Huddle tracks projects, the team members assigned to them and the
statistics that follow. Run without a command to open the dashboard.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch(cmd.Context(), open)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep all changes in memory for this run")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return cli.Usage("%v", err)
	})

	rootCmd.AddCommand(project.ProjectCmd(open))
	rootCmd.AddCommand(member.MemberCmd(open))
	rootCmd.AddCommand(report.StatsCmd(open))
	rootCmd.AddCommand(report.ProductivityCmd(open))
	rootCmd.AddCommand(report.MetricsCmd(open))
	rootCmd.AddCommand(tuiCmd(open))

	return rootCmd
}

func tuiCmd(open cli.Opener) *cobra.Command {
	return &cobra.Command{
		Use:     "tui",
		Aliases: []string{"dashboard"},
		Short:   "Open the interactive dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch(cmd.Context(), open)
		},
	}
}

// Execute runs huddle against the configured storage
func Execute(ctx context.Context) error {
	return NewRootCmd(cli.NewCLI).ExecuteContext(ctx)
}
