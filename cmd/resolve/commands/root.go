// Package commands implements the CLI commands for the resolve tool.
package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/forgepm/resolve/internal/app"
	"github.com/forgepm/resolve/internal/build"
)

// CLI represents the command line interface for resolve.
type CLI struct {
	orchestrator *app.Orchestrator
	rootCmd      *cobra.Command
}

// New creates a new CLI instance driving the given orchestrator.
func New(orchestrator *app.Orchestrator) *CLI {
	rootCmd := &cobra.Command{
		Use:           "resolve",
		Short:         "Workspace dependency resolution for source-based packages",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.PersistentFlags().StringArrayP("root", "r", []string{"."}, "Path to a root package (repeatable)")

	c := &CLI{
		orchestrator: orchestrator,
		rootCmd:      rootCmd,
	}

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newUpdateCmd())
	rootCmd.AddCommand(c.newResolveFromLockCmd())
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

func rootPaths(cmd *cobra.Command) ([]string, error) {
	return cmd.Flags().GetStringArray("root")
}
