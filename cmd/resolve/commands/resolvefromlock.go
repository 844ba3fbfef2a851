package commands

import (
	"github.com/spf13/cobra"

	"github.com/forgepm/resolve/internal/app"
)

func (c *CLI) newResolveFromLockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve-from-lock",
		Short: "Resolve strictly from the lock file, failing if it is stale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			roots, err := rootPaths(cmd)
			if err != nil {
				return err
			}
			_, _, err = c.orchestrator.Resolve(cmd.Context(), roots, app.LockFile())
			if err != nil {
				return err
			}
			_, _ = cmd.OutOrStdout().Write([]byte("dependencies up to date\n"))
			return nil
		},
	}
}
