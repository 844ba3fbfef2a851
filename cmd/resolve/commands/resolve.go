package commands

import (
	"github.com/spf13/cobra"

	"github.com/forgepm/resolve/internal/app"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve dependencies, reusing the lock file when it is still valid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			roots, err := rootPaths(cmd)
			if err != nil {
				return err
			}
			updateBranches, err := cmd.Flags().GetBool("update-branches")
			if err != nil {
				return err
			}
			force, err := cmd.Flags().GetBool("force")
			if err != nil {
				return err
			}

			strategy := app.BestEffort(updateBranches)
			if force {
				strategy = app.Update(true, updateBranches)
			}

			changes, _, err := c.orchestrator.Resolve(cmd.Context(), roots, strategy)
			if err != nil {
				return err
			}
			printChanges(cmd.OutOrStdout(), changes)
			return nil
		},
	}
	cmd.Flags().Bool("update-branches", false, "Also refresh packages pinned to a branch")
	cmd.Flags().Bool("force", false, "Force a full re-resolve even if the lock file appears valid")
	return cmd
}
