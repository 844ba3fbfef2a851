package commands

import (
	"github.com/spf13/cobra"

	"github.com/forgepm/resolve/internal/core/domain"
)

func (c *CLI) newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [packages...]",
		Short: "Recompute the dependency graph and rewrite the lock file",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			roots, err := rootPaths(cmd)
			if err != nil {
				return err
			}
			dryRun, err := cmd.Flags().GetBool("dry-run")
			if err != nil {
				return err
			}
			updateBranches, err := cmd.Flags().GetBool("update-branches")
			if err != nil {
				return err
			}

			packages := make([]domain.PackageIdentity, 0, len(args))
			for _, a := range args {
				packages = append(packages, domain.NewPackageIdentity(a))
			}

			changes, err := c.orchestrator.Update(cmd.Context(), roots, packages, dryRun, updateBranches)
			if err != nil {
				return err
			}
			printChanges(cmd.OutOrStdout(), changes)
			return nil
		},
	}
	cmd.Flags().Bool("dry-run", false, "Compute the update without writing checkouts or the lock file")
	cmd.Flags().Bool("update-branches", false, "Also refresh packages pinned to a branch")
	return cmd
}
