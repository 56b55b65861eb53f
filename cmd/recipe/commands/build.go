package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/recipe/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [profiles...]",
		Short: "Configure and compile minimodem for the given profiles",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")

			outcomes, err := c.app.Build(cmd.Context(), c.selection(cmd, args), app.BuildOptions{
				Force: force,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, o := range outcomes {
				status := "built"
				if o.Skipped {
					status = "up to date"
				}
				_, _ = fmt.Fprintf(out, "%s: %s (%s)\n", o.Profile, status, o.BuildFolder)
			}
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "Rebuild even when the plan is unchanged")
	selectionFlags(cmd)
	return cmd
}
