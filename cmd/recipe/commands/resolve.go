package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the build plan for one profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := renderer(cmd)
			if err != nil {
				return err
			}

			var profiles []string
			if profile, _ := cmd.Flags().GetString("profile"); profile != "" {
				profiles = []string{profile}
			}

			plans, err := c.app.Resolve(cmd.Context(), c.selection(cmd, profiles))
			if err != nil {
				return err
			}
			if len(plans) != 1 {
				return r.Plans(entries(plans))
			}
			return r.Plan(entries(plans)[0])
		},
	}
	cmd.Flags().StringP("profile", "p", "", "Profile name from recipe.yaml or a profile file (default: host platform)")
	selectionFlags(cmd)
	formatFlag(cmd)
	return cmd
}
