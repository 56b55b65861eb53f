package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/recipe/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove stored build records and, optionally, build folders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			buildDirs, _ := cmd.Flags().GetBool("build")

			return c.app.Clean(cmd.Context(), app.CleanOptions{
				ConfigPath: c.configPath,
				Build:      buildDirs,
			})
		},
	}

	cmd.Flags().BoolP("build", "b", false, "Also remove the build folders")

	return cmd
}
