package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the recipe metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := renderer(cmd)
			if err != nil {
				return err
			}
			return r.Recipe(c.app.Info())
		},
	}
	formatFlag(cmd)
	return cmd
}
