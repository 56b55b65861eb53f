package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newOptionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the recipe options with their domains and defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := renderer(cmd)
			if err != nil {
				return err
			}
			return r.Options(c.app.Options())
		},
	}
	formatFlag(cmd)
	return cmd
}
