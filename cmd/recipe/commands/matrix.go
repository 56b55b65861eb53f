package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newMatrixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix [profiles...]",
		Short: "Resolve the build plans of several profiles",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}
			r, err := renderer(cmd)
			if err != nil {
				return err
			}

			plans, err := c.app.Matrix(cmd.Context(), c.selection(cmd, args))
			if err != nil {
				return err
			}
			return r.Plans(entries(plans))
		},
	}
	selectionFlags(cmd)
	formatFlag(cmd)
	return cmd
}
