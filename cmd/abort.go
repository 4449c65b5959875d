package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var abortCmd = &cobra.Command{
	Use:   "abort <pack-id>",
	Short: "Abandon the in-progress session on a pack, discarding its answers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		packID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid pack id %q", args[0])
		}

		c, err := openCore(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		row, err := c.coord.Abort(cmd.Context(), c.userID, packID)
		if err != nil {
			return err
		}
		fmt.Printf("Pack %d is now %s.\n", row.QuizpackID, row.Status)
		return nil
	},
}
