package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var restartCmd = &cobra.Command{
	Use:   "restart <pack-id>",
	Short: "Retry a completed pack from the first question",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		packID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid pack id %q", args[0])
		}
		abortCurrent, _ := cmd.Flags().GetBool("abort-current")

		c, err := openCore(cmd)
		if err != nil {
			return err
		}
		defer c.Close()
		ctx := cmd.Context()

		decision, row, err := c.coord.Restart(ctx, c.userID, packID)
		if err != nil {
			return err
		}
		if !decision.Proceed {
			if !abortCurrent {
				return fmt.Errorf("pack %d is already in progress; finish it, or pass --abort-current to discard that session",
					decision.Blocked.QuizpackID)
			}
			if _, err := c.coord.AbortSession(ctx, decision.Blocked.ID); err != nil {
				return fmt.Errorf("abort pack %d: %w", decision.Blocked.QuizpackID, err)
			}
			fmt.Printf("Aborted session on pack %d.\n", decision.Blocked.QuizpackID)
			if _, row, err = c.coord.Restart(ctx, c.userID, packID); err != nil {
				return err
			}
		}

		fmt.Printf("Pack %d restarted: attempt %d, %d questions\n",
			row.QuizpackID, row.SessionNumber, row.TotalQuestionCount)
		return nil
	},
}

func init() {
	restartCmd.Flags().Bool("abort-current", false, "Abort any other in-progress pack before restarting")
}
