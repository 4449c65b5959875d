package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hanjihoon73/lawquiz/internal/store"
)

var startCmd = &cobra.Command{
	Use:   "start <pack-id>",
	Short: "Start or resume a quizpack session",
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

		decision, err := c.coord.BeginQuizpack(ctx, c.userID, packID)
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
		}

		row, err := c.coord.Initialize(ctx, c.userID, packID)
		if err != nil {
			return err
		}

		if row.Status == store.StatusCompleted {
			fmt.Printf("Pack %d is already completed. Use 'lawquiz restart %d' to retry it.\n",
				row.QuizpackID, row.QuizpackID)
			return nil
		}
		fmt.Printf("Pack %d in progress: question %d of %d (attempt %d)\n",
			row.QuizpackID, row.CurrentQuestionOrder+1, row.TotalQuestionCount, row.SessionNumber)
		return nil
	},
}

func init() {
	startCmd.Flags().Bool("abort-current", false, "Abort any other in-progress pack before starting")
}
