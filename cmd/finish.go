package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var finishCmd = &cobra.Command{
	Use:   "finish <pack-id>",
	Short: "Complete an in-progress pack and unlock the next one",
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
		ctx := cmd.Context()

		row, err := c.coord.CompleteQuizpack(ctx, c.userID, packID)
		if err != nil {
			return err
		}

		rate := 0.0
		if row.CorrectRate != nil {
			rate = *row.CorrectRate
		}
		fmt.Printf("Pack %d completed: %d/%d correct (%.1f%%)\n",
			row.QuizpackID, row.CorrectCount, row.TotalQuestionCount, rate)

		nextID, ok, err := c.coord.UnlockNext(ctx, c.userID, packID)
		if err != nil {
			return fmt.Errorf("unlock next pack: %w", err)
		}
		if ok {
			fmt.Printf("Pack %d unlocked.\n", nextID)
		} else {
			fmt.Println("That was the last pack in the catalog. Well done!")
		}
		return nil
	},
}
