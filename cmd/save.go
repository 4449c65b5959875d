package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save <pack-id> <question-order>",
	Short: "Save your position in an in-progress pack",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		packID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid pack id %q", args[0])
		}
		cursor, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid question order %q", args[1])
		}

		c, err := openCore(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		row, err := c.coord.SaveProgress(cmd.Context(), c.userID, packID, cursor)
		if err != nil {
			return err
		}

		fmt.Printf("Saved: pack %d at question %d of %d, %d solved (%d correct, %d incorrect)\n",
			row.QuizpackID, row.CurrentQuestionOrder, row.TotalQuestionCount,
			row.SolvedCount, row.CorrectCount, row.IncorrectCount)
		return nil
	},
}
