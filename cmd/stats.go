package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <pack-id>",
	Short: "Show community statistics for a quizpack",
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

		data, err := c.stats.Get(cmd.Context(), packID)
		if err != nil {
			return err
		}
		if data == nil {
			fmt.Printf("No community stats for pack %d yet.\n", packID)
			return nil
		}

		fmt.Printf("Pack %d\n", data.QuizpackID)
		fmt.Printf("  Completions:     %d\n", data.TotalCompletions)
		fmt.Printf("  Avg correct:     %.1f%%\n", data.AverageCorrectRate)
		if data.RatingCount > 0 {
			fmt.Printf("  Rating:          %.1f/5 (%d ratings)\n", data.AverageRating, data.RatingCount)
		} else {
			fmt.Printf("  Rating:          no ratings yet\n")
		}
		return nil
	},
}

var rateCmd = &cobra.Command{
	Use:   "rate <pack-id> <stars>",
	Short: "Rate a quizpack from 1 to 5 stars",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		packID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid pack id %q", args[0])
		}
		rating, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid rating %q", args[1])
		}

		c, err := openCore(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		if err := c.coord.RatePack(cmd.Context(), packID, rating); err != nil {
			return err
		}
		fmt.Printf("Rated pack %d: %d stars.\n", packID, rating)
		return nil
	},
}
