package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var packsCmd = &cobra.Command{
	Use:   "packs",
	Short: "List quizpacks in catalog order with your progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCore(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		rows, err := c.view.Overview(cmd.Context(), c.userID)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		if len(rows) == 0 {
			fmt.Println("No quizpacks installed. Run 'lawquiz seed <file>' first.")
			return nil
		}

		fmt.Printf("%3s  %4s  %-36s  %-11s  %9s  %7s  %6s\n",
			"#", "Pack", "Keywords", "Status", "Progress", "Rate", "Stars")
		fmt.Println(strings.Repeat("─", 90))

		for _, r := range rows {
			keywords := truncate(r.Keywords, 36)
			rate := "-"
			if r.CorrectRate != nil {
				rate = fmt.Sprintf("%.1f%%", *r.CorrectRate)
			}
			stars := "-"
			if r.AverageRating > 0 {
				stars = fmt.Sprintf("%.1f", r.AverageRating)
			}
			fmt.Printf("%3d  %4d  %-36s  %-11s  %4d/%-4d  %7s  %6s\n",
				r.CatalogOrder, r.QuizpackID, keywords, r.Status,
				r.SolvedCount, r.TotalCount, rate, stars)
		}
		return nil
	},
}

// truncate shortens s to at most max runes, ellipsizing longer values.
// Keywords are Korean, so cutting on bytes would split a character.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
