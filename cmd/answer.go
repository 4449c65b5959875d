package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hanjihoon73/lawquiz/internal/quizbank"
)

var answerCmd = &cobra.Command{
	Use:   "answer <pack-id> <question-id>",
	Short: "Submit an answer for one question",
	Long: `Submit an answer for one question of an in-progress pack.

Multiple-choice and true/false questions take --choices with choice ids:

  lawquiz answer 3 41 --choices 120

Fill-in-the-blank questions take one --blank per blank, as position=choice-id:

  lawquiz answer 3 42 --blank 1=130 --blank 2=134`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		packID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid pack id %q", args[0])
		}
		questionID, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid question id %q", args[1])
		}

		choices, _ := cmd.Flags().GetIntSlice("choices")
		blankArgs, _ := cmd.Flags().GetStringSlice("blank")

		sel := quizbank.Selection{Choices: choices}
		if len(blankArgs) > 0 {
			sel.Blanks = make(map[int]int, len(blankArgs))
			for _, b := range blankArgs {
				pos, choice, err := parseBlank(b)
				if err != nil {
					return err
				}
				sel.Blanks[pos] = choice
			}
		}
		if sel.Empty() {
			return fmt.Errorf("no answer given: pass --choices or --blank")
		}

		c, err := openCore(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		res, err := c.coord.RecordAnswer(cmd.Context(), c.userID, packID, questionID, sel)
		if err != nil {
			return err
		}

		if res.Correct {
			fmt.Println("Correct!")
		} else {
			fmt.Println("Incorrect.")
		}
		if res.Explanation != "" {
			fmt.Println(res.Explanation)
		}
		return nil
	},
}

// parseBlank splits a "position=choice-id" argument.
func parseBlank(s string) (pos, choice int, err error) {
	left, right, found := strings.Cut(s, "=")
	if !found {
		return 0, 0, fmt.Errorf("invalid --blank %q: expected position=choice-id", s)
	}
	if pos, err = strconv.Atoi(left); err != nil {
		return 0, 0, fmt.Errorf("invalid blank position %q", left)
	}
	if choice, err = strconv.Atoi(right); err != nil {
		return 0, 0, fmt.Errorf("invalid blank choice id %q", right)
	}
	return pos, choice, nil
}

func init() {
	answerCmd.Flags().IntSlice("choices", nil, "Selected choice ids")
	answerCmd.Flags().StringSlice("blank", nil, "Blank answer as position=choice-id (repeatable)")
}
