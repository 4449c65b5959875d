package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hanjihoon73/lawquiz/internal/packfile"
)

var seedCmd = &cobra.Command{
	Use:   "seed <file.json>",
	Short: "Import quizpacks from a pack file into the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := packfile.LoadFile(args[0])
		if err != nil {
			return fmt.Errorf("load pack file: %w", err)
		}

		c, err := openCore(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		ids, err := packfile.Import(cmd.Context(), c.store.SeedRepo(), f)
		if err != nil {
			return fmt.Errorf("import packs: %w", err)
		}

		fmt.Printf("Imported %d pack(s):", len(ids))
		for _, id := range ids {
			fmt.Printf(" %d", id)
		}
		fmt.Println()
		return nil
	},
}
