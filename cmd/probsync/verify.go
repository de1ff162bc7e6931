package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Print problem counts grouped by source tag",
	Long: `Run the post-migration verification query on its own: how many
problems each source tag accounts for. Migrated rows carry the
legacy_sheets tag.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		store, err := openStore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = store.Close() }()

		counts, err := store.SourceCounts(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if len(counts) == 0 {
			fmt.Println("No problems in database")
			return
		}
		fmt.Println("Database Summary:")
		for _, c := range counts {
			fmt.Printf("  %s: %d problems\n", c.Source, c.Count)
		}
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
