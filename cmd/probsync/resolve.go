package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/statustracker/probsync/internal/roster"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <name>...",
	Short: "Resolve expert names against the roster",
	Long: `Resolve one or more free-text names the way the importer would:
exact match, first-name match, then the alias table. Useful for checking
why a catalog cell ended up unassigned and whether the alias table needs a
new entry.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		store, err := openStore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = store.Close() }()

		experts, err := store.Experts(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		res := roster.New(experts, roster.DefaultAliases())

		byID := make(map[int]string, len(experts))
		for _, e := range experts {
			byID[e.ID] = e.Name
		}

		green := color.New(color.FgGreen).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		unresolved := 0
		for _, name := range args {
			if id, ok := res.Resolve(name); ok {
				fmt.Printf("%-24s -> %s (id %d)\n", name, green(byID[id]), id)
			} else {
				fmt.Printf("%-24s -> %s\n", name, yellow("unresolved"))
				unresolved++
			}
		}
		if unresolved > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
