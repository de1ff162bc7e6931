package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Create the experts and problems tables if missing",
	Long: `Apply the embedded schema. Safe to re-run: every statement is
CREATE TABLE IF NOT EXISTS. Intended for standing up a scratch database;
the production tables already exist.`,
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openStore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = store.Close() }()

		if err := store.EnsureSchema(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Schema applied")
	},
}

func init() {
	rootCmd.AddCommand(initDBCmd)
}
