package main

import (
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"

	"github.com/statustracker/probsync/internal/config"
	"github.com/statustracker/probsync/internal/storage/sqlstore"
)

var dbURL string

var rootCmd = &cobra.Command{
	Use:     "probsync",
	Short:   "probsync - legacy problem catalog migration",
	Long:    `Migrates the spreadsheet problem catalogs (PE and IB environments) into the status-tracker database, resolving human-entered expert names against the canonical roster.`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Priority: flags > env/config file > defaults
		if !cmd.Flags().Changed("db") {
			dbURL = config.GetString("database-url")
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbURL, "db", config.DefaultDatabaseURL, "database connection string")
}

// openStore opens the one connection a command uses for its whole run.
// Callers must Close it on every exit path.
func openStore() (*sqlstore.SQLStore, error) {
	return sqlstore.New("pgx", dbURL)
}

func main() {
	if err := config.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
