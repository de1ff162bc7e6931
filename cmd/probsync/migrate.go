package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/statustracker/probsync/internal/config"
	"github.com/statustracker/probsync/internal/importer"
	"github.com/statustracker/probsync/internal/roster"
	"github.com/statustracker/probsync/internal/storage"
)

var (
	peFile string
	ibFile string
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Import both problem catalogs into the database",
	Long: `Run the one-shot migration: build the expert name lookup from the
roster, import the PE catalog, import the IB catalog, then print a summary
and a per-source verification count.

Rows are upserted on (problem_id, environment): re-running against the
same files is idempotent apart from the updated_at timestamp. Rows without
an ID are skipped; rows that fail coercion are reported and skipped without
aborting the batch.`,
	Run: func(cmd *cobra.Command, args []string) {
		if !cmd.Flags().Changed("pe-file") {
			peFile = config.GetString("pe-file")
		}
		if !cmd.Flags().Changed("ib-file") {
			ibFile = config.GetString("ib-file")
		}

		if err := runMigrate(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	migrateCmd.Flags().StringVar(&peFile, "pe-file", config.DefaultPEFile, "path to the PE catalog workbook")
	migrateCmd.Flags().StringVar(&ibFile, "ib-file", config.DefaultIBFile, "path to the IB catalog workbook")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(ctx context.Context) error {
	bold := color.New(color.Bold).SprintFunc()
	banner := strings.Repeat("=", 60)

	fmt.Println(banner)
	fmt.Println(bold("Legacy Problem Import"))
	fmt.Printf("Cutoff Date: %s\n", config.GetString("cutoff-date"))
	fmt.Println(banner)

	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	experts, err := store.Experts(ctx)
	if err != nil {
		return err
	}
	res := roster.New(experts, roster.DefaultAliases())
	fmt.Printf("\nLoaded %d expert name mappings\n", res.Len())

	peResult, err := runCatalog(ctx, store, res, importer.PE(), peFile)
	if err != nil {
		return err
	}
	ibResult, err := runCatalog(ctx, store, res, importer.IB(), ibFile)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(banner)
	fmt.Println(bold("IMPORT COMPLETE"))
	fmt.Printf("PE Problems: %d\n", peResult.Imported)
	fmt.Printf("IB Problems: %d\n", ibResult.Imported)
	fmt.Printf("Total: %d\n", peResult.Imported+ibResult.Imported)
	fmt.Println(banner)

	counts, err := store.SourceCounts(ctx)
	if err != nil {
		return err
	}
	fmt.Println("\nDatabase Summary:")
	for _, c := range counts {
		fmt.Printf("  %s: %d problems\n", c.Source, c.Count)
	}

	return nil
}

func runCatalog(ctx context.Context, store storage.Store, res *roster.Resolver, m importer.Mapping, path string) (*importer.Result, error) {
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Printf("\n%s\n", cyan(fmt.Sprintf("=== Importing %s Problems from %s ===", m.Env, path)))

	result, err := importer.Run(ctx, store, res, m, path)
	if err != nil {
		return nil, err
	}

	fmt.Printf("Found %d rows\n", result.Rows)
	fmt.Printf("Imported: %d, Skipped: %d\n", result.Imported, result.Skipped)
	if len(result.Errors) > 0 {
		yellow := color.New(color.FgYellow).SprintFunc()
		fmt.Printf("%s\n", yellow(fmt.Sprintf("First %d errors:", min(5, len(result.Errors)))))
		for _, e := range result.Errors[:min(5, len(result.Errors))] {
			fmt.Printf("  %s\n", e)
		}
	}

	return result, nil
}
