// Package importer streams one catalog worksheet into the problems table.
// Both environments run through the same routine; the per-environment
// differences live entirely in the Mapping.
package importer

import (
	"context"
	"fmt"
	"strings"

	"github.com/statustracker/probsync/internal/roster"
	"github.com/statustracker/probsync/internal/sheet"
	"github.com/statustracker/probsync/internal/storage"
	"github.com/statustracker/probsync/internal/types"
)

// Result contains statistics about one catalog import.
type Result struct {
	Environment types.Environment
	Rows        int      // data rows found in the worksheet
	Imported    int      // rows upserted into the batch
	Skipped     int      // rows without an ID plus rows that errored
	Errors      []string // "Row N: message" per failed row
}

// Run imports one catalog file. Rows with a blank ID are skipped silently;
// rows that fail coercion or persistence are recorded in Result.Errors and
// skipped, and the batch keeps going. All surviving rows share one commit
// at the end. Failures outside the row loop (missing file, missing sheet,
// commit) abort the run and the batch is rolled back.
func Run(ctx context.Context, store storage.Store, res *roster.Resolver, m Mapping, path string) (*Result, error) {
	tbl, err := sheet.Open(path, m.Sheet)
	if err != nil {
		return nil, err
	}

	result := &Result{Environment: m.Env, Rows: tbl.Len()}

	batch, err := store.BeginImport(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = batch.Rollback() }()

	for i := 0; i < tbl.Len(); i++ {
		row := tbl.Row(i)

		// No ID means an empty or decorative row, not an error.
		id := strings.TrimSpace(row.Value(m.IDColumn))
		if sheet.Blank(id) {
			result.Skipped++
			continue
		}

		p := &types.Problem{
			ProblemID:   id,
			Environment: m.Env,
			Source:      types.SourceLegacySheets,
		}

		if err := applyColumns(p, row, m, res); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i, err))
			result.Skipped++
			continue
		}

		if err := batch.UpsertProblem(ctx, p); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i, err))
			result.Skipped++
			continue
		}
		result.Imported++
	}

	if err := batch.Commit(); err != nil {
		return result, err
	}
	return result, nil
}

func applyColumns(p *types.Problem, row sheet.Row, m Mapping, res *roster.Resolver) error {
	for _, col := range m.Columns {
		if err := col.Apply(p, row.Value(col.Header), res); err != nil {
			return fmt.Errorf("column %q: %w", col.Header, err)
		}
	}
	return nil
}
