// Package storage defines the interface for problem-record storage backends.
package storage

import (
	"context"

	"github.com/statustracker/probsync/internal/types"
)

// Store is the storage surface the migration needs: the read-only roster,
// batched problem upserts, and the verification count.
type Store interface {
	// Experts returns the canonical roster ordered by id, so name-key
	// registration is deterministic.
	Experts(ctx context.Context) ([]types.Expert, error)

	// BeginImport opens one import batch. All upserts in the batch share a
	// single transaction committed by Commit.
	BeginImport(ctx context.Context) (Batch, error)

	// SourceCounts returns problem counts grouped by source tag.
	SourceCounts(ctx context.Context) ([]types.SourceCount, error)

	// EnsureSchema creates the experts and problems tables if missing.
	EnsureSchema(ctx context.Context) error

	// Lifecycle
	Close() error
}

// Batch accumulates upserts inside one transaction. A failed upsert leaves
// the batch usable: the error belongs to the row, not the batch.
type Batch interface {
	UpsertProblem(ctx context.Context, p *types.Problem) error
	Commit() error
	Rollback() error
}
