package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/statustracker/probsync/internal/types"
)

// upsertProblemSQL overwrites every mapped column on conflict. source is
// always excluded.source ('legacy_sheets' on every import path), so a
// re-import can never leave a stale tag. created_at survives updates;
// updated_at only advances on updates, matching the legacy table's
// convention of NULL updated_at for never-touched rows.
const upsertProblemSQL = `
	INSERT INTO problems (
		problem_id, spec_number, environment, status,
		sme_id, reviewer_id, final_reviewer_id, engineer_id,
		week, separate_environment_init,
		problem_doc, ground_truth, spec_folder, spec_doc, spec_data_folder,
		docker_container, pr_link, blocker_reason,
		sonnet_pass_rate, opus_pass_rate, explainer_video,
		source, created_at
	) VALUES (
		:problem_id, :spec_number, :environment, :status,
		:sme_id, :reviewer_id, :final_reviewer_id, :engineer_id,
		:week, :separate_environment_init,
		:problem_doc, :ground_truth, :spec_folder, :spec_doc, :spec_data_folder,
		:docker_container, :pr_link, :blocker_reason,
		:sonnet_pass_rate, :opus_pass_rate, :explainer_video,
		:source, :created_at
	)
	ON CONFLICT (problem_id, environment) DO UPDATE SET
		spec_number = excluded.spec_number,
		status = excluded.status,
		sme_id = excluded.sme_id,
		reviewer_id = excluded.reviewer_id,
		final_reviewer_id = excluded.final_reviewer_id,
		engineer_id = excluded.engineer_id,
		week = excluded.week,
		separate_environment_init = excluded.separate_environment_init,
		problem_doc = excluded.problem_doc,
		ground_truth = excluded.ground_truth,
		spec_folder = excluded.spec_folder,
		spec_doc = excluded.spec_doc,
		spec_data_folder = excluded.spec_data_folder,
		docker_container = excluded.docker_container,
		pr_link = excluded.pr_link,
		blocker_reason = excluded.blocker_reason,
		sonnet_pass_rate = excluded.sonnet_pass_rate,
		opus_pass_rate = excluded.opus_pass_rate,
		explainer_video = excluded.explainer_video,
		source = excluded.source,
		updated_at = :updated_at`

type batch struct {
	tx   *sqlx.Tx
	now  func() time.Time
	done bool
}

// UpsertProblem inserts or fully overwrites one record inside the batch
// transaction. Each statement runs under a savepoint so a failed row rolls
// back to a clean transaction state instead of poisoning the rest of the
// batch (Postgres aborts the whole transaction otherwise; SQLite accepts
// the same SAVEPOINT syntax).
func (b *batch) UpsertProblem(ctx context.Context, p *types.Problem) error {
	if err := p.Validate(); err != nil {
		return err
	}

	now := b.now().UTC()
	row := *p
	row.Source = types.SourceLegacySheets
	row.CreatedAt = now
	row.UpdatedAt = now

	if _, err := b.tx.ExecContext(ctx, "SAVEPOINT problem_row"); err != nil {
		return fmt.Errorf("failed to open savepoint: %w", err)
	}
	if _, err := b.tx.NamedExecContext(ctx, upsertProblemSQL, row); err != nil {
		if _, rbErr := b.tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT problem_row"); rbErr != nil {
			return fmt.Errorf("failed to roll back row (%v) after: %w", rbErr, err)
		}
		return fmt.Errorf("failed to upsert problem %s/%s: %w", p.ProblemID, p.Environment, err)
	}
	if _, err := b.tx.ExecContext(ctx, "RELEASE SAVEPOINT problem_row"); err != nil {
		return fmt.Errorf("failed to release savepoint: %w", err)
	}
	return nil
}

// Commit commits the accumulated batch atomically.
func (b *batch) Commit() error {
	b.done = true
	if err := b.tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import batch: %w", err)
	}
	return nil
}

// Rollback discards the batch. Safe to defer after Commit.
func (b *batch) Rollback() error {
	if b.done {
		return nil
	}
	if err := b.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}
	return nil
}
