package sqlstore

import (
	"context"
	"fmt"
)

// Statements are executed one at a time: the pgx stdlib driver rejects
// multi-statement strings under the extended protocol. The DDL sticks to
// the dialect both Postgres and SQLite accept.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS experts (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS problems (
		problem_id TEXT NOT NULL,
		spec_number INTEGER,
		environment TEXT NOT NULL,
		status TEXT,
		sme_id INTEGER,
		reviewer_id INTEGER,
		final_reviewer_id INTEGER,
		engineer_id INTEGER,
		week INTEGER,
		separate_environment_init BOOLEAN NOT NULL DEFAULT FALSE,
		problem_doc TEXT,
		ground_truth TEXT,
		spec_folder TEXT,
		spec_doc TEXT,
		spec_data_folder TEXT,
		docker_container TEXT,
		pr_link TEXT,
		blocker_reason TEXT,
		sonnet_pass_rate TEXT,
		opus_pass_rate TEXT,
		explainer_video TEXT,
		source TEXT NOT NULL,
		created_at TIMESTAMP,
		updated_at TIMESTAMP,
		PRIMARY KEY (problem_id, environment)
	)`,
}

// EnsureSchema creates the experts and problems tables if they do not
// exist. The (problem_id, environment) primary key is what the import
// upsert conflicts on.
func (s *SQLStore) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
