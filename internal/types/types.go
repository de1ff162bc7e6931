package types

import (
	"fmt"
	"time"
)

// Environment identifies which problem catalog a record came from.
type Environment string

const (
	EnvPE Environment = "PE"
	EnvIB Environment = "IB"
)

// IsValid checks if the environment value is valid
func (e Environment) IsValid() bool {
	switch e {
	case EnvPE, EnvIB:
		return true
	}
	return false
}

// SourceLegacySheets marks rows migrated from the spreadsheet catalogs.
// The upsert stamps it on both insert and update so re-imported rows can
// never keep a stale source tag.
const SourceLegacySheets = "legacy_sheets"

// Expert is one row of the canonical roster. Name is the display form;
// resolution works on lowercased variants of it.
type Expert struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}

// Problem is one problem-catalog record keyed on (ProblemID, Environment).
// Pointer fields map to nullable columns.
type Problem struct {
	ProblemID   string      `db:"problem_id"`
	SpecNumber  *int        `db:"spec_number"`
	Environment Environment `db:"environment"`
	Status      *string     `db:"status"`

	SMEID           *int `db:"sme_id"`
	ReviewerID      *int `db:"reviewer_id"`
	FinalReviewerID *int `db:"final_reviewer_id"`
	EngineerID      *int `db:"engineer_id"`

	// Reviewer2ID is resolved from the catalogs but the problems table has
	// no column for it, so it is never persisted.
	Reviewer2ID *int `db:"-"`

	Week                    *int `db:"week"`
	SeparateEnvironmentInit bool `db:"separate_environment_init"`

	ProblemDoc     *string `db:"problem_doc"`
	GroundTruth    *string `db:"ground_truth"`
	SpecFolder     *string `db:"spec_folder"`
	SpecDoc        *string `db:"spec_doc"`
	SpecDataFolder *string `db:"spec_data_folder"`

	DockerContainer *string `db:"docker_container"`
	PRLink          *string `db:"pr_link"`
	BlockerReason   *string `db:"blocker_reason"`

	SonnetPassRate *string `db:"sonnet_pass_rate"`
	OpusPassRate   *string `db:"opus_pass_rate"`

	// ExplainerVideo exists only in the PE catalog; nil for IB rows.
	ExplainerVideo *string `db:"explainer_video"`

	Source    string    `db:"source"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Validate checks if the problem has valid field values
func (p *Problem) Validate() error {
	if p.ProblemID == "" {
		return fmt.Errorf("problem_id is required")
	}
	if !p.Environment.IsValid() {
		return fmt.Errorf("invalid environment: %s", p.Environment)
	}
	return nil
}

// SourceCount is one row of the grouped-by-source verification query.
type SourceCount struct {
	Source string `db:"source"`
	Count  int    `db:"count"`
}
