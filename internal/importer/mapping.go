package importer

import (
	"github.com/statustracker/probsync/internal/roster"
	"github.com/statustracker/probsync/internal/sheet"
	"github.com/statustracker/probsync/internal/types"
)

// Mapping is the declarative schema of one environment's catalog: which
// worksheet to read, which column identifies a row, and how each header
// lands on a Problem field. The two catalogs are near-identical but not
// identical, so each environment hardcodes its own table instead of two
// copies of the import loop diverging.
type Mapping struct {
	Env      types.Environment
	Sheet    string
	IDColumn string
	Columns  []Column
}

// Column pairs a spreadsheet header with the rule that applies its cell to
// the record under construction.
type Column struct {
	Header string
	Apply  func(p *types.Problem, raw string, r *roster.Resolver) error
}

func text(header string, set func(*types.Problem, *string)) Column {
	return Column{Header: header, Apply: func(p *types.Problem, raw string, _ *roster.Resolver) error {
		set(p, sheet.Text(raw))
		return nil
	}}
}

func integer(header string, set func(*types.Problem, *int)) Column {
	return Column{Header: header, Apply: func(p *types.Problem, raw string, _ *roster.Resolver) error {
		n, err := sheet.Integer(raw)
		if err != nil {
			return err
		}
		set(p, n)
		return nil
	}}
}

func flag(header string, set func(*types.Problem, bool)) Column {
	return Column{Header: header, Apply: func(p *types.Problem, raw string, _ *roster.Resolver) error {
		set(p, sheet.Flag(raw))
		return nil
	}}
}

// expert resolves a name-bearing cell to a roster ID. Unresolved names set
// a nil ID; they never fail the row.
func expert(header string, set func(*types.Problem, *int)) Column {
	return Column{Header: header, Apply: func(p *types.Problem, raw string, r *roster.Resolver) error {
		if id, ok := r.Resolve(raw); ok {
			set(p, &id)
		} else {
			set(p, nil)
		}
		return nil
	}}
}

// roleColumns are the five name-bearing columns shared by both catalogs.
func roleColumns() []Column {
	return []Column{
		expert("SME", func(p *types.Problem, id *int) { p.SMEID = id }),
		expert("Reviewer 1", func(p *types.Problem, id *int) { p.ReviewerID = id }),
		expert("Reviewer 2", func(p *types.Problem, id *int) { p.Reviewer2ID = id }),
		expert("Engineer / Submitter", func(p *types.Problem, id *int) { p.EngineerID = id }),
		expert("Final Reviewer", func(p *types.Problem, id *int) { p.FinalReviewerID = id }),
	}
}

// sharedColumns are identical between the two catalogs.
func sharedColumns() []Column {
	return []Column{
		text("Status", func(p *types.Problem, v *string) { p.Status = v }),
		integer("Week", func(p *types.Problem, v *int) { p.Week = v }),
		flag("Separate Environment Init", func(p *types.Problem, v bool) { p.SeparateEnvironmentInit = v }),
		text("Problem Doc", func(p *types.Problem, v *string) { p.ProblemDoc = v }),
		text("Spec Folder", func(p *types.Problem, v *string) { p.SpecFolder = v }),
		text("Spec Doc", func(p *types.Problem, v *string) { p.SpecDoc = v }),
		text("Spec Data Folder", func(p *types.Problem, v *string) { p.SpecDataFolder = v }),
		text("Docker Container", func(p *types.Problem, v *string) { p.DockerContainer = v }),
		text("PR Link", func(p *types.Problem, v *string) { p.PRLink = v }),
		text("Blocker Reason", func(p *types.Problem, v *string) { p.BlockerReason = v }),
		text("Sonnet 4.5  Pass @ 10", func(p *types.Problem, v *string) { p.SonnetPassRate = v }),
		text("Opus 4.1 Pass @ 10", func(p *types.Problem, v *string) { p.OpusPassRate = v }),
	}
}

// PE returns the mapping for the PE problem catalog. PE labels the spec
// column "Spec #", calls the ground-truth column "Problem Ground Truth",
// and is the only catalog with an explainer-video column.
func PE() Mapping {
	cols := append(roleColumns(),
		integer("Spec #", func(p *types.Problem, v *int) { p.SpecNumber = v }),
		text("Problem Ground Truth", func(p *types.Problem, v *string) { p.GroundTruth = v }),
		text("Explainer Video", func(p *types.Problem, v *string) { p.ExplainerVideo = v }),
	)
	return Mapping{
		Env:      types.EnvPE,
		Sheet:    "PE Problems Catalog",
		IDColumn: "ID",
		Columns:  append(cols, sharedColumns()...),
	}
}

// IB returns the mapping for the IB problem catalog. IB labels the spec
// column "Spec", calls the ground-truth column "Ground Truth", and has no
// explainer-video column.
func IB() Mapping {
	cols := append(roleColumns(),
		integer("Spec", func(p *types.Problem, v *int) { p.SpecNumber = v }),
		text("Ground Truth", func(p *types.Problem, v *string) { p.GroundTruth = v }),
	)
	return Mapping{
		Env:      types.EnvIB,
		Sheet:    "IB Problems Catalog",
		IDColumn: "ID",
		Columns:  append(cols, sharedColumns()...),
	}
}
