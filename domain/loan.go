package domain

import (
	"strconv"

	"cloud.google.com/go/civil"
)

type Stage string

const (
	StageApplication Stage = "Application"
	StageFunded      Stage = "Funded"
	StageLost        Stage = "Lost"
)

// Class maps the stage onto the pill class the dashboard renders.
func (s Stage) Class() string {
	switch s {
	case StageFunded:
		return "stage-funded"
	case StageLost:
		return "stage-lost"
	default:
		return "stage-application"
	}
}

type Program string

const (
	ProgramConventional Program = "Conventional"
	ProgramJumbo        Program = "Jumbo"
	ProgramFHA          Program = "FHA"
	ProgramVA           Program = "VA"
)

// Programs lists every program a market rate can be quoted for.
var Programs = []Program{ProgramConventional, ProgramJumbo, ProgramFHA, ProgramVA}

// LoanRecord is one row of an originator's pipeline. Optional numeric fields
// are nil when the source has no value; nil and zero are different states.
type LoanRecord struct {
	Name        string
	Stage       Stage
	LoanNumber  string
	Property    string
	LoanAmount  float64
	Rate        *float64
	Program     Program
	ClosingDate *civil.Date
	CreditScore *float64
	LTV         *float64
	DTI         *float64
	PITI        *float64
	BuyerAgent  string
}

// Key identifies the record by loan number, falling back to its position in
// the pipeline. Borrower names are not unique and are never used as identity.
func (l LoanRecord) Key(position int) string {
	if l.LoanNumber != "" {
		return l.LoanNumber
	}
	return "#" + strconv.Itoa(position)
}

// HasRate reports whether a locked rate was recorded for the loan.
func (l LoanRecord) HasRate() bool {
	return l.Rate != nil
}

// Float returns a pointer to v, for populating optional fields.
func Float(v float64) *float64 {
	return &v
}
