package domain

import "strconv"

type Band string

const (
	BandNotApplicable Band = "NotApplicable"
	BandLow           Band = "Low"
	BandMedium        Band = "Medium"
	BandHigh          Band = "High"
)

// Class maps the band onto the score badge class.
func (b Band) Class() string {
	switch b {
	case BandHigh:
		return "score-high"
	case BandMedium:
		return "score-med"
	case BandLow:
		return "score-low"
	default:
		return "score-na"
	}
}

type RefiScore struct {
	Value int
	Band  Band
}

// Label is the badge text: the score, or a dash when refinancing does not apply.
func (s RefiScore) Label() string {
	if s.Band == BandNotApplicable {
		return "—"
	}
	return strconv.Itoa(s.Value)
}

// EnrichedLoan is a LoanRecord plus everything derived from the current
// market rates. It is rebuilt on every cycle and never mutated.
type EnrichedLoan struct {
	LoanRecord
	Position int // index in the pipeline listing

	MarketRate     float64
	RateDelta      *float64
	MonthlySavings float64
	RefiScore      RefiScore
}

// ID is the record's identity: loan number, else pipeline position.
func (l EnrichedLoan) ID() string {
	return l.Key(l.Position)
}

// RefiReady is true for funded loans in the High band.
func (l EnrichedLoan) RefiReady() bool {
	return l.RefiScore.Band == BandHigh && l.Stage == StageFunded
}

// Watch is true for any loan in the Medium band, whatever its stage.
func (l EnrichedLoan) Watch() bool {
	return l.RefiScore.Band == BandMedium
}

// RowClass is the table-row highlight for the loan.
func (l EnrichedLoan) RowClass() string {
	switch {
	case l.RefiReady():
		return "refi-ready"
	case l.Watch():
		return "watch-item"
	default:
		return ""
	}
}
