package domain

import (
	"errors"
	"fmt"
)

type FilterMode string

const (
	FilterAll    FilterMode = "all"
	FilterRefi   FilterMode = "refi"
	FilterWatch  FilterMode = "watch"
	FilterFunded FilterMode = "funded"
	FilterActive FilterMode = "active"
)

// ErrUnknownFilter is returned by ParseFilterMode for unrecognised modes.
var ErrUnknownFilter = errors.New("unknown filter mode")

// ParseFilterMode validates a filter selection coming from outside the
// engine. An empty string selects FilterAll.
func ParseFilterMode(s string) (FilterMode, error) {
	switch m := FilterMode(s); m {
	case "":
		return FilterAll, nil
	case FilterAll, FilterRefi, FilterWatch, FilterFunded, FilterActive:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFilter, s)
	}
}

type PortfolioSummary struct {
	TotalPipelineVolume     float64
	FundedCount             int
	AverageRate             *float64 // nil when no loan carries a rate
	RefiReadyCount          int
	RefiReadyMonthlySavings float64
}

type Tag string

const (
	TagNone   Tag = ""
	TagCall   Tag = "Call"
	TagReview Tag = "Review"
	TagEmail  Tag = "Email"
)

func (t Tag) Class() string {
	switch t {
	case TagCall:
		return "tag-call"
	case TagReview:
		return "tag-review"
	case TagEmail:
		return "tag-email"
	default:
		return ""
	}
}

type ActionItem struct {
	Icon        string
	Title       string
	Description string
	Tag         Tag
}

// Analysis is the output of one full recomputation cycle.
type Analysis struct {
	Loans   []EnrichedLoan // every loan, input order
	View    []EnrichedLoan // filtered and sorted for the active mode
	Filter  FilterMode
	Summary PortfolioSummary
	Actions []ActionItem
	Rates   MarketRateTable
}

type CampaignCriteria struct {
	MinScore     int
	IncludeWatch bool
}

type CampaignLead struct {
	Key            string
	Name           string
	LoanNumber     string
	Property       string
	Program        Program
	LoanAmount     float64
	CurrentRate    float64
	MarketRate     float64
	RateDelta      float64
	MonthlySavings float64
	RefiScore      int
}
