package service

import (
	"rate-tracker/domain"
)

// Analyze runs one full recomputation cycle: enrich every loan against the
// market rates, then summarize, filter and derive actions from the result.
// Nothing is carried over between calls.
func Analyze(loans []domain.LoanRecord, rates domain.MarketRateTable, mode domain.FilterMode) domain.Analysis {
	enriched := Enrich(loans, rates)

	return domain.Analysis{
		Loans:   enriched,
		View:    SelectView(enriched, mode),
		Filter:  mode,
		Summary: Summarize(enriched),
		Actions: SynthesizeActions(enriched),
		Rates:   rates.Clone(),
	}
}
