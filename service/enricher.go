package service

import (
	"math"

	"rate-tracker/domain"
)

// deltaPrecision strips float noise so a delta quoted as 0.750 lands on the
// 0.75 tier instead of 0.7499999999.
const deltaPrecision = 1e9

// EnrichLoan derives market rate, delta, savings and score for one record.
func EnrichLoan(loan domain.LoanRecord, rates domain.MarketRateTable) domain.EnrichedLoan {
	marketRate := rates.Rate(loan.Program)

	var rateDelta *float64
	if loan.HasRate() && marketRate > 0 {
		d := math.Round((*loan.Rate-marketRate)*deltaPrecision) / deltaPrecision
		rateDelta = &d
	}

	return domain.EnrichedLoan{
		LoanRecord:     loan,
		MarketRate:     marketRate,
		RateDelta:      rateDelta,
		MonthlySavings: MonthlySavings(loan.LoanAmount, loan.Rate, marketRate),
		RefiScore:      ScoreRefi(rateDelta, loan.LoanAmount),
	}
}

// Enrich returns one EnrichedLoan per record, in input order.
func Enrich(loans []domain.LoanRecord, rates domain.MarketRateTable) []domain.EnrichedLoan {
	out := make([]domain.EnrichedLoan, 0, len(loans))
	for i, loan := range loans {
		e := EnrichLoan(loan, rates)
		e.Position = i
		out = append(out, e)
	}
	return out
}
