package service

import (
	"rate-tracker/domain"
)

// Summarize folds the enriched pipeline into dashboard statistics.
func Summarize(loans []domain.EnrichedLoan) domain.PortfolioSummary {
	var (
		summary  domain.PortfolioSummary
		rateSum  float64
		rateSeen int
	)

	for _, loan := range loans {
		if loan.LoanAmount > 0 {
			summary.TotalPipelineVolume += loan.LoanAmount
		}
		if loan.Stage == domain.StageFunded {
			summary.FundedCount++
		}
		if loan.HasRate() && *loan.Rate != 0 {
			rateSum += *loan.Rate
			rateSeen++
		}
		if loan.RefiReady() {
			summary.RefiReadyCount++
			summary.RefiReadyMonthlySavings += loan.MonthlySavings
		}
	}

	if rateSeen > 0 {
		avg := rateSum / float64(rateSeen)
		summary.AverageRate = &avg
	}

	return summary
}
