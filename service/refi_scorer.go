package service

import (
	"rate-tracker/domain"
)

// ScoreRefi rates a loan's refinance opportunity from how far its rate sits
// above market and how large it is. Loans at or below market, or without a
// delta, score 0 and are NotApplicable.
func ScoreRefi(rateDelta *float64, loanAmount float64) domain.RefiScore {
	if rateDelta == nil || *rateDelta <= 0 {
		return domain.RefiScore{Value: 0, Band: domain.BandNotApplicable}
	}

	score := RateDeltaTiers.Points(*rateDelta, RateDeltaFloorPoints)
	score += LoanSizeTiers.Points(loanAmount, LoanSizeFloorPoints)

	// Capped below 100 so no loan is ever shown as a perfect score.
	if score > MaxRefiScore {
		score = MaxRefiScore
	}

	return domain.RefiScore{Value: score, Band: bandFor(score)}
}

func bandFor(score int) domain.Band {
	switch {
	case score >= HighBandMinScore:
		return domain.BandHigh
	case score >= MedBandMinScore:
		return domain.BandMedium
	default:
		return domain.BandLow
	}
}
