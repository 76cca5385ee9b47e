package service

import (
	"math"
)

// roundTo2Decimals rounds a float64 to cents.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// MonthlyPayment returns the fixed monthly payment that amortizes principal
// over termMonths at annualRatePercent. A zero rate splits the principal
// evenly; a non-positive term yields 0.
func MonthlyPayment(principal, annualRatePercent float64, termMonths int) float64 {
	if termMonths <= 0 {
		return 0
	}
	if annualRatePercent == 0 {
		return principal / float64(termMonths)
	}

	monthlyRate := (annualRatePercent / 100) / 12
	n := float64(termMonths)

	return principal * (monthlyRate /
		(1 - math.Pow(1+monthlyRate, -n)))
}

// MonthlySavings is the drop in monthly payment from refinancing loanAmount
// at marketRate instead of currentRate, over the standard 30-year term.
// It is 0 unless every input is positive and currentRate is strictly above
// marketRate, and it is never negative.
func MonthlySavings(loanAmount float64, currentRate *float64, marketRate float64) float64 {
	if loanAmount <= 0 || currentRate == nil || *currentRate <= 0 || marketRate <= 0 {
		return 0
	}
	if *currentRate <= marketRate {
		return 0
	}

	current := MonthlyPayment(loanAmount, *currentRate, StandardTermMonths)
	refinanced := MonthlyPayment(loanAmount, marketRate, StandardTermMonths)

	return math.Max(0, current-refinanced)
}
