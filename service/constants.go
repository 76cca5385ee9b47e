package service

import "rate-tracker/domain"

const (
	StandardTermMonths = 360 // 30-year term for every program

	MaxRefiScore     = 99
	HighBandMinScore = 70
	MedBandMinScore  = 30

	// Re-check threshold quoted on watch items, in percentage points.
	WatchRecheckDelta = 0.125

	DefaultCampaignMinScore = 50

	MaxMarketRate = 100.0
)

// Tier awards Points to any input greater than or equal to Min.
type Tier struct {
	Min    float64
	Points int
}

// Tiers are ordered from the highest Min down; the first match wins.
type Tiers []Tier

func (t Tiers) Points(v float64, fallback int) int {
	for _, tier := range t {
		if v >= tier.Min {
			return tier.Points
		}
	}
	return fallback
}

var (
	// Rate delta in percentage points above market.
	RateDeltaTiers = Tiers{
		{Min: 0.75, Points: 60},
		{Min: 0.50, Points: 40},
		{Min: 0.25, Points: 20},
	}
	RateDeltaFloorPoints = 5

	LoanSizeTiers = Tiers{
		{Min: 800_000, Points: 30},
		{Min: 500_000, Points: 20},
		{Min: 300_000, Points: 10},
	}
	LoanSizeFloorPoints = 0
)

// Published on a fresh rate service until the first update arrives.
var DefaultMarketRates = domain.MarketRateTable{
	domain.ProgramConventional: 6.048,
	domain.ProgramJumbo:        6.361,
	domain.ProgramFHA:          5.956,
	domain.ProgramVA:           5.690,
}
