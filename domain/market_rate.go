package domain

import "time"

// MarketRateTable holds the current 30-year market rate, in percent, per program.
type MarketRateTable map[Program]float64

// Rate returns the market rate for program, or 0 when no rate is known.
func (t MarketRateTable) Rate(program Program) float64 {
	if t == nil {
		return 0
	}
	return t[program]
}

// Clone returns an independent copy of the table.
func (t MarketRateTable) Clone() MarketRateTable {
	out := make(MarketRateTable, len(t))
	for p, r := range t {
		out[p] = r
	}
	return out
}

type MarketRateSnapshot struct {
	Rates     MarketRateTable
	UpdatedAt time.Time
}
