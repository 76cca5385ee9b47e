package service

import (
	"sort"

	"rate-tracker/domain"
)

// viewPredicates holds the membership test for every filter mode but "all".
var viewPredicates = map[domain.FilterMode]func(domain.EnrichedLoan) bool{
	domain.FilterRefi:   domain.EnrichedLoan.RefiReady,
	domain.FilterWatch:  domain.EnrichedLoan.Watch,
	domain.FilterFunded: func(l domain.EnrichedLoan) bool { return l.Stage == domain.StageFunded },
	domain.FilterActive: func(l domain.EnrichedLoan) bool { return l.Stage == domain.StageApplication },
}

// SelectView filters loans for mode and orders them by score, highest first.
// Equal scores keep their pipeline order. Unknown modes select everything.
// The input slice is left untouched.
func SelectView(loans []domain.EnrichedLoan, mode domain.FilterMode) []domain.EnrichedLoan {
	keep, ok := viewPredicates[mode]

	out := make([]domain.EnrichedLoan, 0, len(loans))
	for _, loan := range loans {
		if ok && !keep(loan) {
			continue
		}
		out = append(out, loan)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RefiScore.Value > out[j].RefiScore.Value
	})
	return out
}
