package service

import (
	"cloud.google.com/go/civil"

	"rate-tracker/domain"
)

// BuildDailyBriefing summarizes an analysis for the given day. Both lists hold
// funded loans only, best score first; watch rows are the Medium band.
func BuildDailyBriefing(a domain.Analysis, date civil.Date) domain.DailyBriefing {
	b := domain.DailyBriefing{
		Date:                date,
		RefiReadyCount:      a.Summary.RefiReadyCount,
		TotalMonthlySavings: a.Summary.RefiReadyMonthlySavings,
		FundedCount:         a.Summary.FundedCount,
		RefiReady:           []domain.CampaignLead{},
		Watch:               []domain.CampaignLead{},
	}

	for _, loan := range a.Loans {
		switch {
		case loan.RefiReady():
			b.RefiReady = append(b.RefiReady, newCampaignLead(loan))
		case loan.Watch() && loan.Stage == domain.StageFunded:
			b.Watch = append(b.Watch, newCampaignLead(loan))
		}
	}

	sortByScore(b.RefiReady)
	sortByScore(b.Watch)
	return b
}
