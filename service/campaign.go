package service

import (
	"math"
	"sort"

	"rate-tracker/domain"
)

// SelectCampaignLeads picks the funded loans worth enrolling in a refinance
// outreach campaign, best score first. A loan qualifies at MinScore, or at
// the Medium band floor when IncludeWatch is set.
func SelectCampaignLeads(loans []domain.EnrichedLoan, criteria domain.CampaignCriteria) []domain.CampaignLead {
	leads := []domain.CampaignLead{}

	for _, loan := range loans {
		if loan.Stage != domain.StageFunded || !loan.HasRate() {
			continue
		}
		score := loan.RefiScore.Value
		if score < criteria.MinScore && !(criteria.IncludeWatch && score >= MedBandMinScore) {
			continue
		}
		// A zero score never qualifies, even with MinScore 0.
		if loan.RefiScore.Band == domain.BandNotApplicable {
			continue
		}

		leads = append(leads, newCampaignLead(loan))
	}

	sortByScore(leads)
	return leads
}

func newCampaignLead(loan domain.EnrichedLoan) domain.CampaignLead {
	return domain.CampaignLead{
		Key:            loan.ID(),
		Name:           loan.Name,
		LoanNumber:     loan.LoanNumber,
		Property:       loan.Property,
		Program:        loan.Program,
		LoanAmount:     loan.LoanAmount,
		CurrentRate:    *loan.Rate,
		MarketRate:     loan.MarketRate,
		RateDelta:      math.Round((*loan.Rate-loan.MarketRate)*1000) / 1000,
		MonthlySavings: roundTo2Decimals(loan.MonthlySavings),
		RefiScore:      loan.RefiScore.Value,
	}
}

func sortByScore(leads []domain.CampaignLead) {
	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].RefiScore > leads[j].RefiScore
	})
}
