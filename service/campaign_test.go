package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rate-tracker/domain"
	"rate-tracker/repository"
)

func TestSelectCampaignLeads_DefaultCriteria(t *testing.T) {
	loans := Enrich(repository.DemoPipeline(), DefaultMarketRates)

	leads := SelectCampaignLeads(loans, domain.CampaignCriteria{MinScore: DefaultCampaignMinScore, IncludeWatch: true})

	got := make([]string, 0, len(leads))
	for _, l := range leads {
		got = append(got, l.Name)
	}
	assert.Equal(t, []string{
		"Jared Larsen", "catherine Jin", "Anuj Mittal", "Samantha Sim",
		"Stanley Gene", "Michael Lentz", "JIYEON PARK", "Megan Carter",
	}, got)

	first := leads[0]
	assert.Equal(t, "4073624", first.Key)
	assert.Equal(t, 80, first.RefiScore)
	assert.Equal(t, 1.077, first.RateDelta)
	assert.Equal(t, 426.47, first.MonthlySavings)
}

func TestSelectCampaignLeads_WithoutWatch(t *testing.T) {
	loans := Enrich(repository.DemoPipeline(), DefaultMarketRates)

	leads := SelectCampaignLeads(loans, domain.CampaignCriteria{MinScore: 70})

	require.Len(t, leads, 4)
	for _, l := range leads {
		assert.GreaterOrEqual(t, l.RefiScore, 70)
	}
}

func TestSelectCampaignLeads_SkipsNonFundedAndNotApplicable(t *testing.T) {
	loans := Enrich([]domain.LoanRecord{
		{Name: "app", Stage: domain.StageApplication, LoanAmount: 900_000, Rate: domain.Float(8), Program: domain.ProgramJumbo},
		{Name: "at market", Stage: domain.StageFunded, LoanAmount: 900_000, Rate: domain.Float(6.361), Program: domain.ProgramJumbo},
	}, DefaultMarketRates)

	assert.Empty(t, SelectCampaignLeads(loans, domain.CampaignCriteria{MinScore: 0, IncludeWatch: true}))
}
