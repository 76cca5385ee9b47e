package service

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rate-tracker/domain"
	"rate-tracker/repository"
)

func leadNames(leads []domain.CampaignLead) []string {
	out := make([]string, 0, len(leads))
	for _, l := range leads {
		out = append(out, l.Name)
	}
	return out
}

func TestBuildDailyBriefing_DemoPipeline(t *testing.T) {
	analysis := Analyze(repository.DemoPipeline(), DefaultMarketRates, domain.FilterAll)
	date := civil.Date{Year: 2026, Month: time.March, Day: 2}

	b := BuildDailyBriefing(analysis, date)

	assert.Equal(t, date, b.Date)
	assert.Equal(t, 4, b.RefiReadyCount)
	assert.Equal(t, 8, b.FundedCount)
	assert.InDelta(t, 1384.82, b.TotalMonthlySavings, 0.01)

	assert.Equal(t, []string{"Jared Larsen", "catherine Jin", "Anuj Mittal", "Samantha Sim"}, leadNames(b.RefiReady))
	assert.Equal(t, []string{"Stanley Gene", "Michael Lentz", "JIYEON PARK", "Megan Carter"}, leadNames(b.Watch))

	jared := b.RefiReady[0]
	assert.Equal(t, "4073624", jared.Key)
	assert.Equal(t, 1.077, jared.RateDelta)
	assert.Equal(t, 426.47, jared.MonthlySavings)
}

func TestBuildDailyBriefing_WatchListIsFundedOnly(t *testing.T) {
	loans := []domain.LoanRecord{
		{Name: "Funded watch", Stage: domain.StageFunded, LoanNumber: "1", LoanAmount: 350_000, Rate: domain.Float(6.548), Program: domain.ProgramConventional},
		{Name: "Open watch", Stage: domain.StageApplication, LoanNumber: "2", LoanAmount: 350_000, Rate: domain.Float(6.548), Program: domain.ProgramConventional},
		{Name: "Bigger funded watch", Stage: domain.StageFunded, LoanNumber: "3", LoanAmount: 550_000, Rate: domain.Float(6.548), Program: domain.ProgramConventional},
	}
	analysis := Analyze(loans, DefaultMarketRates, domain.FilterAll)

	b := BuildDailyBriefing(analysis, civil.Date{Year: 2026, Month: time.March, Day: 2})

	assert.Empty(t, b.RefiReady)
	assert.Equal(t, []string{"Bigger funded watch", "Funded watch"}, leadNames(b.Watch))
}

func TestBuildDailyBriefing_EmptyPipeline(t *testing.T) {
	b := BuildDailyBriefing(Analyze(nil, DefaultMarketRates, domain.FilterAll), civil.Date{Year: 2026, Month: time.March, Day: 2})

	assert.Equal(t, 0, b.RefiReadyCount)
	assert.NotNil(t, b.RefiReady)
	assert.NotNil(t, b.Watch)
}

func TestPipelineService_Briefing(t *testing.T) {
	svc, _ := newTestPipelineService(repository.NewLoanRepositoryMemory(repository.DemoPipeline()...))

	b, err := svc.Briefing(context.Background())
	require.NoError(t, err)

	assert.Equal(t, civil.Date{Year: 2026, Month: time.March, Day: 2}, b.Date)
	assert.Len(t, b.RefiReady, 4)
	assert.Len(t, b.Watch, 4)
}

func TestPipelineService_BriefingListError(t *testing.T) {
	svc, _ := newTestPipelineService(&MockLoanRepository{ForceError: true})

	_, err := svc.Briefing(context.Background())
	assert.Error(t, err)
}
