package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilterMode(t *testing.T) {
	for _, s := range []string{"all", "refi", "watch", "funded", "active"} {
		got, err := ParseFilterMode(s)
		assert.NoError(t, err)
		assert.Equal(t, FilterMode(s), got)
	}

	got, err := ParseFilterMode("")
	assert.NoError(t, err)
	assert.Equal(t, FilterAll, got)

	_, err = ParseFilterMode("REFI")
	assert.ErrorIs(t, err, ErrUnknownFilter)
}

func TestPresentationClasses(t *testing.T) {
	assert.Equal(t, "score-high", BandHigh.Class())
	assert.Equal(t, "score-med", BandMedium.Class())
	assert.Equal(t, "score-low", BandLow.Class())
	assert.Equal(t, "score-na", BandNotApplicable.Class())

	assert.Equal(t, "stage-funded", StageFunded.Class())
	assert.Equal(t, "stage-lost", StageLost.Class())
	assert.Equal(t, "stage-application", StageApplication.Class())

	assert.Equal(t, "tag-call", TagCall.Class())
	assert.Equal(t, "tag-review", TagReview.Class())
	assert.Equal(t, "tag-email", TagEmail.Class())
	assert.Equal(t, "", TagNone.Class())
}

func TestRefiScoreLabel(t *testing.T) {
	assert.Equal(t, "—", RefiScore{Band: BandNotApplicable}.Label())
	assert.Equal(t, "70", RefiScore{Value: 70, Band: BandHigh}.Label())
}

func TestEnrichedLoanRowClass(t *testing.T) {
	high := RefiScore{Value: 80, Band: BandHigh}

	assert.Equal(t, "refi-ready", EnrichedLoan{LoanRecord: LoanRecord{Stage: StageFunded}, RefiScore: high}.RowClass())
	assert.Equal(t, "", EnrichedLoan{LoanRecord: LoanRecord{Stage: StageApplication}, RefiScore: high}.RowClass())
	assert.Equal(t, "watch-item", EnrichedLoan{RefiScore: RefiScore{Value: 40, Band: BandMedium}}.RowClass())
}

func TestMarketRateTable(t *testing.T) {
	var empty MarketRateTable
	assert.Equal(t, 0.0, empty.Rate(ProgramJumbo))

	table := MarketRateTable{ProgramJumbo: 6.361}
	assert.Equal(t, 6.361, table.Rate(ProgramJumbo))
	assert.Equal(t, 0.0, table.Rate(ProgramFHA))

	clone := table.Clone()
	clone[ProgramJumbo] = 1
	assert.Equal(t, 6.361, table[ProgramJumbo])
}

func TestLoanRecordHasRate(t *testing.T) {
	assert.False(t, LoanRecord{}.HasRate())
	assert.True(t, LoanRecord{Rate: Float(0)}.HasRate())
}
