package domain

import "cloud.google.com/go/civil"

// DailyBriefing is the originator's morning summary: headline counts plus the
// funded loans to call today and the ones to keep an eye on.
type DailyBriefing struct {
	Date                civil.Date
	RefiReadyCount      int
	TotalMonthlySavings float64
	FundedCount         int
	RefiReady           []CampaignLead
	Watch               []CampaignLead
}
