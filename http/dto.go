package http

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"rate-tracker/domain"
)

// money rounds to cents for the wire.
func money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

type summaryResponse struct {
	TotalPipelineVolume     decimal.Decimal `json:"total_pipeline_volume"`
	FundedCount             int             `json:"funded_count"`
	AverageRate             *float64        `json:"average_rate"`
	RefiReadyCount          int             `json:"refi_ready_count"`
	RefiReadyMonthlySavings decimal.Decimal `json:"refi_ready_monthly_savings"`
}

type loanResponse struct {
	Key            string          `json:"key"`
	Name           string          `json:"name"`
	Stage          domain.Stage    `json:"stage"`
	StageClass     string          `json:"stage_class"`
	LoanNumber     string          `json:"loan_number,omitempty"`
	Property       string          `json:"property"`
	LoanAmount     decimal.Decimal `json:"loan_amount"`
	Rate           *float64        `json:"rate"`
	Program        domain.Program  `json:"program"`
	ClosingDate    *civil.Date     `json:"closing_date"`
	CreditScore    *float64        `json:"credit_score"`
	LTV            *float64        `json:"ltv"`
	DTI            *float64        `json:"dti"`
	PITI           *float64        `json:"piti"`
	BuyerAgent     string          `json:"buyer_agent,omitempty"`
	MarketRate     float64         `json:"market_rate"`
	RateDelta      *float64        `json:"rate_delta"`
	MonthlySavings decimal.Decimal `json:"monthly_savings"`
	RefiScore      int             `json:"refi_score"`
	RefiBand       domain.Band     `json:"refi_band"`
	RefiLabel      string          `json:"refi_label"`
	ScoreClass     string          `json:"score_class"`
	RowClass       string          `json:"row_class,omitempty"`
}

type actionResponse struct {
	Icon        string     `json:"icon"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Tag         domain.Tag `json:"tag,omitempty"`
	TagClass    string     `json:"tag_class,omitempty"`
}

type pipelineResponse struct {
	Filter  domain.FilterMode          `json:"filter"`
	Summary summaryResponse            `json:"summary"`
	Loans   []loanResponse             `json:"loans"`
	Actions []actionResponse           `json:"actions"`
	Rates   map[domain.Program]float64 `json:"rates"`
}

type ratesResponse struct {
	Rates     map[domain.Program]float64 `json:"rates"`
	UpdatedAt *time.Time                 `json:"updated_at,omitempty"`
}

type campaignRequest struct {
	MinScore     *int  `json:"min_score"`
	IncludeWatch *bool `json:"include_watch"`
}

type campaignLeadResponse struct {
	Key            string          `json:"key"`
	Name           string          `json:"name"`
	LoanNumber     string          `json:"loan_number,omitempty"`
	Property       string          `json:"property"`
	Program        domain.Program  `json:"program"`
	LoanAmount     decimal.Decimal `json:"loan_amount"`
	CurrentRate    float64         `json:"current_rate"`
	MarketRate     float64         `json:"market_rate"`
	RateDelta      float64         `json:"rate_delta"`
	MonthlySavings decimal.Decimal `json:"monthly_savings"`
	RefiScore      int             `json:"refi_score"`
}

type campaignResponse struct {
	TotalLeads int                    `json:"total_leads"`
	Leads      []campaignLeadResponse `json:"leads"`
}

type briefingResponse struct {
	Date                civil.Date             `json:"date"`
	RefiReadyCount      int                    `json:"refi_ready_count"`
	TotalMonthlySavings decimal.Decimal        `json:"total_monthly_savings"`
	FundedCount         int                    `json:"funded_count"`
	RefiReady           []campaignLeadResponse `json:"refi_ready"`
	Watch               []campaignLeadResponse `json:"watch"`
}

func newPipelineResponse(a domain.Analysis) pipelineResponse {
	resp := pipelineResponse{
		Filter: a.Filter,
		Summary: summaryResponse{
			TotalPipelineVolume:     money(a.Summary.TotalPipelineVolume),
			FundedCount:             a.Summary.FundedCount,
			AverageRate:             a.Summary.AverageRate,
			RefiReadyCount:          a.Summary.RefiReadyCount,
			RefiReadyMonthlySavings: money(a.Summary.RefiReadyMonthlySavings),
		},
		Loans:   make([]loanResponse, 0, len(a.View)),
		Actions: make([]actionResponse, 0, len(a.Actions)),
		Rates:   a.Rates,
	}

	for _, l := range a.View {
		resp.Loans = append(resp.Loans, loanResponse{
			Key:            l.ID(),
			Name:           l.Name,
			Stage:          l.Stage,
			StageClass:     l.Stage.Class(),
			LoanNumber:     l.LoanNumber,
			Property:       l.Property,
			LoanAmount:     money(l.LoanAmount),
			Rate:           l.Rate,
			Program:        l.Program,
			ClosingDate:    l.ClosingDate,
			CreditScore:    l.CreditScore,
			LTV:            l.LTV,
			DTI:            l.DTI,
			PITI:           l.PITI,
			BuyerAgent:     l.BuyerAgent,
			MarketRate:     l.MarketRate,
			RateDelta:      l.RateDelta,
			MonthlySavings: money(l.MonthlySavings),
			RefiScore:      l.RefiScore.Value,
			RefiBand:       l.RefiScore.Band,
			RefiLabel:      l.RefiScore.Label(),
			ScoreClass:     l.RefiScore.Band.Class(),
			RowClass:       l.RowClass(),
		})
	}

	for _, act := range a.Actions {
		resp.Actions = append(resp.Actions, actionResponse{
			Icon:        act.Icon,
			Title:       act.Title,
			Description: act.Description,
			Tag:         act.Tag,
			TagClass:    act.Tag.Class(),
		})
	}

	return resp
}

func newRatesResponse(s domain.MarketRateSnapshot) ratesResponse {
	resp := ratesResponse{Rates: s.Rates}
	if !s.UpdatedAt.IsZero() {
		ts := s.UpdatedAt
		resp.UpdatedAt = &ts
	}
	return resp
}

func newCampaignResponse(leads []domain.CampaignLead) campaignResponse {
	return campaignResponse{
		TotalLeads: len(leads),
		Leads:      newCampaignLeadResponses(leads),
	}
}

func newBriefingResponse(b domain.DailyBriefing) briefingResponse {
	return briefingResponse{
		Date:                b.Date,
		RefiReadyCount:      b.RefiReadyCount,
		TotalMonthlySavings: money(b.TotalMonthlySavings),
		FundedCount:         b.FundedCount,
		RefiReady:           newCampaignLeadResponses(b.RefiReady),
		Watch:               newCampaignLeadResponses(b.Watch),
	}
}

func newCampaignLeadResponses(leads []domain.CampaignLead) []campaignLeadResponse {
	out := make([]campaignLeadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, campaignLeadResponse{
			Key:            l.Key,
			Name:           l.Name,
			LoanNumber:     l.LoanNumber,
			Property:       l.Property,
			Program:        l.Program,
			LoanAmount:     money(l.LoanAmount),
			CurrentRate:    l.CurrentRate,
			MarketRate:     l.MarketRate,
			RateDelta:      l.RateDelta,
			MonthlySavings: money(l.MonthlySavings),
			RefiScore:      l.RefiScore,
		})
	}
	return out
}
