package service

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"rate-tracker/domain"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// SynthesizeActions derives the originator's to-do list from the whole
// pipeline, regardless of the active filter. Groups always come out in the
// same order: refi calls, rate watches, one stale-application email, lost
// deal calls. An empty list is replaced by a single all-clear item.
func SynthesizeActions(loans []domain.EnrichedLoan) []domain.ActionItem {
	actions := []domain.ActionItem{}

	for _, loan := range loans {
		if loan.RefiReady() {
			actions = append(actions, refiCall(loan))
		}
	}

	for _, loan := range loans {
		if loan.Watch() && loan.Stage == domain.StageFunded {
			actions = append(actions, rateWatch(loan))
		}
	}

	var stale []string
	for _, loan := range loans {
		if loan.Stage == domain.StageApplication && loan.ClosingDate == nil {
			stale = append(stale, loan.Name)
		}
	}
	if len(stale) > 0 {
		actions = append(actions, domain.ActionItem{
			Icon:        "📧",
			Title:       printer.Sprintf("Follow up on %d open applications", len(stale)),
			Description: strings.Join(stale, ", ") + " — no closing date set. Send status check email.",
			Tag:         domain.TagEmail,
		})
	}

	for _, loan := range loans {
		if loan.Stage == domain.StageLost {
			actions = append(actions, domain.ActionItem{
				Icon:        "🔄",
				Title:       "Re-engage " + loan.Name + " — Lost Deal",
				Description: "Previous opportunity at " + loan.Property + ". Current rates may offer a better deal than when they left.",
				Tag:         domain.TagCall,
			})
		}
	}

	if len(actions) == 0 {
		actions = append(actions, domain.ActionItem{
			Icon:        "✅",
			Title:       "All Clear",
			Description: "No urgent action items today. Pipeline is healthy.",
			Tag:         domain.TagNone,
		})
	}

	return actions
}

func refiCall(loan domain.EnrichedLoan) domain.ActionItem {
	return domain.ActionItem{
		Icon:  "🔥",
		Title: "Call " + loan.Name + " — Refi Opportunity",
		Description: printer.Sprintf("Current rate %s%% → Market %.3f%%. Potential savings: $%d/mo on $%d loan.",
			formatRate(loan.Rate), loan.MarketRate, dollars(loan.MonthlySavings), dollars(loan.LoanAmount)),
		Tag: domain.TagCall,
	}
}

func rateWatch(loan domain.EnrichedLoan) domain.ActionItem {
	delta := 0.0
	if loan.RateDelta != nil {
		delta = *loan.RateDelta
	}
	return domain.ActionItem{
		Icon:  "👀",
		Title: "Monitor " + loan.Name + " — Rate Watch",
		Description: printer.Sprintf("Only %.3f%% above market. Queue for automated review when rates drop another %.3f%%.",
			delta, WatchRecheckDelta),
		Tag: domain.TagReview,
	}
}

// formatRate prints a locked rate the way it was entered, e.g. 6.5 or 6.875.
func formatRate(rate *float64) string {
	if rate == nil {
		return "—"
	}
	return strconv.FormatFloat(*rate, 'f', -1, 64)
}

func dollars(v float64) int64 {
	return int64(math.Round(v))
}
