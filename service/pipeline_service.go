package service

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"go.uber.org/zap"

	"rate-tracker/domain"
	"rate-tracker/repository"
)

// PipelineService feeds the loan source and current market rates through the
// analytics cycle.
type PipelineService struct {
	loans  repository.LoanRepository
	rates  *RateService
	logger *zap.Logger
	now    func() time.Time
}

func NewPipelineService(loans repository.LoanRepository, rates *RateService, logger *zap.Logger) *PipelineService {
	return &PipelineService{
		loans:  loans,
		rates:  rates,
		logger: logger,
		now:    time.Now,
	}
}

// Analyze recomputes the whole pipeline for the given filter mode.
func (s *PipelineService) Analyze(ctx context.Context, mode domain.FilterMode) (domain.Analysis, error) {
	loans, err := s.loans.List(ctx)
	if err != nil {
		return domain.Analysis{}, fmt.Errorf("list loans: %w", err)
	}

	analysis := Analyze(loans, s.rates.Current(ctx).Rates, mode)

	s.logger.Debug("pipeline analyzed",
		zap.String("filter", string(mode)),
		zap.Int("loans", len(analysis.Loans)),
		zap.Int("view", len(analysis.View)),
		zap.Int("refiReady", analysis.Summary.RefiReadyCount),
		zap.Int("actions", len(analysis.Actions)),
	)
	return analysis, nil
}

// CampaignLeads previews who a refinance campaign would enroll at current rates.
func (s *PipelineService) CampaignLeads(ctx context.Context, criteria domain.CampaignCriteria) ([]domain.CampaignLead, error) {
	loans, err := s.loans.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}

	leads := SelectCampaignLeads(Enrich(loans, s.rates.Current(ctx).Rates), criteria)

	s.logger.Info("campaign leads selected",
		zap.Int("minScore", criteria.MinScore),
		zap.Bool("includeWatch", criteria.IncludeWatch),
		zap.Int("leads", len(leads)),
	)
	return leads, nil
}

// Briefing builds today's summary over the whole pipeline. Delivery is up to
// the caller.
func (s *PipelineService) Briefing(ctx context.Context) (domain.DailyBriefing, error) {
	analysis, err := s.Analyze(ctx, domain.FilterAll)
	if err != nil {
		return domain.DailyBriefing{}, err
	}

	briefing := BuildDailyBriefing(analysis, civil.DateOf(s.now()))

	s.logger.Info("daily briefing built",
		zap.Int("refiReady", len(briefing.RefiReady)),
		zap.Int("watch", len(briefing.Watch)),
	)
	return briefing, nil
}
