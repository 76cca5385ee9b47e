package http

import (
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"rate-tracker/domain"
	"rate-tracker/service"
)

type PipelineHandler struct {
	service *service.PipelineService
	logger  *zap.Logger
}

func NewPipelineHandler(service *service.PipelineService, logger *zap.Logger) *PipelineHandler {
	return &PipelineHandler{service: service, logger: logger}
}

// GetPipeline serves GET /pipeline?filter=all|refi|watch|funded|active.
func (h *PipelineHandler) GetPipeline(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	mode, err := domain.ParseFilterMode(r.URL.Query().Get("filter"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	analysis, err := h.service.Analyze(r.Context(), mode)
	if err != nil {
		h.logger.Error("failed to analyze pipeline", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, newPipelineResponse(analysis))
}

// PreviewCampaign serves POST /campaigns/preview.
func (h *PipelineHandler) PreviewCampaign(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	criteria := domain.CampaignCriteria{
		MinScore:     service.DefaultCampaignMinScore,
		IncludeWatch: true,
	}
	// An empty body, chunked or not, keeps the default criteria.
	var req campaignRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Debug("invalid campaign request", zap.Error(err))
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.MinScore != nil {
		criteria.MinScore = *req.MinScore
	}
	if req.IncludeWatch != nil {
		criteria.IncludeWatch = *req.IncludeWatch
	}

	leads, err := h.service.CampaignLeads(r.Context(), criteria)
	if err != nil {
		h.logger.Error("failed to select campaign leads", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, newCampaignResponse(leads))
}

// GetBriefing serves GET /briefing, today's summary over the whole pipeline.
func (h *PipelineHandler) GetBriefing(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	briefing, err := h.service.Briefing(r.Context())
	if err != nil {
		h.logger.Error("failed to build daily briefing", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, newBriefingResponse(briefing))
}
