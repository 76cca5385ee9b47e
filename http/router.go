package http

import (
	"net/http"

	"go.uber.org/zap"
)

// NewRouter mounts every endpoint behind the per-client rate limiter.
func NewRouter(
	pipeline *PipelineHandler,
	rates *RatesHandler,
	limiter *RateLimiter,
	logger *zap.Logger,
) http.Handler {
	mux := http.NewServeMux()

	routes := map[string]http.HandlerFunc{
		"/pipeline":          pipeline.GetPipeline,
		"/briefing":          pipeline.GetBriefing,
		"/campaigns/preview": pipeline.PreviewCampaign,
		"/rates":             rates.Rates,
		"/rates/sheet":       rates.UploadSheet,
	}
	for path, h := range routes {
		mux.Handle(path, RateLimitMiddleware(limiter, logger, h))
	}

	return mux
}
