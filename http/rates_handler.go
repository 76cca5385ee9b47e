package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"rate-tracker/domain"
	"rate-tracker/ratesheet"
	"rate-tracker/service"
)

const maxRateSheetBytes = 1 << 20

type RatesHandler struct {
	service *service.RateService
	logger  *zap.Logger
}

func NewRatesHandler(service *service.RateService, logger *zap.Logger) *RatesHandler {
	return &RatesHandler{service: service, logger: logger}
}

// Rates serves GET /rates and POST /rates. A POST body names only the
// programs to change, e.g. {"Jumbo": 6.25}.
func (h *RatesHandler) Rates(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, h.logger, http.StatusOK, newRatesResponse(h.service.Current(r.Context())))
	case http.MethodPost:
		var rates domain.MarketRateTable
		if err := decodeJSON(r, &rates); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		h.update(w, r, rates)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// UploadSheet serves POST /rates/sheet with the rate-sheet email as the body.
func (h *RatesHandler) UploadSheet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRateSheetBytes))
	if err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	rates, err := ratesheet.Parse(string(body))
	if err != nil {
		h.logger.Warn("rate sheet rejected", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.logger.Info("rate sheet parsed", zap.Any("rates", rates))

	h.update(w, r, rates)
}

func (h *RatesHandler) update(w http.ResponseWriter, r *http.Request, rates domain.MarketRateTable) {
	snapshot, err := h.service.Update(r.Context(), rates)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRate) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to update market rates", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, newRatesResponse(snapshot))
}

func decodeJSON(r *http.Request, v any) error {
	if ct := r.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "application/json") {
		return fmt.Errorf("unsupported content type %q", ct)
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
