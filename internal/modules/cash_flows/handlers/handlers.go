// Package handlers provides HTTP handlers for cash flow forecasts.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/aristath/finwell/internal/modules/cash_flows"
	"github.com/aristath/finwell/internal/utils"
	"github.com/rs/zerolog"
)

// Handler handles cash flow HTTP requests
type Handler struct {
	service *cash_flows.Service
	log     zerolog.Logger
}

// NewHandler creates a new cash flow handler
func NewHandler(service *cash_flows.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "cash_flows").Logger(),
	}
}

// HandleGetForecast handles GET /api/cash-flows/forecast
// Query params: user_ids (comma-separated, optional), months (default 6)
func (h *Handler) HandleGetForecast(w http.ResponseWriter, r *http.Request) {
	ids, err := utils.ParseIDList(r.URL.Query().Get("user_ids"))
	if err != nil {
		http.Error(w, "Invalid user_ids parameter", http.StatusBadRequest)
		return
	}

	months := cash_flows.DefaultMonths
	if raw := r.URL.Query().Get("months"); raw != "" {
		months, err = strconv.Atoi(raw)
		if err != nil || months < 0 {
			http.Error(w, "Invalid months parameter", http.StatusBadRequest)
			return
		}
	}

	projections, err := h.service.Forecast(ids, months)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to forecast cash flow")
		http.Error(w, "Failed to forecast cash flow", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": projections,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
			"count":     len(projections),
		},
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
