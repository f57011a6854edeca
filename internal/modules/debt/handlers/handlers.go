// Package handlers provides HTTP handlers for debt repayment strategies.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aristath/finwell/internal/modules/debt"
	"github.com/rs/zerolog"
)

// Handler handles debt repayment HTTP requests
type Handler struct {
	service *debt.Service
	log     zerolog.Logger
}

// NewHandler creates a new debt repayment handler
func NewHandler(service *debt.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "debt").Logger(),
	}
}

// HandleGetStrategy handles GET /api/debts/strategy
// Query params: strategy (avalanche | snowball, default avalanche)
func (h *Handler) HandleGetStrategy(w http.ResponseWriter, r *http.Request) {
	strategy, err := debt.ParseStrategy(r.URL.Query().Get("strategy"))
	if errors.Is(err, debt.ErrUnknownStrategy) {
		http.Error(w, "strategy must be avalanche or snowball", http.StatusBadRequest)
		return
	}

	plans, err := h.service.PlanAll(strategy)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to build debt repayment plans")
		http.Error(w, "Unable to analyze debt repayment strategy from saved profiles", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": plans,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
			"strategy":  strategy,
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
