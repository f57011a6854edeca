// Package handlers provides HTTP handlers for budgeting operations.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aristath/finwell/internal/modules/budgeting"
	"github.com/rs/zerolog"
)

// Handler handles budgeting HTTP requests
type Handler struct {
	service *budgeting.Service
	log     zerolog.Logger
}

// NewHandler creates a new budgeting handler
func NewHandler(service *budgeting.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "budgeting").Logger(),
	}
}

// HandleGetBudget handles GET /api/budget
// Builds the allocation plan for the most recently saved profile
func (h *Handler) HandleGetBudget(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.AnalyzeLatest()
	if errors.Is(err, budgeting.ErrNoProfile) {
		http.Error(w, "No saved financial profile found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to build budget")
		http.Error(w, "Failed to build budget", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": report,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
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
