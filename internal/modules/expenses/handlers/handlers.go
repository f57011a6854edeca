// Package handlers provides HTTP handlers for expense analysis.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/aristath/finwell/internal/modules/expenses"
	"github.com/rs/zerolog"
)

// Handler handles expense analysis HTTP requests
type Handler struct {
	service *expenses.Service
	log     zerolog.Logger
}

// NewHandler creates a new expense analysis handler
func NewHandler(service *expenses.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "expenses").Logger(),
	}
}

// HandleGetAnalysis handles GET /api/expenses/analysis
func (h *Handler) HandleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	results, err := h.service.AnalyzeAll()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to analyze expenses")
		http.Error(w, "Unable to analyze expenses from saved profiles", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": results,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
			"count":     len(results),
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
