// Package handlers provides HTTP handlers for net worth calculations.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/aristath/finwell/internal/modules/networth"
	"github.com/aristath/finwell/internal/validation"
	"github.com/rs/zerolog"
)

// Handler handles net worth HTTP requests
type Handler struct {
	log zerolog.Logger
}

// NewHandler creates a new net worth handler
func NewHandler(log zerolog.Logger) *Handler {
	return &Handler{
		log: log.With().Str("handler", "networth").Logger(),
	}
}

// HandleCalculate handles POST /api/net-worth
func (h *Handler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	var req networth.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validation.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary := networth.Calculate(req.Assets, req.Liabilities)

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": summary,
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
