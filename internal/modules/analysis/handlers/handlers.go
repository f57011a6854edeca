// Package handlers provides HTTP handlers for profile submission and analysis.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aristath/finwell/internal/domain"
	"github.com/aristath/finwell/internal/modules/analysis"
	"github.com/aristath/finwell/internal/modules/profiles"
	"github.com/aristath/finwell/internal/validation"
	"github.com/rs/zerolog"
)

// Handler handles profile HTTP requests
type Handler struct {
	service *analysis.Service
	log     zerolog.Logger
}

// NewHandler creates a new profile analysis handler
func NewHandler(service *analysis.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "profiles").Logger(),
	}
}

// HandleSubmit handles POST /api/profiles
// Saves the profile and returns its risk analysis
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var p domain.FinancialProfile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	report, err := h.service.Submit(p)
	if errors.Is(err, validation.ErrInvalid) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to submit profile")
		http.Error(w, "Failed to save profile", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusCreated, envelope(report))
}

// HandleGenerate handles POST /api/profiles/random
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.GenerateAndAnalyze(r.Context())
	if errors.Is(err, analysis.ErrGenerationFailed) {
		http.Error(w, analysis.GenerationFailedMessage, http.StatusBadGateway)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to generate profile")
		http.Error(w, "Failed to generate profile", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusCreated, envelope(report))
}

// HandleList handles GET /api/profiles
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	all, err := h.service.List()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list profiles")
		http.Error(w, "Failed to list profiles", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, envelope(all))
}

// HandleLatest handles GET /api/profiles/latest
func (h *Handler) HandleLatest(w http.ResponseWriter, r *http.Request) {
	latest, err := h.service.Latest()
	if errors.Is(err, profiles.ErrNotFound) {
		http.Error(w, "No saved financial profile found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load latest profile")
		http.Error(w, "Failed to load latest profile", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, envelope(latest))
}

func envelope(data interface{}) map[string]interface{} {
	return map[string]interface{}{
		"data": data,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
