package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes registers budgeting routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/budget", h.HandleGetBudget)
}
