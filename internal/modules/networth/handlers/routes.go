package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes registers net worth routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/net-worth", h.HandleCalculate)
}
