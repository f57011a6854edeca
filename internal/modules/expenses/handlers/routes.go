package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes registers expense analysis routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/expenses", func(r chi.Router) {
		r.Get("/analysis", h.HandleGetAnalysis)
	})
}
