package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes registers cash flow routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/cash-flows", func(r chi.Router) {
		r.Get("/forecast", h.HandleGetForecast)
	})
}
