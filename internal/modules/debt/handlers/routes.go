package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes registers debt repayment routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/debts", func(r chi.Router) {
		r.Get("/strategy", h.HandleGetStrategy)
	})
}
