package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes registers profile routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/profiles", func(r chi.Router) {
		r.Get("/", h.HandleList)
		r.Post("/", h.HandleSubmit)
		r.Get("/latest", h.HandleLatest)
		r.Post("/random", h.HandleGenerate)
	})
}
