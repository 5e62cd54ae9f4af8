package chatbot

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers chatbot routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/chatbot", func(r chi.Router) {
		r.Post("/message", h.Message)
	})
}
