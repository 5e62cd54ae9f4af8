package interview

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers interview routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/interviews", func(r chi.Router) {
		r.Post("/start", h.StartInterview)
		r.Get("/", h.ListInterviews)

		r.Route("/adaptive", func(r chi.Router) {
			r.Post("/start", h.StartAdaptiveInterview)
			r.Post("/{interview_id}/step", h.SubmitAdaptiveAnswer)
		})

		r.Route("/{interview_id}", func(r chi.Router) {
			r.Get("/", h.GetInterview)
			r.Post("/answer", h.SubmitAnswer)
		})
	})
}
