package job

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers job tracking routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/jobs", func(r chi.Router) {
		r.Post("/", h.CreateJob)
		r.Get("/", h.ListJobs)

		r.Route("/{job_id}", func(r chi.Router) {
			r.Get("/", h.GetJob)
			r.Put("/", h.UpdateJob)
			r.Delete("/", h.DeleteJob)
		})
	})
}
