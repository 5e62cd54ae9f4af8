package resume

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers resume analysis routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/resumes", func(r chi.Router) {
		r.Post("/analyze", h.AnalyzeResume)
		r.Get("/", h.ListResumes)

		r.Route("/{resume_id}", func(r chi.Router) {
			r.Get("/", h.GetResume)
			r.Delete("/", h.DeleteResume)
			r.Get("/export", h.ExportResume)
		})
	})
}
