package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	analyticsapi "github.com/shettyrawat/anjob-backend/internal/api/analytics"
	chatbotapi "github.com/shettyrawat/anjob-backend/internal/api/chatbot"
	"github.com/shettyrawat/anjob-backend/internal/api/docs"
	interviewapi "github.com/shettyrawat/anjob-backend/internal/api/interview"
	jobapi "github.com/shettyrawat/anjob-backend/internal/api/job"
	"github.com/shettyrawat/anjob-backend/internal/api/middleware"
	resumeapi "github.com/shettyrawat/anjob-backend/internal/api/resume"
	"go.uber.org/zap"
)

// Handlers bundles the per-domain handlers wired by the builder.
type Handlers struct {
	Interview *interviewapi.Handler
	Job       *jobapi.Handler
	Resume    *resumeapi.Handler
	Analytics *analyticsapi.Handler
	Chatbot   *chatbotapi.Handler
}

// SetupRouter creates and configures the HTTP router
func SetupRouter(h Handlers, jwtSecret string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Prometheus scrape endpoint
	r.Method(http.MethodGet, "/metrics", middleware.MetricsHandler())

	// Swagger documentation endpoints
	docs.RegisterRoutes(r)

	// Domain routes, all behind token verification
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(jwtSecret))

		interviewapi.RegisterRoutes(r, h.Interview)
		jobapi.RegisterRoutes(r, h.Job)
		resumeapi.RegisterRoutes(r, h.Resume)
		analyticsapi.RegisterRoutes(r, h.Analytics)
		chatbotapi.RegisterRoutes(r, h.Chatbot)
	})

	return r
}
