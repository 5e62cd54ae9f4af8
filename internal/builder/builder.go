package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shettyrawat/anjob-backend/internal/api"
	analyticsapi "github.com/shettyrawat/anjob-backend/internal/api/analytics"
	chatbotapi "github.com/shettyrawat/anjob-backend/internal/api/chatbot"
	interviewapi "github.com/shettyrawat/anjob-backend/internal/api/interview"
	jobapi "github.com/shettyrawat/anjob-backend/internal/api/job"
	resumeapi "github.com/shettyrawat/anjob-backend/internal/api/resume"
	"github.com/shettyrawat/anjob-backend/internal/config"
	"github.com/shettyrawat/anjob-backend/internal/integration/ai"
	"github.com/shettyrawat/anjob-backend/internal/pkg/formatter"
	"github.com/shettyrawat/anjob-backend/internal/pkg/validator"
	"github.com/shettyrawat/anjob-backend/internal/repository"
	"github.com/shettyrawat/anjob-backend/internal/usecase/analytics"
	"github.com/shettyrawat/anjob-backend/internal/usecase/chatbot"
	"github.com/shettyrawat/anjob-backend/internal/usecase/interview"
	"github.com/shettyrawat/anjob-backend/internal/usecase/job"
	"github.com/shettyrawat/anjob-backend/internal/usecase/resume"
	"go.uber.org/zap"
)

// aiGateway is the full provider surface shared by the usecases.
type aiGateway interface {
	interview.AIGateway
	resume.AIGateway
	chatbot.AIGateway
}

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Setup database connection
	db, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}

	// Run database migrations
	logger.Info("Running database migrations")
	if err := repository.RunMigrations(cfg.DatabaseURL); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	// Initialize repositories
	interviewRepo := repository.NewInterviewPostgres(db)
	jobRepo := repository.NewJobPostgres(db)
	resumeRepo := repository.NewResumePostgres(db)
	analyticsRepo := repository.NewAnalyticsPostgres(db)
	logger.Info("Repositories initialized")

	// Initialize the AI connector (with mock support)
	var gateway aiGateway
	if cfg.EnableMocks {
		logger.Info("Using mock AI connector")
		gateway = ai.NewMockConnector(logger)
	} else {
		logger.Info("Using real AI connector")
		gateway = ai.NewConnector(cfg.AICfg, logger)
	}

	// Initialize validators and formatters
	requestValidator := validator.New()
	formatterFactory := formatter.NewFactory()

	// Initialize use cases
	interviewUC := interview.NewUsecase(interviewRepo, gateway, cfg.InterviewCfg, logger)
	jobUC := job.NewUsecase(jobRepo, logger)
	resumeUC := resume.NewUsecase(resumeRepo, gateway, formatterFactory, logger)
	analyticsUC := analytics.NewUsecase(analyticsRepo, cfg.AnalyticsCacheTTL, logger)
	chatbotUC := chatbot.NewUsecase(gateway, logger)
	logger.Info("Use cases initialized")

	// Setup API handlers
	handlers := api.Handlers{
		Interview: interviewapi.NewHandler(interviewUC, requestValidator),
		Job:       jobapi.NewHandler(jobUC, requestValidator),
		Resume:    resumeapi.NewHandler(resumeUC, requestValidator),
		Analytics: analyticsapi.NewHandler(analyticsUC),
		Chatbot:   chatbotapi.NewHandler(chatbotUC, requestValidator),
	}
	logger.Info("API handlers initialized")

	// Setup router
	router := api.SetupRouter(handlers, cfg.JWTSecret, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		db:     db,
		logger: logger,
	}, nil
}
