package job

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/shettyrawat/anjob-backend/internal/api/middleware"
	"github.com/shettyrawat/anjob-backend/internal/entity"
	"github.com/shettyrawat/anjob-backend/internal/pkg/logger"
	"github.com/shettyrawat/anjob-backend/internal/pkg/response"
	"github.com/shettyrawat/anjob-backend/internal/pkg/validator"
	"go.uber.org/zap"
)

type Handler struct {
	usecase   JobUsecase
	validator *validator.Validator
}

func NewHandler(usecase JobUsecase, validator *validator.Validator) *Handler {
	return &Handler{
		usecase:   usecase,
		validator: validator,
	}
}

// CreateJob handles POST /jobs
func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "CreateJob")

	var req entity.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.validator.ValidateCreateJob(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	job, err := h.usecase.CreateJob(ctx, middleware.OwnerID(ctx), &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "job created", zap.String("job_id", job.ID))
	response.Created(w, job)
}

// ListJobs handles GET /jobs
func (h *Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListJobs")

	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	jobs, err := h.usecase.ListJobs(ctx, middleware.OwnerID(ctx), skip, limit)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Debug(ctx, "jobs listed", zap.Int("count", len(jobs)))
	response.Success(w, map[string]any{"jobs": jobs})
}

// GetJob handles GET /jobs/{job_id}
func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "job_id")
	ctx := logger.AddFields(r.Context(),
		zap.String("job_id", jobID),
		zap.String("action", "GetJob"),
	)

	job, err := h.usecase.GetJob(ctx, middleware.OwnerID(ctx), jobID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, job)
}

// UpdateJob handles PUT /jobs/{job_id}
func (h *Handler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "job_id")
	ctx := logger.AddFields(r.Context(),
		zap.String("job_id", jobID),
		zap.String("action", "UpdateJob"),
	)

	var req entity.UpdateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.validator.ValidateUpdateJob(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	job, err := h.usecase.UpdateJob(ctx, middleware.OwnerID(ctx), jobID, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "job updated", zap.String("status", string(job.Status)))
	response.Success(w, job)
}

// DeleteJob handles DELETE /jobs/{job_id}
func (h *Handler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "job_id")
	ctx := logger.AddFields(r.Context(),
		zap.String("job_id", jobID),
		zap.String("action", "DeleteJob"),
	)

	if err := h.usecase.DeleteJob(ctx, middleware.OwnerID(ctx), jobID); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "job deleted")
	response.Success(w, map[string]string{"status": "deleted"})
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		ctxzap.Error(ctx, message, zap.Error(err))
	} else {
		ctxzap.Error(ctx, message)
	}
	response.JSON(w, status, entity.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrJobNotFound):
		h.respondError(ctx, w, http.StatusNotFound, "job not found", err)
	case errors.Is(err, entity.ErrInvalidParameter), errors.Is(err, entity.ErrMissingField):
		h.respondError(ctx, w, http.StatusBadRequest, "invalid parameter", err)
	default:
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
