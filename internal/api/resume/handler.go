package resume

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
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
	usecase   ResumeUsecase
	validator *validator.Validator
}

func NewHandler(usecase ResumeUsecase, validator *validator.Validator) *Handler {
	return &Handler{
		usecase:   usecase,
		validator: validator,
	}
}

// AnalyzeResume handles POST /resumes/analyze
func (h *Handler) AnalyzeResume(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "AnalyzeResume")

	var req entity.AnalyzeResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.validator.ValidateAnalyzeResume(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	resume, err := h.usecase.AnalyzeResume(ctx, middleware.OwnerID(ctx), &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "resume analyzed",
		zap.String("resume_id", resume.ID),
		zap.Int("ats_score", resume.Analysis.ATSScore),
	)
	response.Created(w, resume)
}

// ListResumes handles GET /resumes
func (h *Handler) ListResumes(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListResumes")

	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	resumes, err := h.usecase.ListResumes(ctx, middleware.OwnerID(ctx), skip, limit)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Debug(ctx, "resumes listed", zap.Int("count", len(resumes)))
	response.Success(w, map[string]any{"resumes": resumes})
}

// GetResume handles GET /resumes/{resume_id}
func (h *Handler) GetResume(w http.ResponseWriter, r *http.Request) {
	resumeID := chi.URLParam(r, "resume_id")
	ctx := logger.AddFields(r.Context(),
		zap.String("resume_id", resumeID),
		zap.String("action", "GetResume"),
	)

	resume, err := h.usecase.GetResume(ctx, middleware.OwnerID(ctx), resumeID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, resume)
}

// DeleteResume handles DELETE /resumes/{resume_id}
func (h *Handler) DeleteResume(w http.ResponseWriter, r *http.Request) {
	resumeID := chi.URLParam(r, "resume_id")
	ctx := logger.AddFields(r.Context(),
		zap.String("resume_id", resumeID),
		zap.String("action", "DeleteResume"),
	)

	if err := h.usecase.DeleteResume(ctx, middleware.OwnerID(ctx), resumeID); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "resume deleted")
	w.WriteHeader(http.StatusNoContent)
}

// ExportResume handles GET /resumes/{resume_id}/export?format=
func (h *Handler) ExportResume(w http.ResponseWriter, r *http.Request) {
	resumeID := chi.URLParam(r, "resume_id")
	format := entity.ResultFormat(r.URL.Query().Get("format"))
	ctx := logger.AddFields(r.Context(),
		zap.String("resume_id", resumeID),
		zap.String("format", string(format)),
		zap.String("action", "ExportResume"),
	)

	result, err := h.usecase.ExportResume(ctx, middleware.OwnerID(ctx), resumeID, format)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "resume exported", zap.Int("bytes", len(result.Data)))

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write(result.Data)
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
	case errors.Is(err, entity.ErrResumeNotFound):
		h.respondError(ctx, w, http.StatusNotFound, "resume not found", err)
	case errors.Is(err, entity.ErrNoOptimizedResume):
		h.respondError(ctx, w, http.StatusConflict, "optimized resume not available", err)
	case errors.Is(err, entity.ErrUnsupportedFormat), errors.Is(err, entity.ErrInvalidFormat):
		h.respondError(ctx, w, http.StatusBadRequest, "unsupported export format", err)
	case errors.Is(err, entity.ErrInvalidParameter), errors.Is(err, entity.ErrMissingField):
		h.respondError(ctx, w, http.StatusBadRequest, "invalid parameter", err)
	default:
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
