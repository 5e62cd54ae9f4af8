package interview

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
	usecase   InterviewUsecase
	validator *validator.Validator
}

func NewHandler(usecase InterviewUsecase, validator *validator.Validator) *Handler {
	return &Handler{
		usecase:   usecase,
		validator: validator,
	}
}

// StartInterview handles POST /interviews/start
func (h *Handler) StartInterview(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "StartInterview")

	var req entity.StartInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.validator.ValidateStartInterview(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	interview, err := h.usecase.StartInterview(ctx, middleware.OwnerID(ctx), &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "interview started", zap.String("interview_id", interview.ID))
	response.Created(w, interview)
}

// StartAdaptiveInterview handles POST /interviews/adaptive/start
func (h *Handler) StartAdaptiveInterview(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "StartAdaptiveInterview")

	var req entity.StartInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.validator.ValidateStartInterview(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	interview, err := h.usecase.StartAdaptiveInterview(ctx, middleware.OwnerID(ctx), &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "adaptive interview started", zap.String("interview_id", interview.ID))
	response.Created(w, interview)
}

// SubmitAnswer handles POST /interviews/{interview_id}/answer
func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	interviewID := chi.URLParam(r, "interview_id")
	ctx := logger.AddFields(r.Context(),
		zap.String("interview_id", interviewID),
		zap.String("action", "SubmitAnswer"),
	)

	var req entity.SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.validator.ValidateSubmitAnswer(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	interview, err := h.usecase.SubmitAnswer(ctx, middleware.OwnerID(ctx), interviewID, *req.QuestionIndex, req.Answer)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "answer accepted", zap.String("status", string(interview.Status)))
	response.Success(w, interview)
}

// SubmitAdaptiveAnswer handles POST /interviews/adaptive/{interview_id}/step
func (h *Handler) SubmitAdaptiveAnswer(w http.ResponseWriter, r *http.Request) {
	interviewID := chi.URLParam(r, "interview_id")
	ctx := logger.AddFields(r.Context(),
		zap.String("interview_id", interviewID),
		zap.String("action", "SubmitAdaptiveAnswer"),
	)

	var req entity.SubmitAdaptiveAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.validator.ValidateSubmitAdaptiveAnswer(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	interview, err := h.usecase.SubmitAdaptiveAnswer(ctx, middleware.OwnerID(ctx), interviewID, req.Answer)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "adaptive answer accepted", zap.String("status", string(interview.Status)))
	response.Success(w, interview)
}

// GetInterview handles GET /interviews/{interview_id}
func (h *Handler) GetInterview(w http.ResponseWriter, r *http.Request) {
	interviewID := chi.URLParam(r, "interview_id")
	ctx := logger.AddFields(r.Context(),
		zap.String("interview_id", interviewID),
		zap.String("action", "GetInterview"),
	)

	interview, err := h.usecase.GetInterview(ctx, middleware.OwnerID(ctx), interviewID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, interview)
}

// ListInterviews handles GET /interviews
func (h *Handler) ListInterviews(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListInterviews")

	skip, limit := pagination(r)

	interviews, err := h.usecase.ListInterviews(ctx, middleware.OwnerID(ctx), skip, limit)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Debug(ctx, "interviews listed", zap.Int("count", len(interviews)))
	response.Success(w, map[string]any{"interviews": interviews})
}

func pagination(r *http.Request) (skip, limit int) {
	skip, _ = strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))

	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	return skip, limit
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
	case errors.Is(err, entity.ErrInterviewNotFound):
		h.respondError(ctx, w, http.StatusNotFound, "interview not found", err)
	case errors.Is(err, entity.ErrInterviewCompleted), errors.Is(err, entity.ErrInterviewConflict):
		h.respondError(ctx, w, http.StatusConflict, "interview no longer accepts this action", err)
	case errors.Is(err, entity.ErrInvalidParameter), errors.Is(err, entity.ErrMissingField):
		h.respondError(ctx, w, http.StatusBadRequest, "invalid parameter", err)
	default:
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
