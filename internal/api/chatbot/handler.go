package chatbot

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/shettyrawat/anjob-backend/internal/entity"
	"github.com/shettyrawat/anjob-backend/internal/pkg/logger"
	"github.com/shettyrawat/anjob-backend/internal/pkg/response"
	"github.com/shettyrawat/anjob-backend/internal/pkg/validator"
	"go.uber.org/zap"
)

type ChatbotUsecase interface {
	HandleMessage(ctx context.Context, req *entity.ChatRequest) (*entity.ChatResponse, error)
}

type Handler struct {
	usecase   ChatbotUsecase
	validator *validator.Validator
}

func NewHandler(usecase ChatbotUsecase, validator *validator.Validator) *Handler {
	return &Handler{
		usecase:   usecase,
		validator: validator,
	}
}

// Message handles POST /chatbot/message
func (h *Handler) Message(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ChatbotMessage")

	var req entity.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.validator.ValidateChat(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	reply, err := h.usecase.HandleMessage(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, reply)
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
	case errors.Is(err, entity.ErrInvalidParameter), errors.Is(err, entity.ErrMissingField):
		h.respondError(ctx, w, http.StatusBadRequest, "invalid parameter", err)
	default:
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
