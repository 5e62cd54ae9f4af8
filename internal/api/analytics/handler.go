package analytics

import (
	"context"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/shettyrawat/anjob-backend/internal/api/middleware"
	"github.com/shettyrawat/anjob-backend/internal/entity"
	"github.com/shettyrawat/anjob-backend/internal/pkg/logger"
	"github.com/shettyrawat/anjob-backend/internal/pkg/response"
	"go.uber.org/zap"
)

type AnalyticsUsecase interface {
	Dashboard(ctx context.Context, ownerID string) (*entity.DashboardStats, error)
}

type Handler struct {
	usecase AnalyticsUsecase
}

func NewHandler(usecase AnalyticsUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// Dashboard handles GET /analytics/dashboard
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Dashboard")

	stats, err := h.usecase.Dashboard(ctx, middleware.OwnerID(ctx))
	if err != nil {
		ctxzap.Error(ctx, "failed to compute dashboard stats", zap.Error(err))
		response.JSON(w, http.StatusInternalServerError, entity.ErrorResponse{
			Error:   http.StatusText(http.StatusInternalServerError),
			Message: "internal server error",
		})
		return
	}

	response.Success(w, stats)
}
