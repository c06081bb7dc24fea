package handler

import (
	"net/http"

	"storefront/internal/config"
	"storefront/internal/middleware"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/analytics（閲覧ログ、ゲストも可）
type AnalyticsHandler struct {
	uc *usecase.AnalyticsUsecase
}

func NewAnalyticsHandler(uc *usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

type LogViewRequest struct {
	ProductID       int64 `json:"product_id"`
	DurationSeconds int   `json:"duration_seconds"`
}

func (h *AnalyticsHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/api/analytics")
	g.Use(middleware.OptionalAuth(cfg))

	g.POST("/log-view", h.logView)
	g.GET("/recently-viewed", h.recentlyViewed)
}

func (h *AnalyticsHandler) logView(c echo.Context) error {
	//ゲストはnilのまま記録する
	var userID *int64
	if id, ok := getUserIDFromContext(c); ok {
		userID = &id
	}

	var req LogViewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.LogView(c.Request().Context(), userID, usecase.LogViewInput{
		ProductID:       req.ProductID,
		DurationSeconds: req.DurationSeconds,
	}); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "view logged"})
}

func (h *AnalyticsHandler) recentlyViewed(c echo.Context) error {
	//ゲストは空リスト
	userID, ok := getUserIDFromContext(c)
	if !ok {
		userID = 0
	}

	out, err := h.uc.RecentlyViewed(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
