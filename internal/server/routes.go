package server

import (
	"net/http"
	"time"

	"storefront/internal/config"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes は全ハンドラのルートを登録する
func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	h.Product.RegisterRoutes(e, cfg)
	h.Shipping.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e, cfg)
	h.Order.RegisterRoutes(e, cfg)
	h.User.RegisterRoutes(e, cfg)
	h.Review.RegisterRoutes(e, cfg)
	h.Wishlist.RegisterRoutes(e, cfg)
	h.Analytics.RegisterRoutes(e, cfg)
}
