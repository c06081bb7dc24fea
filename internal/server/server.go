package server

import (
	"storefront/internal/config"
	"storefront/internal/handler"
	appmw "storefront/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Handlers はルート登録に必要なhandler一式
type Handlers struct {
	Product   *handler.ProductHandler
	Shipping  *handler.ShippingHandler
	Cart      *handler.CartHandler
	Order     *handler.OrderHandler
	User      *handler.UserHandler
	Review    *handler.ReviewHandler
	Wishlist  *handler.WishlistHandler
	Analytics *handler.AnalyticsHandler
}

func Start(cfg config.Config, h Handlers) error {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(appmw.RequestLog())

	RegisterRoutes(e, cfg, h)

	return e.Start(":" + cfg.Port)
}
