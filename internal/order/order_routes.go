package order

import (
	"time"

	"github.com/Latha-Maheswari/modern-buy-easy/internal/middleware"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/shared/cache"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, jwtSecret string, c cache.Cache) {
	orders := r.Group("/orders")
	orders.Use(middleware.AuthMiddleware(jwtSecret))
	{
		orders.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Idempotency(c, "checkout", 2*time.Minute),
			handler.Checkout,
		)
		orders.GET("", handler.List)
		orders.GET("/:id", handler.Detail)
		orders.POST("/:id/cancel", middleware.RateLimitByUser(1, 2), handler.Cancel)
	}
}
