package payment

import (
	"github.com/Latha-Maheswari/modern-buy-easy/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, jwtSecret string) {
	methods := r.Group("/payment-methods")
	methods.Use(middleware.AuthMiddleware(jwtSecret))
	{
		methods.GET("", handler.List)
		methods.POST("", middleware.RateLimitByUser(1, 3), handler.Add)
		methods.DELETE("/:id", handler.Delete)
		methods.POST("/:id/default", handler.SetDefault)
	}
}
