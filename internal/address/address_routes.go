package address

import (
	"github.com/Latha-Maheswari/modern-buy-easy/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, jwtSecret string) {
	addresses := r.Group("/addresses")
	addresses.Use(middleware.AuthMiddleware(jwtSecret))
	{
		addresses.GET("", handler.List)
		addresses.GET("/:id", handler.GetByID)
		addresses.POST("", handler.Create)
		addresses.PATCH("/:id", handler.Update)
		addresses.DELETE("/:id", handler.Delete)
		addresses.POST("/:id/default", handler.SetDefault)
	}
}
