package customer

import (
	"github.com/Latha-Maheswari/modern-buy-easy/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, jwtSecret string) {
	customers := r.Group("/customers")
	customers.Use(middleware.AuthMiddleware(jwtSecret))
	{
		customers.GET("/me", handler.GetProfile)
		customers.PATCH("/me", middleware.RateLimitByUser(1, 3), handler.UpdateProfile)
		customers.PATCH("/me/notifications", handler.UpdateNotifications)
	}
}
