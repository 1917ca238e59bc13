package wishlist

import (
	"github.com/Latha-Maheswari/modern-buy-easy/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, jwtSecret string) {
	wishlists := r.Group("/wishlist")
	wishlists.Use(middleware.AuthMiddleware(jwtSecret))
	{
		wishlists.GET("", handler.List)
		wishlists.POST("/items", handler.Add)
		wishlists.GET("/items/:productId", handler.Contains)
		wishlists.DELETE("/items/:productId", handler.Remove)
	}
}
