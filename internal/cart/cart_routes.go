package cart

import (
	"github.com/Latha-Maheswari/modern-buy-easy/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, jwtSecret string) {
	carts := r.Group("/cart")
	carts.Use(middleware.AuthMiddleware(jwtSecret))
	{
		carts.GET("", handler.Detail)
		carts.GET("/count", handler.Count)
		carts.DELETE("", handler.Clear)

		// Item actions get a tighter limit to absorb double taps.
		itemActionLimit := middleware.RateLimitByUser(5, 10)

		carts.POST("/items", itemActionLimit, handler.AddItem)
		carts.PATCH("/items/:productId", itemActionLimit, handler.UpdateQty)
		carts.POST("/items/:productId/increment", itemActionLimit, handler.Increment)
		carts.POST("/items/:productId/decrement", itemActionLimit, handler.Decrement)
		carts.DELETE("/items/:productId", itemActionLimit, handler.RemoveItem)
	}
}
