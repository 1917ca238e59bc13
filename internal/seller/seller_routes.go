package seller

import (
	"github.com/Latha-Maheswari/modern-buy-easy/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, jwtSecret string) {
	sellers := r.Group("/seller")
	sellers.Use(
		middleware.AuthMiddleware(jwtSecret),
		middleware.RoleMiddleware("SELLER"),
	)
	{
		sellers.GET("/stats", handler.Stats)

		sellers.GET("/products", handler.List)
		sellers.GET("/products/export", handler.ExportCSV)
		sellers.GET("/products/:id", handler.GetByID)
		sellers.POST("/products", handler.Create)
		sellers.PATCH("/products/:id", handler.Update)
		sellers.DELETE("/products/:id", handler.Delete)
		sellers.POST("/products/:id/image", handler.UploadImage)
	}
}
