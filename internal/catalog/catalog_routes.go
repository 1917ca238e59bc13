package catalog

import (
	"github.com/gin-gonic/gin"
)

// Catalog reads are public: browsing does not require login.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	products := r.Group("/products")
	{
		products.GET("", handler.List)
		products.GET("/search", handler.Search)
		products.GET("/featured", handler.Featured)
		products.GET("/new-arrivals", handler.NewArrivals)
		products.GET("/:id", handler.Detail)
	}

	categories := r.Group("/categories")
	{
		categories.GET("", handler.Categories)
		categories.GET("/:category/products", handler.ByCategory)
	}

	r.GET("/home", handler.Home)
}
