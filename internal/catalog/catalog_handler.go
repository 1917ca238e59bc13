package catalog

import (
	"net/http"

	"github.com/Latha-Maheswari/modern-buy-easy/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{service: svc}
}

// GET /products
func (h *Handler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.List(c.Request.Context()), nil)
}

// GET /products/:id
func (h *Handler) Detail(c *gin.Context) {
	id := c.Param("id")

	p, ok := h.service.GetByID(c.Request.Context(), id)
	if !ok {
		response.Error(c, ErrProductNotFound.HTTPStatus, ErrProductNotFound.Code, ErrProductNotFound.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, p, nil)
}

// GET /products/featured
func (h *Handler) Featured(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Featured(c.Request.Context()), nil)
}

// GET /products/new-arrivals
func (h *Handler) NewArrivals(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.NewArrivals(c.Request.Context()), nil)
}

// GET /products/search?q=
func (h *Handler) Search(c *gin.Context) {
	q := c.Query("q")
	response.Success(c, http.StatusOK, h.service.Search(c.Request.Context(), q), nil)
}

// GET /categories
func (h *Handler) Categories(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Categories(c.Request.Context()), nil)
}

// GET /categories/:category/products
func (h *Handler) ByCategory(c *gin.Context) {
	category := c.Param("category")
	response.Success(c, http.StatusOK, h.service.GetByCategory(c.Request.Context(), category), nil)
}

// GET /home
func (h *Handler) Home(c *gin.Context) {
	feed, err := h.service.HomeFeed(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FAILED", "Failed to load home feed", nil)
		return
	}
	response.Success(c, http.StatusOK, feed, nil)
}
