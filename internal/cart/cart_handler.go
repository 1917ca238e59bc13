package cart

import (
	"net/http"

	"github.com/Latha-Maheswari/modern-buy-easy/internal/pkg/apperror"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{service: svc}
}

// GET /cart
func (h *Handler) Detail(c *gin.Context) {
	userID := c.GetString("user_id")

	res, err := h.service.Detail(c.Request.Context(), userID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

// GET /cart/count
func (h *Handler) Count(c *gin.Context) {
	userID := c.GetString("user_id")

	count, err := h.service.Count(c.Request.Context(), userID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, CountResponse{Count: count}, nil)
}

// POST /cart/items
func (h *Handler) AddItem(c *gin.Context) {
	userID := c.GetString("user_id")

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid request body", err.Error())
		return
	}

	if err := h.service.AddItem(c.Request.Context(), userID, req); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Added to cart",
	}, nil)
}

// PATCH /cart/items/:productId
func (h *Handler) UpdateQty(c *gin.Context) {
	userID := c.GetString("user_id")
	productID := c.Param("productId")

	var req UpdateQtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid request body", err.Error())
		return
	}

	if err := h.service.UpdateQty(c.Request.Context(), userID, productID, req); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Quantity updated"}, nil)
}

// POST /cart/items/:productId/increment
func (h *Handler) Increment(c *gin.Context) {
	userID := c.GetString("user_id")
	productID := c.Param("productId")

	if err := h.service.Increment(c.Request.Context(), userID, productID); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Quantity updated"}, nil)
}

// POST /cart/items/:productId/decrement
func (h *Handler) Decrement(c *gin.Context) {
	userID := c.GetString("user_id")
	productID := c.Param("productId")

	if err := h.service.Decrement(c.Request.Context(), userID, productID); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Quantity updated"}, nil)
}

// DELETE /cart/items/:productId
func (h *Handler) RemoveItem(c *gin.Context) {
	userID := c.GetString("user_id")
	productID := c.Param("productId")

	if err := h.service.RemoveItem(c.Request.Context(), userID, productID); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Removed from cart"}, nil)
}

// DELETE /cart
func (h *Handler) Clear(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.service.Clear(c.Request.Context(), userID); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Cart cleared"}, nil)
}
