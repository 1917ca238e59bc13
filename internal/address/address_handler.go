package address

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

// GET /addresses
func (h *Handler) List(c *gin.Context) {
	userID := c.GetString("user_id")

	res, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

// GET /addresses/:id
func (h *Handler) GetByID(c *gin.Context) {
	userID := c.GetString("user_id")
	addressID := c.Param("id")

	res, err := h.service.GetByID(c.Request.Context(), userID, addressID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

// POST /addresses
func (h *Handler) Create(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid request body", err.Error())
		return
	}

	res, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusCreated, res, nil)
}

// PATCH /addresses/:id
func (h *Handler) Update(c *gin.Context) {
	userID := c.GetString("user_id")
	addressID := c.Param("id")

	var req UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid request body", err.Error())
		return
	}

	res, err := h.service.Update(c.Request.Context(), userID, addressID, req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

// DELETE /addresses/:id
func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetString("user_id")
	addressID := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), userID, addressID); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Address deleted"}, nil)
}

// POST /addresses/:id/default
func (h *Handler) SetDefault(c *gin.Context) {
	userID := c.GetString("user_id")
	addressID := c.Param("id")

	res, err := h.service.SetDefault(c.Request.Context(), userID, addressID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}
