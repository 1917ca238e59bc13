package cart

import (
	"net/http"

	"github.com/Latha-Maheswari/modern-buy-easy/internal/pkg/apperror"
)

var (
	ErrProductNotFound = apperror.New(
		apperror.CodeNotFound,
		"Product not found",
		http.StatusNotFound,
	)

	ErrProductOutOfStock = apperror.New(
		apperror.CodeConflict,
		"Product is out of stock",
		http.StatusConflict,
	)

	ErrInvalidInput = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid request body",
		http.StatusBadRequest,
	)

	ErrCartFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to process cart operation",
		http.StatusInternalServerError,
	)
)
