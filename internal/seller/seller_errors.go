package seller

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

	ErrInvalidInput = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid product data",
		http.StatusBadRequest,
	)

	ErrImageTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"Image exceeds the 5 MB limit",
		http.StatusBadRequest,
	)

	ErrUnsupportedImageType = apperror.New(
		apperror.CodeInvalidInput,
		"Only JPEG, PNG and WebP images are accepted",
		http.StatusBadRequest,
	)

	ErrSellerFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to process seller operation",
		http.StatusInternalServerError,
	)
)
