package address

import (
	"net/http"

	"github.com/Latha-Maheswari/modern-buy-easy/internal/pkg/apperror"
)

var (
	ErrAddressNotFound = apperror.New(
		apperror.CodeNotFound,
		"Address not found",
		http.StatusNotFound,
	)

	ErrInvalidInput = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid address data",
		http.StatusBadRequest,
	)

	ErrAddressFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to process address operation",
		http.StatusInternalServerError,
	)
)
