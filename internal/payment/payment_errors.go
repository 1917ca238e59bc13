package payment

import (
	"net/http"

	"github.com/Latha-Maheswari/modern-buy-easy/internal/pkg/apperror"
)

var (
	ErrMethodNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payment method not found",
		http.StatusNotFound,
	)

	ErrInvalidInput = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid payment method data",
		http.StatusBadRequest,
	)

	ErrPaymentDeclined = apperror.New(
		apperror.CodePrecondition,
		"Payment was declined by the gateway",
		http.StatusUnprocessableEntity,
	)

	ErrPaymentFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to process payment operation",
		http.StatusInternalServerError,
	)
)
