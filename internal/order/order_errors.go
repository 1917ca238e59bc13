package order

import (
	"net/http"

	"github.com/Latha-Maheswari/modern-buy-easy/internal/pkg/apperror"
)

var (
	ErrEmptyCart = apperror.New(
		apperror.CodePrecondition,
		"Your cart is empty",
		http.StatusUnprocessableEntity,
	)

	ErrAddressRequired = apperror.New(
		apperror.CodePrecondition,
		"Please select a delivery address",
		http.StatusUnprocessableEntity,
	)

	ErrPaymentMethodRequired = apperror.New(
		apperror.CodePrecondition,
		"Please select a payment method",
		http.StatusUnprocessableEntity,
	)

	ErrOrderNotFound = apperror.New(
		apperror.CodeNotFound,
		"Order not found",
		http.StatusNotFound,
	)

	ErrCannotCancel = apperror.New(
		apperror.CodeConflict,
		"Order can no longer be cancelled",
		http.StatusConflict,
	)

	ErrCheckoutFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to place order",
		http.StatusInternalServerError,
	)
)
