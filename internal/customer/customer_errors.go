package customer

import (
	"net/http"

	"github.com/Latha-Maheswari/modern-buy-easy/internal/pkg/apperror"
)

var (
	ErrCurrentPasswordRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Current password is required to set a new password",
		http.StatusBadRequest,
	)

	ErrCurrentPasswordWrong = apperror.New(
		apperror.CodeUnauthorized,
		"Current password is incorrect",
		http.StatusUnauthorized,
	)

	ErrProfileUpdateFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to update profile",
		http.StatusInternalServerError,
	)
)
