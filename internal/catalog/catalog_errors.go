package catalog

import (
	"net/http"

	"github.com/Latha-Maheswari/modern-buy-easy/internal/pkg/apperror"
)

var ErrProductNotFound = apperror.New(
	apperror.CodeNotFound,
	"Product not found",
	http.StatusNotFound,
)
