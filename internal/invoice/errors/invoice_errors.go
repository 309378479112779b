package invoiceerrors

import (
	"fmt"
	"net/http"

	"biztime/internal/shared/apperror"
)

var ErrMissingRequiredFields = apperror.New(
	apperror.CodeInvalidInput,
	"comp_code and amt must be provided",
	http.StatusBadRequest,
)

// NotFound keeps the raw path parameter in the message so a
// non-numeric id reads the same as an unknown one.
func NotFound(id string) *apperror.AppError {
	return apperror.New(
		apperror.CodeNotFound,
		fmt.Sprintf("Can't find invoice with id: %s", id),
		http.StatusNotFound,
	)
}
