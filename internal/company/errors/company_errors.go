package companyerrors

import (
	"fmt"
	"net/http"

	"biztime/internal/shared/apperror"
)

var (
	ErrCompanyAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Company with the same code already exists",
		http.StatusConflict,
	)

	ErrIndustryAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Industry with the same code already exists",
		http.StatusConflict,
	)

	ErrMissingRequiredFields = apperror.New(
		apperror.CodeInvalidInput,
		"Name and Code must be provided",
		http.StatusBadRequest,
	)
)

// NotFound carries the requested code in the message, matching the
// lookup-by-code contract.
func NotFound(code string) *apperror.AppError {
	return apperror.New(
		apperror.CodeNotFound,
		fmt.Sprintf("Can't find company with code: %s", code),
		http.StatusNotFound,
	)
}
