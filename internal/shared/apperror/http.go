package apperror

import (
	"errors"
	"net/http"
)

// HTTPError is the wire form of any failure: {"error": <status>, "message": <text>}.
type HTTPError struct {
	Status  int    `json:"error"`
	Message string `json:"message"`
}

// ToHTTP converts any error into its wire form. AppErrors keep their
// status and message; everything else defaults to 500 with the raw
// message exposed.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Message: appErr.Message,
		}
	}
	return HTTPError{
		Status:  http.StatusInternalServerError,
		Message: err.Error(),
	}
}

// RequiredField builds the 400 error for a missing required field
func RequiredField(field string) *AppError {
	return New(
		CodeInvalidInput,
		field+" must be provided",
		http.StatusBadRequest,
	)
}

// InvalidField builds the 400 error for a field that failed validation
func InvalidField(field string) *AppError {
	return New(
		CodeInvalidInput,
		field+" is invalid",
		http.StatusBadRequest,
	)
}
