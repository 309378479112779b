package apperror_test

import (
	"errors"
	"net/http"
	"testing"

	"biztime/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("AppError keeps its status and message", func(t *testing.T) {
		err := apperror.New(apperror.CodeNotFound, "Can't find company with code: nope", http.StatusNotFound)

		res := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusNotFound, res.Status)
		assert.Equal(t, "Can't find company with code: nope", res.Message)
	})

	t.Run("Wrapped AppError is still recognized", func(t *testing.T) {
		inner := apperror.New(apperror.CodeConflict, "Company already exists", http.StatusConflict)
		err := apperror.Wrap(inner, apperror.CodeInternalError, "outer", http.StatusInternalServerError)

		// the outermost AppError wins
		res := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusInternalServerError, res.Status)
	})

	t.Run("Plain errors default to 500", func(t *testing.T) {
		res := apperror.ToHTTP(errors.New("connection reset"))

		assert.Equal(t, http.StatusInternalServerError, res.Status)
		assert.Equal(t, "connection reset", res.Message)
	})
}

func TestFieldErrors(t *testing.T) {
	required := apperror.RequiredField("Name")
	assert.Equal(t, "Name must be provided", required.Message)
	assert.Equal(t, http.StatusBadRequest, required.HTTPStatus)

	invalid := apperror.InvalidField("Amt")
	assert.Equal(t, "Amt is invalid", invalid.Message)
	assert.Equal(t, http.StatusBadRequest, invalid.HTTPStatus)
}

func TestAppError_Error(t *testing.T) {
	plain := apperror.New(apperror.CodeInvalidInput, "bad input", http.StatusBadRequest)
	assert.Equal(t, "bad input", plain.Error())

	wrapped := apperror.Wrap(errors.New("boom"), apperror.CodeInternalError, "query failed", http.StatusInternalServerError)
	assert.Equal(t, "query failed: boom", wrapped.Error())
	assert.EqualError(t, errors.Unwrap(wrapped), "boom")
}
