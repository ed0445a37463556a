package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "TOO_MANY_REQUESTS", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusTooManyRequests)))
}

func TestConstructors_DefaultCodes(t *testing.T) {
	cases := []struct {
		err    *HTTPError
		status int
		code   string
	}{
		{NewUnauthorizedError("x", false), http.StatusUnauthorized, "UNAUTHORIZED"},
		{NewForbiddenError("x", false), http.StatusForbidden, "FORBIDDEN"},
		{NewBadRequestError("x", false, nil, nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{NewNotFoundError("x", false, nil), http.StatusNotFound, "NOT_FOUND"},
		{NewConflictError("x", false, nil), http.StatusConflict, "CONFLICT"},
		{NewTooManyRequestsError("x"), http.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
		{NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.Status)
		assert.Equal(t, tc.code, tc.err.Code)
	}
}

func TestConstructors_CustomCode(t *testing.T) {
	err := NewConflictError("Já existe uma categoria com esse nome: CrossFit.", true, StrPtr("CATEGORIA_ALREADY_EXISTS"))

	assert.Equal(t, "CATEGORIA_ALREADY_EXISTS", err.Code)
	assert.Equal(t, http.StatusConflict, err.Status)
	assert.True(t, err.Override)
	assert.Equal(t, "Já existe uma categoria com esse nome: CrossFit.", err.Error())
}

func TestHTTPError_Is(t *testing.T) {
	notFound := NewNotFoundError("missing", false, nil)
	wrapped := fmt.Errorf("lookup: %w", notFound)

	assert.True(t, errors.Is(wrapped, &HTTPError{Status: http.StatusNotFound}))
	assert.True(t, errors.Is(wrapped, &HTTPError{}))
	assert.False(t, errors.Is(wrapped, &HTTPError{Status: http.StatusConflict}))
	assert.False(t, errors.Is(errors.New("plain"), &HTTPError{}))
}

func TestHTTPError_WithMessage(t *testing.T) {
	base := NewBadRequestError("base", true, nil, []FieldError{{Field: "nome", Error: "is required"}}, nil)
	copied := base.WithMessage("changed")

	assert.Equal(t, "base", base.Message)
	assert.Equal(t, "changed", copied.Message)
	assert.Equal(t, base.Errors, copied.Errors)
	assert.Equal(t, base.Status, copied.Status)
}

func TestValidationError(t *testing.T) {
	err := ValidationError(errors.New("bad payload"))

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "Validation failed: bad payload", err.Message)
}
