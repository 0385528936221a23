package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	scgerror "github.com/next-trace/scg-error/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorShapes(t *testing.T) {
	tests := []struct {
		name   string
		err    *scgerror.Error
		status int
		key    string
		detail string
	}{
		{"contact not found", ContactNotFound(), http.StatusNotFound, KeyNotFound, "Contact is not found"},
		{"user not found", UserNotFound(), http.StatusNotFound, KeyNotFound, "User is not found"},
		{"username taken", UsernameTaken(), http.StatusBadRequest, KeyConflict, "Username already registered"},
		{"wrong credentials", WrongCredentials(), http.StatusUnauthorized, KeyUnauthorized, "Username or password is wrong"},
		{"invalid token", InvalidToken(), http.StatusUnauthorized, KeyUnauthorized, "Token is invalid"},
		{"unauthorized", Unauthorized(), http.StatusUnauthorized, KeyUnauthorized, "Unauthorized"},
		{"too many requests", TooManyRequests(), http.StatusTooManyRequests, "rate_limited", "Too many requests"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.HTTPStatus())
			assert.Equal(t, tt.key, tt.err.Key())
			assert.Equal(t, tt.detail, tt.err.Detail())
		})
	}
}

func TestValidationCarriesFields(t *testing.T) {
	err := Validation(map[string]string{"first_name": "is required"})

	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus())
	assert.Equal(t, KeyValidation, err.Key())
	assert.Equal(t, "Validation Error", err.Detail())

	fields, ok := err.Context()[FieldsContextKey].(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "is required", fields["first_name"])
}

func TestValidationWithoutFields(t *testing.T) {
	err := Validation(nil)
	assert.NotContains(t, err.Context(), FieldsContextKey)
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("handling request: %w", ContactNotFound())

	var appErr *scgerror.Error
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus())
}
