package errors

import (
	"net/http"
	"testing"

	"roster/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapMessagePreservesIdentity(t *testing.T) {
	err := ErrUserAlreadyExists.WrapMessage("user registration failed")

	// Wrapping adds context for the log without losing the sentinel.
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	var appErr AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "User already exists", appErr.Message())
}

func TestBaseError_WithDetails(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("email field malformed")

	assert.Equal(t, "email field malformed", detailed.Details())
	// The original stays untouched.
	assert.Empty(t, ErrValidationFailed.Details())
	assert.Equal(t, ErrValidationFailed.Message(), detailed.Message())
}

func TestValidationError(t *testing.T) {
	err := ValidationError("name is required")

	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", err.ErrorCode())
	assert.Equal(t, "name is required", err.Message())
	assert.Equal(t, "name is required", err.Error())
}

func TestRejectionStatusCodes(t *testing.T) {
	// Every expected rejection is a 400-class response; only internal faults
	// surface as 500s.
	for _, rejection := range []*BaseError{
		ErrValidationFailed,
		ErrUserNotFound,
		ErrInvalidPassword,
		ErrUserAlreadyExists,
	} {
		assert.Equal(t, http.StatusBadRequest, rejection.HTTPCode(), rejection.ErrorCode())
	}

	for _, fault := range []*BaseError{
		ErrRegistrationFailed,
		ErrLoginFailed,
		ErrInternalError,
	} {
		assert.Equal(t, http.StatusInternalServerError, fault.HTTPCode(), fault.ErrorCode())
	}
}

func TestDatabaseExecuteError(t *testing.T) {
	dbErr := NewDatabaseExecuteError(errors.New("connection reset"), "insert users")

	assert.Equal(t, http.StatusInternalServerError, dbErr.HTTPCode())
	assert.Equal(t, "Internal server error", dbErr.Message())
	assert.Equal(t, "insert users", dbErr.Details())
	assert.Contains(t, dbErr.Error(), "connection reset")
}
