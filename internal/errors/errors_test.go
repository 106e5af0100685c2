package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(cause, ErrCodeUnavailable, "shortener API unreachable")

	assert.ErrorIs(t, err, cause)
	assert.True(t, IsUnavailable(err))
	assert.Contains(t, err.Error(), "shortener API unreachable")
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		err   error
		check func(error) bool
	}{
		{NotFound("x"), IsNotFound},
		{Conflict("x"), IsConflict},
		{Validation("x"), IsValidation},
		{Unauthorized("x"), IsUnauthorized},
		{Forbidden("x"), IsForbidden},
		{Unavailable("x"), IsUnavailable},
		{Internal("x"), IsInternal},
	}

	for _, tt := range tests {
		assert.True(t, tt.check(tt.err))
		assert.False(t, tt.check(errors.New("plain")))
	}
	assert.False(t, IsNotFound(nil))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, ErrCodeValidation, GetCode(Validationf("bad %s", "input")))
	assert.Equal(t, ErrorCode(""), GetCode(errors.New("plain")))

	wrapped := Wrapf(errors.New("inner"), ErrCodeInternal, "outer %d", 1)
	var appErr *AppError
	require.ErrorAs(t, wrapped, &appErr)
	assert.Equal(t, ErrCodeInternal, appErr.Code)
}
