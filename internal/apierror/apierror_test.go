package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		err  *Error
		want int
	}{
		{BadRequest("bad"), http.StatusBadRequest},
		{Unauthorized("who"), http.StatusUnauthorized},
		{Forbidden("no"), http.StatusForbidden},
		{NotFound("gone"), http.StatusNotFound},
		{Conflict("dup"), http.StatusConflict},
		{TooManyRequests("slow down"), http.StatusTooManyRequests},
		{Internal("boom", nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.StatusCode, tt.err.Message)
	}
}

func TestFrom(t *testing.T) {
	t.Run("typed error passes through wrapping", func(t *testing.T) {
		original := NotFound("video not found")
		wrapped := fmt.Errorf("get video: %w", original)

		got := From(wrapped)
		assert.Same(t, original, got)
		assert.Equal(t, http.StatusNotFound, StatusCode(wrapped))
	})

	t.Run("unknown error defaults to 500", func(t *testing.T) {
		cause := errors.New("connection reset")

		got := From(cause)
		assert.Equal(t, http.StatusInternalServerError, got.StatusCode)
		assert.Equal(t, "Internal server error", got.Message)
		assert.ErrorIs(t, got, cause)
	})
}

func TestWrapAndWithErrors(t *testing.T) {
	cause := errors.New("smtp down")
	base := Internal("failed to send verification email", nil)

	wrapped := base.Wrap(cause)
	require.ErrorIs(t, wrapped, cause)
	assert.Nil(t, base.Unwrap(), "Wrap must not mutate the receiver")
	assert.Contains(t, wrapped.Error(), "smtp down")

	detailed := BadRequest("validation failed").WithErrors("title is required", "description is required")
	assert.Equal(t, []string{"title is required", "description is required"}, detailed.Errors)
}
