package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	appErr := NewInternalError(cause)

	assert.Contains(t, appErr.Error(), "connection refused")
	assert.ErrorIs(t, appErr, cause)
}

func TestNewNotFoundError_Message(t *testing.T) {
	t.Parallel()

	err := NewNotFoundError("Post")
	assert.Equal(t, "Post not found", err.Message)
	assert.Equal(t, CodeNotFound, err.Code)
}

func TestStatusForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", NewNotFoundError("Post"), fiber.StatusNotFound},
		{"validation", NewValidationError("bad input"), fiber.StatusBadRequest},
		{"unauthorized", NewUnauthorizedError("no token"), fiber.StatusUnauthorized},
		{"forbidden", NewForbiddenError("not yours"), fiber.StatusForbidden},
		{"internal", NewInternalError(errors.New("boom")), fiber.StatusInternalServerError},
		{"plain error", errors.New("anything"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.status, StatusForError(tt.err))
		})
	}
}

func TestStatusForError_WrappedAppError(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("handling request: %w", NewForbiddenError("not yours"))
	assert.Equal(t, fiber.StatusForbidden, StatusForError(wrapped))
}
