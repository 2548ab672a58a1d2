package models

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", NewValidationError("bad"), http.StatusLengthRequired},
		{"integrity", NewIntegrityError("broken", nil), http.StatusLengthRequired},
		{"unauthorized", NewUnauthorizedError("nope"), http.StatusForbidden},
		{"forbidden", NewForbiddenError("nope"), http.StatusForbidden},
		{"conflict", NewConflictError("taken"), http.StatusForbidden},
		{"not found", NewNotFoundError("missing"), http.StatusNotFound},
		{"internal", NewInternalError(errors.New("boom")), http.StatusInternalServerError},
		{"wrapped app error", fmt.Errorf("ctx: %w", NewNotFoundError("missing")), http.StatusNotFound},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
		{"deadline", context.DeadlineExceeded, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}

func TestIsCode(t *testing.T) {
	assert.True(t, IsCode(fmt.Errorf("wrap: %w", NewConflictError("x")), CodeConflict))
	assert.False(t, IsCode(NewConflictError("x"), CodeNotFound))
	assert.False(t, IsCode(errors.New("x"), CodeConflict))
}

func TestRespondWithError_DoesNotLeakCause(t *testing.T) {
	app := fiber.New()
	app.Get("/internal", func(c *fiber.Ctx) error {
		return RespondWithError(c, fiber.StatusInternalServerError, NewInternalError(errors.New("pq: password authentication failed")))
	})
	app.Get("/plain", func(c *fiber.Ctx) error {
		return RespondWithError(c, fiber.StatusInternalServerError, errors.New("secret detail"))
	})
	app.Get("/validation", func(c *fiber.Ctx) error {
		err := NewValidationError("Error in inputs", FieldViolation{Field: "username", Message: "is required"})
		return RespondWithError(c, StatusFor(err), err)
	})

	for _, path := range []string{"/internal", "/plain"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.NotContains(t, string(body), "password")
		assert.NotContains(t, string(body), "secret")
		assert.Contains(t, string(body), "Internal server error")
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/validation", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusLengthRequired, resp.StatusCode)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Error in inputs", body.Message)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "username", body.Errors[0].Field)
}
