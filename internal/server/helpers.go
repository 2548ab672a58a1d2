package server

import (
	"brainly/internal/middleware"
	"brainly/internal/models"

	"github.com/gofiber/fiber/v2"
)

// respondError writes err with the status its code maps to. Server-side
// failures are logged with their cause; the client only sees the message.
func respondError(c *fiber.Ctx, err error) error {
	status := models.StatusFor(err)
	if status >= fiber.StatusInternalServerError || models.IsCode(err, models.CodeIntegrity) {
		middleware.Logger.ErrorContext(c.UserContext(), "request failed",
			"status", status,
			"path", c.Path(),
			"error", err,
		)
	}
	return models.RespondWithError(c, status, err)
}

func badRequest(c *fiber.Ctx, message string) error {
	return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError(message))
}

// unauthorized answers a handler that finds no identity in the locals. On
// routes behind AuthRequired this does not happen: the gate answers 403
// first. The check keeps handlers safe if mounted without the gate.
func unauthorized(c *fiber.Ctx) error {
	return models.RespondWithError(c, fiber.StatusUnauthorized, models.NewUnauthorizedError("Unauthorized"))
}
