package server

import (
	"strings"

	"brainly/internal/middleware"
	"brainly/internal/models"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired rejects requests without a valid token in the Authorization
// header. The header carries the bare token; a "Bearer " prefix is accepted
// too. Any failure, including a panic while verifying, answers 403.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := s.authenticate(c)
		if !ok {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewUnauthorizedError("You are not logged in"))
		}

		c.Locals("userID", userID)
		c.SetUserContext(middleware.WithUserID(c.UserContext(), userID))
		return c.Next()
	}
}

func (s *Server) authenticate(c *fiber.Ctx) (userID string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			middleware.Logger.WarnContext(c.UserContext(), "token verification panicked", "panic", r)
			userID, ok = "", false
		}
	}()

	token := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	token = strings.TrimPrefix(token, "Bearer ")

	id, err := s.verifier.Verify(token)
	if err != nil {
		return "", false
	}
	return id, true
}

// currentUserID returns the id stored by AuthRequired.
func currentUserID(c *fiber.Ctx) (string, bool) {
	id, ok := c.Locals("userID").(string)
	return id, ok && id != ""
}
