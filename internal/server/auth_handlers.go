package server

import (
	"brainly/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Signup handles POST /api/v1/signup
// @Summary User signup
// @Description Create an account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.Credentials true "Credentials"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 411 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /signup [post]
func (s *Server) Signup(c *fiber.Ctx) error {
	var req service.Credentials
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := s.userService.Signup(c.UserContext(), req); err != nil {
		return respondError(c, err)
	}

	return c.JSON(MessageResponse{Message: "Signed up successfully"})
}

// Signin handles POST /api/v1/signin
// @Summary User signin
// @Description Exchange credentials for a token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.Credentials true "Credentials"
// @Success 200 {object} TokenResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /signin [post]
func (s *Server) Signin(c *fiber.Ctx) error {
	var req service.Credentials
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	token, err := s.userService.Signin(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(TokenResponse{Token: token})
}
