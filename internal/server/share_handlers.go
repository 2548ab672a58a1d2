package server

import (
	"github.com/gofiber/fiber/v2"
)

// ShareBrain handles POST /api/v1/brain/share. {"share":true} enables the
// caller's public link and {"share":false} removes it.
// @Summary Enable or disable sharing
// @Tags share
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body ShareRequest true "Share toggle"
// @Success 200 {object} ShareResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /brain/share [post]
func (s *Server) ShareBrain(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req ShareRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
	}

	if !req.Share {
		if err := s.shareService.Disable(c.UserContext(), userID); err != nil {
			return respondError(c, err)
		}
		return c.JSON(ShareResponse{Message: "removed link"})
	}

	hash, err := s.shareService.Enable(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ShareResponse{Hash: hash})
}

// GetSharedBrain handles GET /api/v1/brain/:shareLink without authentication.
// @Summary Get shared brain
// @Tags share
// @Produce json
// @Param shareLink path string true "Share hash"
// @Success 200 {object} service.SharedBrain
// @Failure 404 {object} models.ErrorResponse
// @Failure 411 {object} models.ErrorResponse
// @Router /brain/{shareLink} [get]
func (s *Server) GetSharedBrain(c *fiber.Ctx) error {
	brain, err := s.shareService.Resolve(c.UserContext(), c.Params("shareLink"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(brain)
}
