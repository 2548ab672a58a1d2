package server

import (
	"brainly/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateContent handles POST /api/v1/content
// @Summary Create content
// @Description Save a link; tags are tag ids or titles
// @Tags content
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body service.CreateContentInput true "Content"
// @Success 201 {object} ContentCreatedResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 411 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /content [post]
func (s *Server) CreateContent(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req service.CreateContentInput
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	content, err := s.contentService.CreateContent(c.UserContext(), userID, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(ContentCreatedResponse{
		Message: "Content added successfully",
		Content: content,
	})
}

// ListContent handles GET /api/v1/content
// @Summary List content
// @Description The caller's content, oldest first, tags expanded
// @Tags content
// @Produce json
// @Security TokenAuth
// @Success 200 {object} ContentListResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /content [get]
func (s *Server) ListContent(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	content, err := s.contentService.ListContent(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(ContentListResponse{Content: content})
}

// DeleteContent handles DELETE /api/v1/content
// @Summary Delete content
// @Tags content
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body DeleteContentRequest true "Content id"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /content [delete]
func (s *Server) DeleteContent(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req DeleteContentRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
	}
	if req.ContentID == "" {
		return badRequest(c, "Content ID is required")
	}

	if err := s.contentService.DeleteContent(c.UserContext(), userID, req.ContentID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(MessageResponse{Message: "Content deleted successfully"})
}
