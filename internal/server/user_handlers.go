package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"
	"inkwell/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetMe handles GET /api/users/me. The gate already resolved the identity.
func (s *Server) GetMe(c *fiber.Ctx) error {
	user := c.Locals("currentUser").(*models.User)
	return models.Respond(c, fiber.StatusOK, user)
}

// UpdateMe handles PUT /api/users/me. The request is multipart when a new
// avatar file is attached; name and bio remain optional either way.
func (s *Server) UpdateMe(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		Name string `json:"name" form:"name"`
		Bio  string `json:"bio" form:"bio"`
	}
	if err := c.BodyParser(&req); err != nil && c.Get(fiber.HeaderContentType) != "" {
		return fail(c, models.NewValidationError("Invalid request body"))
	}

	var fields []models.FieldError
	if req.Name != "" {
		if err := validation.ValidateName(req.Name); err != nil {
			fields = append(fields, models.FieldError{Field: "name", Message: err.Error()})
		}
	}
	if err := validation.ValidateBio(req.Bio); err != nil {
		fields = append(fields, models.FieldError{Field: "bio", Message: err.Error()})
	}
	if len(fields) > 0 {
		return fail(c, models.NewFieldValidationError(fields))
	}

	avatar, err := readImageFile(c, "avatar")
	if err != nil {
		return fail(c, err)
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID: userID,
		Name:   req.Name,
		Bio:    req.Bio,
		Avatar: avatar,
	})
	if err != nil {
		return fail(c, err)
	}

	return models.Respond(c, fiber.StatusOK, user)
}
