package server

import (
	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/service"
	"inkwell/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Register handles POST /api/users/register.
func (s *Server) Register(c *fiber.Ctx) error {
	var req struct {
		Name     string `json:"name" form:"name"`
		Email    string `json:"email" form:"email"`
		Password string `json:"password" form:"password"`
		Bio      string `json:"bio" form:"bio"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("Invalid request body"))
	}

	var fields []models.FieldError
	if err := validation.ValidateName(req.Name); err != nil {
		fields = append(fields, models.FieldError{Field: "name", Message: err.Error()})
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		fields = append(fields, models.FieldError{Field: "email", Message: err.Error()})
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		fields = append(fields, models.FieldError{Field: "password", Message: err.Error()})
	}
	if err := validation.ValidateBio(req.Bio); err != nil {
		fields = append(fields, models.FieldError{Field: "bio", Message: err.Error()})
	}
	if len(fields) > 0 {
		return fail(c, models.NewFieldValidationError(fields))
	}

	user, tok, err := s.userService.Register(c.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Bio:      req.Bio,
	})
	if err != nil {
		return fail(c, err)
	}

	observability.UsersRegistered.Inc()

	return models.Respond(c, fiber.StatusCreated, fiber.Map{
		"user":  user,
		"token": tok,
	})
}

// Login handles POST /api/users/login.
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email" form:"email"`
		Password string `json:"password" form:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("Invalid request body"))
	}

	var fields []models.FieldError
	if err := validation.ValidateEmail(req.Email); err != nil {
		fields = append(fields, models.FieldError{Field: "email", Message: err.Error()})
	}
	if req.Password == "" {
		fields = append(fields, models.FieldError{Field: "password", Message: "Password is required"})
	}
	if len(fields) > 0 {
		return fail(c, models.NewFieldValidationError(fields))
	}

	user, tok, err := s.userService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}

	return models.Respond(c, fiber.StatusOK, fiber.Map{
		"user":  user,
		"token": tok,
	})
}
