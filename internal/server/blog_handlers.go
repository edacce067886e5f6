package server

import (
	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/service"
	"inkwell/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CreateBlog handles POST /api/blogs. The request is multipart and the image
// file is mandatory; validation runs before any upload or store write.
func (s *Server) CreateBlog(c *fiber.Ctx) error {
	userID := currentUserID(c)

	title := c.FormValue("title")
	content := c.FormValue("content")

	var fields []models.FieldError
	if err := validation.ValidateTitle(title); err != nil {
		fields = append(fields, models.FieldError{Field: "title", Message: err.Error()})
	}
	if err := validation.ValidateContent(content); err != nil {
		fields = append(fields, models.FieldError{Field: "content", Message: err.Error()})
	}
	if len(fields) > 0 {
		return fail(c, models.NewFieldValidationError(fields))
	}

	image, err := readImageFile(c, "image")
	if err != nil {
		return fail(c, err)
	}
	if image == nil {
		return fail(c, models.NewValidationError("Please upload an image"))
	}

	blog, err := s.blogService.Create(c.Context(), service.CreateBlogInput{
		Title:   title,
		Content: content,
		UserID:  userID,
		Image:   image,
	})
	if err != nil {
		return fail(c, err)
	}

	observability.BlogsCreated.Inc()
	observability.ImageUploadBytes.Observe(float64(len(image.Content)))

	return models.Respond(c, fiber.StatusCreated, blog)
}

// GetBlogs handles GET /api/blogs?page=&limit=.
func (s *Server) GetBlogs(c *fiber.Ctx) error {
	page, limit := parsePageLimit(c)

	result, err := s.blogService.GetAll(c.Context(), limit, page)
	if err != nil {
		return fail(c, err)
	}

	return models.Respond(c, fiber.StatusOK, result)
}

// GetBlog handles GET /api/blogs/:id.
func (s *Server) GetBlog(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	blog, err := s.blogService.GetByID(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}

	return models.Respond(c, fiber.StatusOK, blog)
}

// GetMyBlogs handles GET /api/blogs/user/me. The owner listing is unpaginated.
func (s *Server) GetMyBlogs(c *fiber.Ctx) error {
	userID := currentUserID(c)

	blogs, err := s.blogService.GetByUser(c.Context(), userID)
	if err != nil {
		return fail(c, err)
	}

	return models.Respond(c, fiber.StatusOK, blogs)
}

// UpdateBlog handles PUT /api/blogs/:id. Only the owner's write matches; a
// miss and a foreign post produce the same response.
func (s *Server) UpdateBlog(c *fiber.Ctx) error {
	userID := currentUserID(c)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	in := service.UpdateBlogInput{ID: id, UserID: userID}

	var fields []models.FieldError
	if title := c.FormValue("title"); title != "" {
		if err := validation.ValidateTitle(title); err != nil {
			fields = append(fields, models.FieldError{Field: "title", Message: err.Error()})
		}
		in.Title = &title
	}
	if content := c.FormValue("content"); content != "" {
		if err := validation.ValidateContent(content); err != nil {
			fields = append(fields, models.FieldError{Field: "content", Message: err.Error()})
		}
		in.Content = &content
	}
	if len(fields) > 0 {
		return fail(c, models.NewFieldValidationError(fields))
	}

	image, err := readImageFile(c, "image")
	if err != nil {
		return fail(c, err)
	}
	in.Image = image

	blog, err := s.blogService.Update(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}

	return models.Respond(c, fiber.StatusOK, blog)
}

// DeleteBlog handles DELETE /api/blogs/:id with the same ownership semantics
// as UpdateBlog.
func (s *Server) DeleteBlog(c *fiber.Ctx) error {
	userID := currentUserID(c)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.blogService.Delete(c.Context(), id, userID); err != nil {
		return fail(c, err)
	}

	return models.Respond(c, fiber.StatusOK, fiber.Map{})
}
