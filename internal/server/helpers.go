package server

import (
	"errors"
	"io"

	"inkwell/internal/media"
	"inkwell/internal/models"
	"inkwell/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

const maxPageLimit = 100

// parsePageLimit extracts page and limit query parameters.
func parsePageLimit(c *fiber.Ctx) (page, limit int) {
	page = c.QueryInt("page", 1)
	if page <= 0 {
		page = 1
	}
	limit = c.QueryInt("limit", 10)
	if limit <= 0 {
		limit = 10
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

// parseID extracts a route parameter as a positive uint. On failure it writes
// a 400 JSON response and returns errResponseWritten; callers should check:
// if err != nil { return nil }.
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid ID"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// currentUserID returns the identity attached by the access-control gate.
func currentUserID(c *fiber.Ctx) uint {
	return c.Locals("userID").(uint)
}

// readImageFile reads an optional multipart image field. It returns (nil, nil)
// when the field is absent; a present but invalid file yields a validation error.
func readImageFile(c *fiber.Ctx, field string) (*media.UploadInput, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}

	if err := validation.ValidateImageFile(file.Filename, file.Header.Get("Content-Type"), file.Size); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	src, err := file.Open()
	if err != nil {
		return nil, models.NewValidationError("Unable to read uploaded file")
	}
	defer func() { _ = src.Close() }()

	content, err := io.ReadAll(src)
	if err != nil {
		return nil, models.NewValidationError("Unable to read uploaded file")
	}

	return &media.UploadInput{
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Content:     content,
	}, nil
}

// mapError translates the closed application error set to an HTTP status.
// Errors from outside the set are treated as internal.
func mapError(err error) int {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		return fiber.StatusInternalServerError
	}
	switch appErr.Code {
	case models.CodeValidation:
		return fiber.StatusBadRequest
	case models.CodeUnauthorized:
		return fiber.StatusUnauthorized
	case models.CodeNotFound:
		return fiber.StatusNotFound
	case models.CodeNotFoundOrUnauthorized:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// fail writes the error envelope with the mapped status.
func fail(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, mapError(err), err)
}
