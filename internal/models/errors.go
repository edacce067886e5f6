package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes for the closed set of application errors.
const (
	CodeValidation             = "VALIDATION_ERROR"
	CodeUnauthorized           = "UNAUTHORIZED"
	CodeNotFound               = "NOT_FOUND"
	CodeNotFoundOrUnauthorized = "NOT_FOUND_OR_UNAUTHORIZED"
	CodeInternal               = "INTERNAL_ERROR"
)

// FieldError carries field-level validation detail.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError represents a custom application error.
type AppError struct {
	Code    string
	Message string
	Fields  []FieldError
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Err:     fmt.Errorf("%s with ID %v not found", resource, id),
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

// NewFieldValidationError wraps field-level detail collected at the boundary.
func NewFieldValidationError(fields []FieldError) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: "Validation failed",
		Fields:  fields,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
	}
}

// NewNotFoundOrUnauthorizedError deliberately conflates "does not exist" with
// "exists but not yours"; callers must not be able to tell them apart.
func NewNotFoundOrUnauthorizedError(resource string) *AppError {
	return &AppError{
		Code:    CodeNotFoundOrUnauthorized,
		Message: fmt.Sprintf("%s not found or unauthorized", resource),
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// Respond writes the standard success envelope.
func Respond(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// RespondWithError writes the standard failure envelope. Internal detail is
// logged by the request logger, never surfaced in the message.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	body := fiber.Map{"success": false}

	if appErr, ok := err.(*AppError); ok {
		body["message"] = appErr.Message
		if len(appErr.Fields) > 0 {
			body["errors"] = appErr.Fields
		}
	} else {
		body["message"] = err.Error()
	}

	return c.Status(status).JSON(body)
}
