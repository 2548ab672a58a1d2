package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes carried by AppError.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeConflict     = "CONFLICT"
	CodeNotFound     = "NOT_FOUND"
	CodeIntegrity    = "INTEGRITY_ERROR"
	CodeInternal     = "INTERNAL_ERROR"
)

// StatusLengthRequired is the status used for rejected input (411).
const StatusLengthRequired = fiber.StatusLengthRequired

// FieldViolation describes one failed rule on one request field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse represents a standardized API error response
type ErrorResponse struct {
	Message string           `json:"message"`
	Code    string           `json:"code,omitempty"`
	Errors  []FieldViolation `json:"errors,omitempty"`
}

// AppError represents a custom application error
type AppError struct {
	Code       string
	Message    string
	Violations []FieldViolation
	Err        error
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
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: message,
	}
}

func NewValidationError(message string, violations ...FieldViolation) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    message,
		Violations: violations,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
	}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{
		Code:    CodeForbidden,
		Message: message,
	}
}

func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Message: message,
	}
}

// NewIntegrityError reports a broken reference between stored records.
func NewIntegrityError(message string, err error) *AppError {
	return &AppError{
		Code:    CodeIntegrity,
		Message: message,
		Err:     err,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// IsCode reports whether err is an AppError with the given code.
func IsCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// StatusFor maps an error to the HTTP status it is reported with.
func StatusFor(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return fiber.StatusInternalServerError
	}
	switch appErr.Code {
	case CodeValidation, CodeIntegrity:
		return StatusLengthRequired
	case CodeUnauthorized, CodeForbidden, CodeConflict:
		return fiber.StatusForbidden
	case CodeNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// RespondWithError creates a standardized error response. Wrapped causes
// are never written to the client.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var response ErrorResponse

	var appErr *AppError
	if errors.As(err, &appErr) {
		response = ErrorResponse{
			Message: appErr.Message,
			Code:    appErr.Code,
			Errors:  appErr.Violations,
		}
	} else {
		response = ErrorResponse{
			Message: "Internal server error",
			Code:    CodeInternal,
		}
	}

	return c.Status(status).JSON(response)
}
