package models

import (
	"errors"
	"fmt"

	"scamwatch/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// Error codes for the application error taxonomy.
const (
	CodeInvalidInput   = "INVALID_INPUT"
	CodeNotFound       = "NOT_FOUND"
	CodeConflict       = "CONFLICT"
	CodeStorageFailure = "STORAGE_FAILURE"
)

// ErrorResponse is the wire shape of every error: a human-readable message.
type ErrorResponse struct {
	Message string `json:"message"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
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
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeInvalidInput,
		Message: message,
	}
}

func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Message: message,
	}
}

func NewStorageError(err error) *AppError {
	return &AppError{
		Code:    CodeStorageFailure,
		Message: "storage failure",
		Err:     err,
	}
}

// StatusForError maps the error taxonomy to HTTP status codes: invalid input
// and conflicts answer 400, missing entities 404, everything else 500.
func StatusForError(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case CodeInvalidInput, CodeConflict:
			return fiber.StatusBadRequest
		case CodeNotFound:
			return fiber.StatusNotFound
		}
	}
	return fiber.StatusInternalServerError
}

// RespondWithError writes the standardized {"message": ...} error body with
// the status derived from the error taxonomy. Storage failures surface the
// underlying database error message.
func RespondWithError(c *fiber.Ctx, err error) error {
	status := StatusForError(err)

	// Server faults land on the active request span; client errors are noise.
	if status >= fiber.StatusInternalServerError {
		observability.RecordErrorInContext(c.UserContext(), err)
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		msg := appErr.Message
		if appErr.Code == CodeStorageFailure && appErr.Err != nil {
			msg = appErr.Err.Error()
		}
		return c.Status(status).JSON(ErrorResponse{Message: msg})
	}

	return c.Status(status).JSON(ErrorResponse{Message: err.Error()})
}
