package handler

import (
	"github.com/gofiber/fiber/v2"
)

// envelope is the uniform response shape for every endpoint, success or
// handled failure: {status, message?, data?}.
type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

const (
	statusSuccess = "success"
	statusError   = "error"
)

// writeSuccess writes a success envelope with the given HTTP status.
func writeSuccess(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(envelope{
		Status:  statusSuccess,
		Message: message,
		Data:    data,
	})
}

// writeError writes an error envelope without leaking internal details.
func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(envelope{
		Status:  statusError,
		Message: message,
	})
}

// writeValidationError writes a 422 envelope carrying the per-field detail map.
func writeValidationError(c *fiber.Ctx, fields map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(envelope{
		Status:  statusError,
		Message: "validation failed",
		Data:    fields,
	})
}

// ErrorHandler returns a Fiber global error handler that shapes framework-level
// errors into the same envelope as handled responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "request body too large")
		default:
			return writeError(c, status, "internal server error")
		}
	}
}
