package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"casewrite/internal/http/middleware"
	"casewrite/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "VALIDATION_ERROR", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: middleware.RequestIDFrom(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// statusForKind maps a service.Kind code to its HTTP status.
func statusForKind(kind string) int {
	switch kind {
	case service.KindValidation, service.KindEncoding:
		return fiber.StatusBadRequest
	case service.KindInFlight:
		return fiber.StatusConflict
	case service.KindMissingCredential:
		return fiber.StatusServiceUnavailable
	case service.KindRemote, service.KindSchema:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// unknownAnalysisError is shown instead of messages of unclassified errors.
const unknownAnalysisError = "An unknown error occurred during document analysis."

// analysisMessage returns the text shown for an analysis failure.
// Classified failures are shown verbatim, including the provider's message for remote errors.
func analysisMessage(err error) string {
	if service.Kind(err) == service.KindInternal {
		return unknownAnalysisError
	}
	return err.Error()
}

// writeServiceError maps an analysis failure to the error envelope.
func writeServiceError(c *fiber.Ctx, err error) error {
	kind := service.Kind(err)
	if kind == service.KindInternal {
		return writeError(c, fiber.StatusInternalServerError, kind, "internal server error")
	}
	return writeError(c, statusForKind(kind), kind, err.Error())
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var e *fiber.Error
		if errors.As(err, &e) {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request body too large")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
