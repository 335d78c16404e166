package util

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorBody is the wire shape of every failed request.
type ErrorBody struct {
	Error string `json:"error"`
}

// ErrorResponse sends the standard JSON error envelope.
func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(ErrorBody{Error: message})
}

// HTTPError maps a pipeline error to the status code and client-facing
// message the API contract defines. Validation problems are the client's
// fault; everything else, extraction included, is reported as a generic
// server error without leaking internals.
func HTTPError(err error) (int, string) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return fiber.StatusBadRequest, ve.Message
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code, fe.Message
	}

	return fiber.StatusInternalServerError, "Internal server error"
}
