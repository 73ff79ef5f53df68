package serverutils

import "github.com/gofiber/fiber/v2"

// ApiError is an error the client is allowed to see. Anything else that
// escapes a controller is mapped to a generic 500 by the error middleware.
type ApiError struct {
	Status  int
	Message string
}

func (e *ApiError) Error() string {
	return e.Message
}

// NewInvalidPayloadError marks a structurally or semantically invalid request.
// These are rejected before any store access and never retried.
func NewInvalidPayloadError(message string) *ApiError {
	return &ApiError{Status: fiber.StatusBadRequest, Message: message}
}

// NewNotFoundError marks a referenced record that no longer exists. In the
// upsert flow this is a server-side anomaly (the id came from a lookup that
// just succeeded), not a user mistake.
func NewNotFoundError(message string) *ApiError {
	return &ApiError{Status: fiber.StatusNotFound, Message: message}
}
