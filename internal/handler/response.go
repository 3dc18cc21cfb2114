package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rides/internal/service"
)

// Error codes returned in ErrorResponse.ErrorCode.
const (
	ErrorCodeValidation    = "VALIDATION_ERROR"
	ErrorCodeServer        = "SERVER_ERROR"
	ErrorCodeRidesNotFound = "RIDES_NOT_FOUND_ERROR"
)

// Fixed messages for non-validation errors.
const (
	MessageUnknownError  = "Unknown error"
	MessageRidesNotFound = "Could not find any rides"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
}

// respondError sends the error body for err. Unless strict is set the status
// is always 200; clients tell failures apart by error_code.
func respondError(c *gin.Context, err error, strict bool) {
	code, body := mapError(err)
	if !strict {
		code = http.StatusOK
	}
	c.JSON(code, body)
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapError maps service/repository errors to an HTTP status and body.
// Anything unrecognised is reported as an opaque server error.
func mapError(err error) (int, ErrorResponse) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, ErrorResponse{ErrorCode: ErrorCodeValidation, Message: validationErr.Error()}

	case errors.Is(err, service.ErrRidesNotFound):
		return http.StatusNotFound, ErrorResponse{ErrorCode: ErrorCodeRidesNotFound, Message: MessageRidesNotFound}

	default:
		return http.StatusInternalServerError, ErrorResponse{ErrorCode: ErrorCodeServer, Message: MessageUnknownError}
	}
}
