package apierror

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ContentTypeProblemJSON is the MIME type for RFC 9457 Problem Details.
const ContentTypeProblemJSON = "application/problem+json"

// WriteProblem writes a ProblemDetails response to the gin context with
// the correct Content-Type header.
func WriteProblem(c *gin.Context, problem *ProblemDetails) {
	c.Header("Content-Type", ContentTypeProblemJSON)
	c.JSON(problem.Status, problem)
}

// GetRequestID extracts the request ID from the gin context.
// Returns empty string if not found.
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get("request_id"); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return c.GetHeader("X-Request-ID")
}

// NewValidationError creates a 400 Bad Request response for validation failures.
// Multiple field errors can be included to report all validation issues at once.
func NewValidationError(requestID string, errors []FieldError) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeValidation,
		Title:       TitleValidation,
		Status:      http.StatusBadRequest,
		Detail:      "One or more fields failed validation",
		RequestID:   requestID,
		UserMessage: "Please check your input and try again",
		Errors:      errors,
	}
}

// NewBadRequestError creates a 400 Bad Request response for malformed requests.
func NewBadRequestError(requestID, detail, userMessage string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeBadRequest,
		Title:       TitleBadRequest,
		Status:      http.StatusBadRequest,
		Detail:      detail,
		RequestID:   requestID,
		UserMessage: userMessage,
	}
}

// NewMalformedDateError creates a 400 Bad Request response for a date
// string that could not be parsed.
func NewMalformedDateError(requestID, field, value string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeMalformedDate,
		Title:       TitleMalformedDate,
		Status:      http.StatusBadRequest,
		Detail:      fmt.Sprintf("Field '%s' contains an unparseable date: '%s'", field, value),
		RequestID:   requestID,
		UserMessage: "One of the dates in the request could not be read",
		Errors: []FieldError{
			{Field: field, Message: "must be an ISO 8601 date", Code: "malformed_date"},
		},
	}
}

// NewNonFiniteValueError creates a 400 Bad Request response for NaN or
// infinite numeric input.
func NewNonFiniteValueError(requestID, field string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeNonFiniteValue,
		Title:       TitleNonFiniteValue,
		Status:      http.StatusBadRequest,
		Detail:      fmt.Sprintf("Field '%s' contains a NaN or infinite value", field),
		RequestID:   requestID,
		UserMessage: "One of the values in the request is not a finite number",
		Errors: []FieldError{
			{Field: field, Message: "must be a finite number", Code: "nonfinite_value"},
		},
	}
}

// NewNotFoundError creates a 404 Not Found response.
func NewNotFoundError(requestID, resource, id string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeNotFound,
		Title:       TitleNotFound,
		Status:      http.StatusNotFound,
		Detail:      fmt.Sprintf("%s with ID '%s' was not found", resource, id),
		RequestID:   requestID,
		UserMessage: fmt.Sprintf("The requested %s could not be found", resource),
	}
}

// NewInternalError creates a 500 Internal Server Error response.
// IMPORTANT: This intentionally hides internal error details from the client.
// The actual error should be logged server-side for debugging.
func NewInternalError(requestID string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeInternal,
		Title:       TitleInternal,
		Status:      http.StatusInternalServerError,
		Detail:      "An unexpected error occurred",
		RequestID:   requestID,
		UserMessage: "Something went wrong. Please try again later.",
	}
}
