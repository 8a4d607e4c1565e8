package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/lumen-app/lumen/backend/internal/analytics"
	"github.com/lumen-app/lumen/backend/internal/apierror"
	"github.com/lumen-app/lumen/backend/internal/logger"
	"github.com/lumen-app/lumen/backend/internal/service"
)

// writeBindingError translates a gin binding failure into an RFC 9457
// problem. Validator errors become one FieldError per failed field;
// anything else (malformed JSON, wrong types) becomes a generic 400.
func writeBindingError(c *gin.Context, err error) {
	requestID := apierror.GetRequestID(c)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]apierror.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, apierror.FieldError{
				Field:   strings.ToLower(fe.Field()),
				Message: validationMessage(fe),
				Code:    fe.Tag(),
			})
		}
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, fields))
		return
	}

	apierror.WriteProblem(c, apierror.NewBadRequestError(requestID,
		"Request body could not be parsed", "Please check the request format"))
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	default:
		return "is invalid"
	}
}

// writeServiceError maps engine and service errors to problem responses.
// Malformed dates and non-finite values are client faults; everything
// else is logged and hidden behind a 500.
func writeServiceError(c *gin.Context, err error) {
	requestID := apierror.GetRequestID(c)

	switch {
	case errors.Is(err, service.ErrMalformedDate):
		apierror.WriteProblem(c, apierror.NewMalformedDateError(requestID, "date", dateFromError(err)))
	case errors.Is(err, analytics.ErrNonFinite):
		apierror.WriteProblem(c, apierror.NewNonFiniteValueError(requestID, "value"))
	default:
		logger.Ctx(c.Request.Context()).Error("request failed", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
	}
}

// dateFromError pulls the offending quoted date out of a wrapped
// ErrMalformedDate, if present
func dateFromError(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, `"`); i >= 0 {
		if j := strings.LastIndex(msg, `"`); j > i {
			return msg[i+1 : j]
		}
	}
	return ""
}
