package apierror

// Error type URIs following the urn:lumen:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:lumen:error:validation"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:lumen:error:bad_request"

	// TypeMalformedDate indicates a date string that could not be parsed (400)
	TypeMalformedDate = "urn:lumen:error:malformed_date"

	// TypeNonFiniteValue indicates a NaN or infinite numeric value (400)
	TypeNonFiniteValue = "urn:lumen:error:nonfinite_value"

	// TypeNotFound indicates the requested resource was not found (404)
	TypeNotFound = "urn:lumen:error:not_found"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:lumen:error:internal"
)

// Titles for each error type - human-readable summaries
const (
	TitleValidation     = "Validation Error"
	TitleBadRequest     = "Bad Request"
	TitleMalformedDate  = "Malformed Date"
	TitleNonFiniteValue = "Non-Finite Value"
	TitleNotFound       = "Resource Not Found"
	TitleInternal       = "Internal Server Error"
)
