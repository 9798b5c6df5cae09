package errs

import (
	"net/http"
)

// Codes for the error classes this API distinguishes beyond plain HTTP
// status text. Clients switch on these rather than parsing messages.
const (
	CodeMissingFields     = "MISSING_FIELDS"
	CodeInvalidDateFormat = "INVALID_DATE_FORMAT"
)

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// Parameters:
//   - message: text to send to the client
//   - code: optional custom code string (nil defaults to "BAD_REQUEST")
//   - errors: optional slice of field errors (validation failures)
func NewBadRequestError(message string, code *string, errors []FieldError) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusBadRequest,
		Errors:  errors,
	}
}

// NewMissingFieldsError creates a 400 error for required fields that were
// absent or null in the request body.
func NewMissingFieldsError(message string, errors []FieldError) *HTTPError {
	code := CodeMissingFields
	return NewBadRequestError(message, &code, errors)
}

// NewInvalidDateFormatError creates a 400 error for a date/time string that
// could not be parsed into a valid instant.
func NewInvalidDateFormatError(message string) *HTTPError {
	code := CodeInvalidDateFormat
	return NewBadRequestError(message, &code, nil)
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is the generic status text, never the underlying error:
// storage failures are logged server-side and must not leak to callers.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}
