package errs

import "strings"

// FieldError represents a validation error tied to a single request field.
// Example:
//
//	{ "field": "endTime", "error": "is required" }
type FieldError struct {
	// Field is the request field the error relates to (e.g. "endTime").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the error envelope serialized into every failure response.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "MISSING_FIELDS").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Errors: per-field validation errors, when applicable.
type HTTPError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Status  int          `json:"status"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// Error makes *HTTPError satisfy the built-in error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError. It matches on type only,
// not on Code or Status, so errors.Is can be used as a coarse filter.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
// The receiver is not mutated.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: message,
		Status:  e.Status,
		Errors:  e.Errors,
	}
}

// MakeUpperCaseWithUnderscores converts a string into
// UPPER_CASE_WITH_UNDERSCORES form.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
//
// Used to derive stable machine-readable codes from HTTP status text.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
