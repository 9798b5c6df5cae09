package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/daytrack/daytrack/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to
// validate themselves.
//
// Typical pattern:
//   - define a request struct with validator tags (`validate:"required"`)
//   - implement Validate() error that runs validator.Struct(req)
//
// Required fields that legitimately accept zero values (duration: 0,
// count: 0) must be pointer fields: the required tag then rejects only
// null/absent, never the zero value.
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single validation issue for a
// specific field, used for rules that cannot be expressed via tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that
// satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. c.Bind(payload) populates the struct from body and path params.
//  2. payload.Validate() applies validation rules.
//  3. On failure, returns *errs.HTTPError (400) with field-level errors.
//
// payload must be a pointer so Bind can mutate it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError("Invalid request body", nil, nil)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewMissingFieldsError(msg, fieldErrors)
	}

	return nil
}

// validateStruct calls v.Validate() and extracts field errors on failure.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Custom validation errors convert directly; the tag loop below
		// is a no-op because validationErrors stays nil.
		customValidationErrors := err.(CustomValidationErrors)
		for _, err := range customValidationErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: err.Field,
				Error: err.Message,
			})
		}
	}

	for _, err := range validationErrors {
		field := fieldName(err)
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"

		case "min":
			if err.Type().Kind() == reflect.String || (err.Type().Kind() == reflect.Ptr && err.Type().Elem().Kind() == reflect.String) {
				msg = fmt.Sprintf("must be at least %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", err.Param())
			}

		case "max":
			if err.Type().Kind() == reflect.String || (err.Type().Kind() == reflect.Ptr && err.Type().Elem().Kind() == reflect.String) {
				msg = fmt.Sprintf("must not exceed %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", err.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", err.Param())

		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, err.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}

// fieldName lowercases the first rune of the struct field name so the
// reported field matches the JSON key convention (StartTime -> startTime).
func fieldName(err validator.FieldError) string {
	name := err.Field()
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}
