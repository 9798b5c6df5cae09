package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/daytrack/daytrack/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// errCode reports the mapped Code for a given error.
//
// If err can be unwrapped into *Error, its Code is returned; anything
// else is Other.
func errCode(err error) Code {
	var pgerr *Error
	if errors.As(err, &pgerr) {
		return pgerr.Code
	}
	return Other
}

// ConvertPgError converts a raw pgconn.PgError into our normalized Error,
// mapping SQLSTATE and severity into enums for easier switching.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       mapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// generateErrorCode creates consistent application error codes from DB errors.
//
// Output format is <DOMAIN>_<ACTION>, e.g. water_intake + UniqueViolation
// => WATER_INTAKE_ALREADY_EXISTS. These codes are meant for machines
// (client logic, analytics), not humans.
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(tableName)

	// Naive singularization: "TASKS" -> "TASK". Good enough for this schema.
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// formatUserFriendlyMessage produces the client-facing message for a
// classified database error. Logs keep the raw message; this one is for UIs.
func formatUserFriendlyMessage(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName, sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entityName)

	case UniqueViolation:
		// "identifier" is replaced later if the constraint name reveals
		// the actual column.
		return fmt.Sprintf("A %s with this identifier already exists", entityName)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName infers an entity name from table/column metadata.
//
// Priority:
//  1. A column ending in "_id" names the referenced entity (FK case).
//  2. The table name, singularized if it ends with "s".
//  3. "record" as fallback.
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		entity := strings.TrimSuffix(strings.ToLower(columnName), "_id")
		return humanizeText(entity)
	}

	if tableName != "" {
		entity := tableName
		if strings.HasSuffix(entity, "s") && len(entity) > 1 {
			entity = entity[:len(entity)-1]
		}
		return humanizeText(entity)
	}

	return "record"
}

// humanizeText converts snake_case identifiers into Title Case.
//
// Example: "start_time" -> "Start Time".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// uniqueConstraintColumnRe matches constraint names of the form
// "<table>_<column>_key" or "<table>_<column>_ukey".
var uniqueConstraintColumnRe = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)

// extractColumnForUniqueViolation infers the violated column from a unique
// constraint name, supporting the "unique_<table>_<column>" and
// "<table>_<column>_key" naming conventions.
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	matches := uniqueConstraintColumnRe.FindStringSubmatch(constraintName)
	if len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// HandleError converts a low-level database error into an application error.
//
// Output:
//   - already *errs.HTTPError: returned unchanged
//   - pgconn.PgError: mapped to a specific 400 or a generic 500
//   - ErrNoRows: mapped to 404
//   - anything else: generic 500
//
// Intended to be called in repositories (or the global error handler)
// after a DB call fails. The raw error is never surfaced to clients.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)

		errorCode := generateErrorCode(sqlErr.TableName, sqlErr.Code)
		userMessage := formatUserFriendlyMessage(sqlErr)

		switch sqlErr.Code {
		case ForeignKeyViolation:
			return errs.NewBadRequestError(userMessage, &errorCode, nil)

		case UniqueViolation:
			columnName := extractColumnForUniqueViolation(sqlErr.ConstraintName)
			if columnName != "" {
				userMessage = strings.ReplaceAll(userMessage, "identifier", humanizeText(columnName))
			}
			return errs.NewBadRequestError(userMessage, &errorCode, nil)

		case NotNullViolation:
			fieldErrors := []errs.FieldError{
				{
					Field: strings.ToLower(sqlErr.ColumnName),
					Error: "is required",
				},
			}
			return errs.NewBadRequestError(userMessage, &errorCode, fieldErrors)

		case CheckViolation:
			return errs.NewBadRequestError(userMessage, &errorCode, nil)

		default:
			return errs.NewInternalServerError()
		}
	}

	switch {
	case errors.Is(err, pgx.ErrNoRows), errors.Is(err, sql.ErrNoRows):
		return errs.NewNotFoundError("Resource not found", nil)
	}

	return errs.NewInternalServerError()
}
