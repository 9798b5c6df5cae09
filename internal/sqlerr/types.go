package sqlerr

// Code is a driver-independent category for database errors.
// It maps the SQLSTATE classes this application cares about; everything
// unfamiliar falls into Other.
type Code int

const (
	Other Code = iota
	UniqueViolation
	ForeignKeyViolation
	NotNullViolation
	CheckViolation
	ConnectionFailure
)

// Severity mirrors the Postgres severity field of a server error.
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityError
	SeverityFatal
	SeverityPanic
	SeverityWarning
	SeverityNotice
)

// SQLSTATE values, per the PostgreSQL error code appendix.
const (
	sqlstateUniqueViolation     = "23505"
	sqlstateForeignKeyViolation = "23503"
	sqlstateNotNullViolation    = "23502"
	sqlstateCheckViolation      = "23514"
)

// MapCode maps a raw SQLSTATE string into a Code.
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case sqlstateUniqueViolation:
		return UniqueViolation
	case sqlstateForeignKeyViolation:
		return ForeignKeyViolation
	case sqlstateNotNullViolation:
		return NotNullViolation
	case sqlstateCheckViolation:
		return CheckViolation
	}

	// Class 08 covers connection exceptions.
	if len(sqlstate) >= 2 && sqlstate[:2] == "08" {
		return ConnectionFailure
	}

	return Other
}

// mapSeverity maps the Postgres severity string into a Severity.
func mapSeverity(severity string) Severity {
	switch severity {
	case "ERROR":
		return SeverityError
	case "FATAL":
		return SeverityFatal
	case "PANIC":
		return SeverityPanic
	case "WARNING":
		return SeverityWarning
	case "NOTICE":
		return SeverityNotice
	}
	return SeverityUnknown
}

// Error is the normalized form of a Postgres server error.
//
// It keeps the original SQLSTATE (DatabaseCode) and the schema metadata
// Postgres reports, which error formatting uses to build messages.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	// driverErr holds the original driver error for Unwrap.
	driverErr error
}

// Error satisfies the error interface using the server's message.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the original driver error so errors.As still finds
// pgconn.PgError below this wrapper.
func (e *Error) Unwrap() error {
	return e.driverErr
}
