package sqlerr

import "fmt"

// Code is an application-level classification of a database error.
type Code string

const (
	Other               Code = "other"
	NotNullViolation    Code = "not_null_violation"
	ForeignKeyViolation Code = "foreign_key_violation"
	UniqueViolation     Code = "unique_violation"
	CheckViolation      Code = "check_violation"
	ExclusionViolation  Code = "exclusion_violation"
	StringTooLong       Code = "string_data_right_truncation"
	InvalidText         Code = "invalid_text_representation"
	DeadlockDetected    Code = "deadlock_detected"
	QueryCanceled       Code = "query_canceled"
)

// Severity mirrors the severity field Postgres attaches to every error.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
)

// Error is a normalized database error.
//
// It keeps the raw SQLSTATE and the schema metadata Postgres reports so
// callers can decide what to tell the client without string matching.
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
	driverErr      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Severity, e.DatabaseCode, e.Message)
}

// Unwrap exposes the original driver error to errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.driverErr
}

// SQLSTATE codes this package understands.
// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	sqlstateNotNullViolation    = "23502"
	sqlstateForeignKeyViolation = "23503"
	sqlstateUniqueViolation     = "23505"
	sqlstateCheckViolation      = "23514"
	sqlstateExclusionViolation  = "23P01"
	sqlstateStringTooLong       = "22001"
	sqlstateInvalidText         = "22P02"
	sqlstateDeadlockDetected    = "40P01"
	sqlstateQueryCanceled       = "57014"
)

// MapCode maps a Postgres SQLSTATE onto a Code.
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case sqlstateNotNullViolation:
		return NotNullViolation
	case sqlstateForeignKeyViolation:
		return ForeignKeyViolation
	case sqlstateUniqueViolation:
		return UniqueViolation
	case sqlstateCheckViolation:
		return CheckViolation
	case sqlstateExclusionViolation:
		return ExclusionViolation
	case sqlstateStringTooLong:
		return StringTooLong
	case sqlstateInvalidText:
		return InvalidText
	case sqlstateDeadlockDetected:
		return DeadlockDetected
	case sqlstateQueryCanceled:
		return QueryCanceled
	default:
		return Other
	}
}

// MapSeverity maps the Postgres severity string onto a Severity.
// Unknown values are treated as errors.
func MapSeverity(severity string) Severity {
	switch Severity(severity) {
	case SeverityError, SeverityFatal, SeverityPanic, SeverityWarning,
		SeverityNotice, SeverityDebug, SeverityInfo, SeverityLog:
		return Severity(severity)
	default:
		return SeverityError
	}
}
