package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Family-level errors
	ErrFamilyNotFound = NewBaseError(
		http.StatusNotFound,
		"FAMILY_NOT_FOUND",
		"family record not found",
		"",
	)

	ErrFamilyArchived = NewBaseError(
		http.StatusConflict,
		"FAMILY_ARCHIVED",
		"family record has been archived and can no longer be changed",
		"",
	)

	ErrFamilyMismatch = NewBaseError(
		http.StatusBadRequest,
		"FAMILY_REFERENCE_MISMATCH",
		"the record references a different family",
		"",
	)

	ErrLivingMembers = NewBaseError(
		http.StatusConflict,
		"FAMILY_HAS_LIVING_MEMBERS",
		"a family with living members cannot be archived",
		"",
	)

	// Member and relationship errors
	ErrUnknownMember = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_MEMBER",
		"referenced member is not part of this family",
		"",
	)

	ErrSelfReference = NewBaseError(
		http.StatusBadRequest,
		"SELF_REFERENCE",
		"a record cannot relate a member to themselves",
		"",
	)

	ErrLineageCycle = NewBaseError(
		http.StatusConflict,
		"LINEAGE_CYCLE",
		"the parent-child link would make a member their own ancestor",
		"",
	)

	// Marriage errors
	ErrDuplicateActiveMarriage = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_ACTIVE_MARRIAGE",
		"an active marriage between these members already exists",
		"",
	)

	ErrSpouseDeceased = NewBaseError(
		http.StatusBadRequest,
		"SPOUSE_DECEASED",
		"a marriage cannot be registered for a deceased member",
		"",
	)

	ErrSpouseMinor = NewBaseError(
		http.StatusBadRequest,
		"SPOUSE_MINOR",
		"both spouses must be adults",
		"",
	)

	ErrMarriageDateInFuture = NewBaseError(
		http.StatusBadRequest,
		"MARRIAGE_DATE_IN_FUTURE",
		"marriage date cannot be in the future",
		"",
	)

	ErrMarriageNotFound = NewBaseError(
		http.StatusNotFound,
		"MARRIAGE_NOT_FOUND",
		"marriage record not found in this family",
		"",
	)

	ErrInvalidStatusChange = NewBaseError(
		http.StatusConflict,
		"INVALID_STATUS_CHANGE",
		"the marriage cannot move to the requested status",
		"",
	)

	// Polygamous-house errors
	ErrNotPolygamous = NewBaseError(
		http.StatusConflict,
		"FAMILY_NOT_POLYGAMOUS",
		"polygamous houses may only exist in a polygamous family",
		"",
	)

	ErrHouseOrderTaken = NewBaseError(
		http.StatusConflict,
		"HOUSE_ORDER_TAKEN",
		"a house with this establishment order already exists",
		"",
	)

	ErrConsentRequired = NewBaseError(
		http.StatusBadRequest,
		"CONSENT_REQUIRED",
		"houses beyond the first require documented consent from existing wives",
		"",
	)

	ErrHouseNotFound = NewBaseError(
		http.StatusNotFound,
		"HOUSE_NOT_FOUND",
		"house record not found in this family",
		"",
	)

	ErrHouseAlreadyDissolved = NewBaseError(
		http.StatusConflict,
		"HOUSE_ALREADY_DISSOLVED",
		"the house has already been dissolved",
		"",
	)

	// Cohabitation and adoption errors
	ErrWitnessRequired = NewBaseError(
		http.StatusBadRequest,
		"WITNESS_REQUIRED",
		"a cohabitation record requires at least one witness",
		"",
	)

	ErrInvalidDateRange = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DATE_RANGE",
		"the end date must be after the start date",
		"",
	)

	ErrConsentNotObtained = NewBaseError(
		http.StatusBadRequest,
		"ADOPTION_CONSENT_MISSING",
		"an adoption cannot be recorded without the required consent",
		"",
	)

	// Aggregate invariant errors
	ErrInvariantViolation = NewBaseError(
		http.StatusInternalServerError,
		"INVARIANT_VIOLATION",
		"the family record failed its consistency check",
		"",
	)

	ErrVersionConflict = NewBaseError(
		http.StatusConflict,
		"VERSION_CONFLICT",
		"the family record was changed by another request",
		"",
	)

	// Evidence errors
	ErrEvidenceNotFound = NewBaseError(
		http.StatusBadRequest,
		"EVIDENCE_NOT_FOUND",
		"referenced evidence document was not found in storage",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
