package apperrors

import (
	"errors"
	"strings"
)

// Kind classifies an application error. Handlers map each kind to exactly one HTTP status.
type Kind string

const (
	KindNotFound     Kind = "NOT_FOUND"
	KindConflict     Kind = "CONFLICT"
	KindForbidden    Kind = "FORBIDDEN"
	KindValidation   Kind = "VALIDATION"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindInternal     Kind = "INTERNAL"
)

// AppError is the error type returned by services and repositories.
// Details carries the individual messages of a validation failure.
type AppError struct {
	Kind    Kind
	Message string
	Details []string
	Err     error
}

func (e *AppError) Error() string {
	msg := e.Message
	if len(e.Details) > 0 {
		msg += ": " + strings.Join(e.Details, "; ")
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is match any AppError of the same kind against the kind sentinels below.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Message == "" && t.Kind == e.Kind
}

// Kind sentinels. They carry no message so errors.Is(err, ErrNotFound) matches
// every not-found error regardless of which entity produced it.
var (
	// ErrNotFound indicates that a requested resource could not be found.
	ErrNotFound = &AppError{Kind: KindNotFound}
	// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
	ErrDuplicate = &AppError{Kind: KindConflict}
	// ErrForbidden indicates that the operation is not allowed on the resource.
	ErrForbidden = &AppError{Kind: KindForbidden}
	// ErrValidation indicates that input data failed validation checks.
	ErrValidation = &AppError{Kind: KindValidation}
	// ErrUnauthorized indicates missing or invalid credentials.
	ErrUnauthorized = &AppError{Kind: KindUnauthorized}
)

// NewAppError wraps an unexpected failure (driver errors and the like).
func NewAppError(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewConflictError(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Kind: KindForbidden, Message: message}
}

// NewValidationFailedError returns a validation error with one or more detail messages.
func NewValidationFailedError(message string, details ...string) *AppError {
	return &AppError{Kind: KindValidation, Message: message, Details: details}
}

// Domain errors for the chart of accounts.

func CompanyNotFound(companyID string) *AppError {
	return NewNotFoundError("company " + companyID + " not found")
}

func GroupNotFound(groupID string) *AppError {
	return NewNotFoundError("group " + groupID + " not found")
}

func LedgerNotFound(ledgerID string) *AppError {
	return NewNotFoundError("ledger " + ledgerID + " not found")
}

func StationNotFound(stationID string) *AppError {
	return NewNotFoundError("station " + stationID + " not found")
}

func DuplicateCompanyName(name string) *AppError {
	return NewConflictError("company with name '" + name + "' already exists")
}

func DuplicateGroupName(name string) *AppError {
	return NewConflictError("group with name '" + name + "' already exists in this company")
}

func DuplicateLedgerName(name string) *AppError {
	return NewConflictError("ledger with name '" + name + "' already exists in this company")
}

func LedgerNotDeletable(name string) *AppError {
	return NewForbiddenError("ledger '" + name + "' cannot be deleted")
}

func LedgerHasTransactions(name string) *AppError {
	return NewForbiddenError("ledger '" + name + "' has transactions and cannot be deleted")
}

func LedgerNotEditable(name string) *AppError {
	return NewForbiddenError("ledger '" + name + "' cannot be edited")
}

// FieldNotEditable is returned when a default ledger update touches a field outside its editableFields.
func FieldNotEditable(ledgerName string, fields ...string) *AppError {
	return &AppError{
		Kind:    KindForbidden,
		Message: "fields not editable on default ledger '" + ledgerName + "'",
		Details: fields,
	}
}

func GroupNotEditable(name string) *AppError {
	return NewForbiddenError("group '" + name + "' cannot be edited")
}

func GroupNotDeletable(name string) *AppError {
	return NewForbiddenError("group '" + name + "' cannot be deleted")
}

func GroupInUse(name string) *AppError {
	return NewForbiddenError("group '" + name + "' has sub-groups or ledgers and cannot be deleted")
}

// KindOf returns the kind of err, or KindInternal when err is not an AppError.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// DetailsOf returns the validation details carried by err, if any.
func DetailsOf(err error) []string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Details
	}
	return nil
}

// MessageOf returns the client-facing message of err without its wrapped cause.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return err.Error()
}
