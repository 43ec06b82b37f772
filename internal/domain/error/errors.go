package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest      = 4000
	CodeEmptyDescription    = 4001
	CodeInvalidAmount       = 4002
	CodeNegativeAmount      = 4003
	CodeInvalidKind         = 4004
	CodeInvalidDate         = 4005
	CodeEmptyUsername       = 4006
	CodeEmptyPassword       = 4007
	CodeInvalidOwnerID      = 4008
	CodeInvalidCredentials  = 4010
	CodeInvalidSession      = 4011
	CodeTransactionNotFound = 4040
	CodeUserNotFound        = 4041
	CodeDuplicateUser       = 4090

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrEmptyDescription is returned when a transaction description is blank
	ErrEmptyDescription = errors.New("description cannot be empty")

	// ErrInvalidAmount is returned when the amount does not parse as a decimal number
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when the amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidKind is returned when the kind is not one of the allowed values
	ErrInvalidKind = errors.New("invalid transaction kind")

	// ErrInvalidDate is returned when the date is not a valid YYYY-MM-DD value
	ErrInvalidDate = errors.New("invalid date format")

	// ErrInvalidOwnerID is returned when the owner identity is missing or zero
	ErrInvalidOwnerID = errors.New("owner ID must be positive")

	// ErrEmptyUsername is returned when a registration username is blank
	ErrEmptyUsername = errors.New("username cannot be empty")

	// ErrEmptyPassword is returned when a registration password is blank
	ErrEmptyPassword = errors.New("password cannot be empty")

	// ErrTransactionNotFound is returned when no transaction with the given ID
	// exists for the calling owner. Transactions owned by other users look
	// exactly the same as absent ones.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser is returned when the username is already registered
	ErrDuplicateUser = errors.New("username already taken")

	// ErrInvalidCredentials is returned when login fails; unknown usernames and
	// wrong passwords are indistinguishable to the caller
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidSession is returned when a session token is unknown or expired
	ErrInvalidSession = errors.New("invalid or expired session")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrEmptyDescription):
		return CodeEmptyDescription
	case errors.Is(err, ErrNegativeAmount):
		return CodeNegativeAmount
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidKind):
		return CodeInvalidKind
	case errors.Is(err, ErrInvalidDate):
		return CodeInvalidDate
	case errors.Is(err, ErrInvalidOwnerID):
		return CodeInvalidOwnerID
	case errors.Is(err, ErrEmptyUsername):
		return CodeEmptyUsername
	case errors.Is(err, ErrEmptyPassword):
		return CodeEmptyPassword
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrInvalidSession):
		return CodeInvalidSession
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	default:
		return CodeInternalServer
	}
}

// IsValidationError reports whether the error belongs to the input-validation
// family that surfaces as a 400 at the HTTP boundary
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyDescription) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrInvalidKind) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrEmptyUsername) ||
		errors.Is(err, ErrEmptyPassword) ||
		errors.Is(err, ErrInvalidOwnerID)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrUserNotFound)
}

// LedgerError represents an error that occurred during a ledger operation
type LedgerError struct {
	OwnerID       uint64
	TransactionID uint64
	Operation     string
	Err           error
}

// Error implements the error interface for LedgerError
func (e *LedgerError) Error() string {
	return fmt.Sprintf("ledger %s failed for owner %d (transaction: %d): %v",
		e.Operation, e.OwnerID, e.TransactionID, e.Err)
}

// Unwrap returns the underlying error
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *LedgerError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "ledger_error",
		"owner_id":       e.OwnerID,
		"transaction_id": e.TransactionID,
		"operation":      e.Operation,
		"error":          e.Err.Error(),
		"error_code":     ErrorCode(e.Err),
	}
}

// NewLedgerError creates a detailed ledger operation error
func NewLedgerError(operation string, ownerID, transactionID uint64, err error) error {
	return &LedgerError{
		OwnerID:       ownerID,
		TransactionID: transactionID,
		Operation:     operation,
		Err:           err,
	}
}

// DuplicateUserError provides detailed information about a rejected registration
type DuplicateUserError struct {
	Username string
}

// Error implements the error interface
func (e *DuplicateUserError) Error() string {
	return fmt.Sprintf("duplicate user: username %q is already registered", e.Username)
}

// Is checks if the target error is an ErrDuplicateUser
func (e *DuplicateUserError) Is(target error) bool {
	return target == ErrDuplicateUser
}

// LogFields returns a map of fields for structured logging
func (e *DuplicateUserError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "duplicate_user",
		"username":   e.Username,
		"error_code": CodeDuplicateUser,
	}
}

// NewDuplicateUserError creates a new detailed duplicate user error
func NewDuplicateUserError(username string) error {
	return &DuplicateUserError{Username: username}
}

// IsDuplicateUserError checks if the error is a duplicate user error
func IsDuplicateUserError(err error) bool {
	return errors.Is(err, ErrDuplicateUser)
}
