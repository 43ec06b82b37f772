package error

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		err      error
		expected int
	}{
		{ErrEmptyDescription, CodeEmptyDescription},
		{ErrInvalidAmount, CodeInvalidAmount},
		{ErrNegativeAmount, CodeNegativeAmount},
		{ErrInvalidKind, CodeInvalidKind},
		{ErrInvalidDate, CodeInvalidDate},
		{ErrEmptyUsername, CodeEmptyUsername},
		{ErrEmptyPassword, CodeEmptyPassword},
		{ErrTransactionNotFound, CodeTransactionNotFound},
		{ErrUserNotFound, CodeUserNotFound},
		{ErrDuplicateUser, CodeDuplicateUser},
		{ErrInvalidCredentials, CodeInvalidCredentials},
		{ErrInvalidSession, CodeInvalidSession},
		{ErrInvalidRequest, CodeInvalidRequest},
		{ErrInternalServer, CodeInternalServer},
		{errors.New("anything else"), CodeInternalServer},
	}

	for _, tc := range testCases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			assert.Equal(t, tc.expected, ErrorCode(tc.err))
		})
	}
}

func TestErrorCodeSeesThroughWrapping(t *testing.T) {
	wrapped := NewLedgerError("update", 1, 5, ErrTransactionNotFound)
	assert.Equal(t, CodeTransactionNotFound, ErrorCode(wrapped))
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(ErrEmptyDescription))
	assert.True(t, IsValidationError(ErrInvalidAmount))
	assert.True(t, IsValidationError(ErrNegativeAmount))
	assert.True(t, IsValidationError(ErrInvalidKind))
	assert.True(t, IsValidationError(ErrInvalidDate))
	assert.False(t, IsValidationError(ErrTransactionNotFound))
	assert.False(t, IsValidationError(ErrInternalServer))
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrTransactionNotFound))
	assert.True(t, IsNotFoundError(ErrUserNotFound))
	assert.False(t, IsNotFoundError(ErrInvalidAmount))
}

func TestLedgerError(t *testing.T) {
	inner := ErrDatabaseConnection
	err := NewLedgerError("create", 1, 0, inner)

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "create")

	var ledgerErr *LedgerError
	assert.True(t, errors.As(err, &ledgerErr))

	fields := ledgerErr.LogFields()
	assert.Equal(t, "create", fields["operation"])
	assert.Equal(t, uint64(1), fields["owner_id"])
}

func TestDuplicateUserError(t *testing.T) {
	err := NewDuplicateUserError("ana")

	assert.ErrorIs(t, err, ErrDuplicateUser)
	assert.True(t, IsDuplicateUserError(err))
	assert.Contains(t, err.Error(), "ana")

	var dupErr *DuplicateUserError
	assert.True(t, errors.As(err, &dupErr))
	assert.Equal(t, "ana", dupErr.LogFields()["username"])
}
