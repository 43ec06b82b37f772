package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/finance-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	fixedTime := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Successful creation", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		session, err := NewSession("token-123", 7, 24*time.Hour, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "token-123", session.Token)
		assert.Equal(t, uint64(7), session.UserID)
		assert.Equal(t, fixedTime, session.CreatedAt)
		assert.Equal(t, fixedTime.Add(24*time.Hour), session.ExpiresAt)
	})

	t.Run("Empty token", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		_, err := NewSession("", 7, 24*time.Hour, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidSession)
	})

	t.Run("Zero user", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		_, err := NewSession("token-123", 0, 24*time.Hour, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidOwnerID)
	})
}

func TestSessionIsExpired(t *testing.T) {
	expiry := time.Date(2024, 3, 16, 12, 0, 0, 0, time.UTC)
	session := &Session{Token: "t", UserID: 1, ExpiresAt: expiry}

	assert.False(t, session.IsExpired(expiry.Add(-time.Second)))
	assert.True(t, session.IsExpired(expiry))
	assert.True(t, session.IsExpired(expiry.Add(time.Hour)))
}

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Successful creation", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		user, err := NewUser("  ana  ", "$2a$10$hash", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "ana", user.Username)
		assert.Equal(t, "$2a$10$hash", user.PasswordHash)
		assert.Equal(t, fixedTime, user.CreatedAt)
	})

	t.Run("Empty username", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		_, err := NewUser("   ", "$2a$10$hash", mockTime)
		assert.ErrorIs(t, err, errs.ErrEmptyUsername)
	})

	t.Run("Empty hash", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		_, err := NewUser("ana", "", mockTime)
		assert.ErrorIs(t, err, errs.ErrEmptyPassword)
	})
}
