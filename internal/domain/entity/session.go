package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-ledger/internal/domain/port/core"
)

// Session represents an opaque login token bound to a user identity
type Session struct {
	Token     string    // Opaque token handed to the client
	UserID    uint64    // Owner identity the token resolves to
	CreatedAt time.Time // When the session was issued
	ExpiresAt time.Time // After this instant the token is rejected
}

// NewSession issues a session for the given user, valid for ttl from now
func NewSession(token string, userID uint64, ttl time.Duration, timeProvider coreport.TimeProvider) (*Session, error) {
	if token == "" {
		return nil, errs.ErrInvalidSession
	}
	if userID == 0 {
		return nil, errs.ErrInvalidOwnerID
	}

	now := timeProvider.Now()
	return &Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}, nil
}

// IsExpired reports whether the session is past its expiry at the given instant
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
