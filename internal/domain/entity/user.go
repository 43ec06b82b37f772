package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-ledger/internal/domain/port/core"
)

// User represents a registered account that owns a ledger of transactions.
// The plaintext password never reaches the domain; only the irreversible hash
// is carried here.
type User struct {
	ID           uint64    // Unique identifier, assigned on creation
	Username     string    // Unique, non-empty
	PasswordHash string    // bcrypt hash of the password
	CreatedAt    time.Time // When the account was registered
}

// NewUser creates a new user with the given username and password hash
func NewUser(username, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errs.ErrEmptyUsername
	}
	if passwordHash == "" {
		return nil, errs.ErrEmptyPassword
	}

	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    timeProvider.Now(),
	}, nil
}
