package usecase

import (
	"context"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
)

// AuthUseCase defines credential and session operations. The ledger side only
// ever sees the resolved owner identity; plaintext passwords stop here.
type AuthUseCase interface {
	// Register creates a new account with a hashed password
	//
	// Possible errors:
	// - ErrEmptyUsername / ErrEmptyPassword: blank credentials
	// - ErrDuplicateUser: username already registered
	Register(ctx context.Context, username, password string) (*entity.User, error)

	// Authenticate verifies the credentials and issues an opaque session token
	//
	// Possible errors:
	// - ErrInvalidCredentials: unknown username or wrong password
	Authenticate(ctx context.Context, username, password string) (string, error)

	// ResolveSession maps a session token back to the owning user
	//
	// Possible errors:
	// - ErrInvalidSession: unknown or expired token
	ResolveSession(ctx context.Context, token string) (*entity.User, error)

	// Logout revokes a session token; unknown tokens are a no-op
	Logout(ctx context.Context, token string) error
}
