package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
)

// SessionRepository defines essential methods to interact with login sessions
type SessionRepository interface {
	// Create persists a newly issued session
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, session *entity.Session) error

	// GetByToken retrieves a session by its opaque token
	//
	// Possible errors:
	// - ErrInvalidSession: If no session with the given token exists
	// - ErrDatabaseConnection: If database connection fails
	GetByToken(ctx context.Context, token string) (*entity.Session, error)

	// Delete removes a session; deleting an unknown token is a no-op
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Delete(ctx context.Context, token string) error

	// DeleteExpired removes all sessions that expired before the given instant
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	DeleteExpired(ctx context.Context, before time.Time) error
}
