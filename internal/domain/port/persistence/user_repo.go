package persistence

import (
	"context"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
)

// UserRepository defines essential methods to interact with user accounts
type UserRepository interface {
	// Create registers a new user and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateUser: If the username is already taken
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If no user with the given ID exists
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByUsername retrieves a user by username
	//
	// Possible errors:
	// - ErrUserNotFound: If no user with the given username exists
	// - ErrDatabaseConnection: If database connection fails
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
