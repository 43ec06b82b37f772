package persistence

import (
	"context"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
)

// TransactionRepository defines essential methods to interact with transaction
// data. Every read, update and delete is scoped by the owner identity; a
// transaction belonging to another user is indistinguishable from an absent
// one. This is the access-control boundary, not a convenience filter.
type TransactionRepository interface {
	// Create saves a new transaction and assigns its ID
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// ListByOwner returns all of the owner's transactions ordered by date
	// ascending, ties broken by ascending ID. An empty ledger is not an error.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByOwner(ctx context.Context, ownerID uint64) ([]*entity.Transaction, error)

	// GetByID retrieves one transaction by ID, scoped to the owner
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no such transaction exists for this owner
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, ownerID, id uint64) (*entity.Transaction, error)

	// Update rewrites the mutable fields of an existing transaction, matching
	// on both ID and owner
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no such transaction exists for this owner
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes the transaction if it exists and belongs to the owner.
	// Deleting an absent or foreign transaction is a silent no-op.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Delete(ctx context.Context, ownerID, id uint64) error
}
