package usecase

import (
	"context"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
)

// TransactionInput carries the raw field values for creating or updating a
// transaction. All values arrive as strings straight from the request; the
// domain owns validation and conversion.
type TransactionInput struct {
	Description string `json:"description"`
	Date        string `json:"date"`
	Amount      string `json:"amount"`
	Kind        string `json:"kind"`
	Category    string `json:"category"`
}

// LedgerView is the aggregate returned by List: the month's transactions plus
// the period totals and the all-time running balance.
type LedgerView struct {
	Transactions        []*entity.Transaction // Subset matching the month filter
	BalanceInCents      int64                 // Signed sum over the entire history
	IncomeTotalInCents  int64                 // Sum of income amounts within the month
	ExpenseTotalInCents int64                 // Sum of expense amounts within the month (unsigned magnitude)
	MonthKey            string                // Internal YYYY-MM filter key that was applied
	DisplayMonth        string                // The same month in MM/YYYY form for the user
}

// LedgerUseCase defines the owner-scoped ledger operations
type LedgerUseCase interface {
	// List returns the owner's transactions restricted to the given month
	// filter ("MM/YYYY"; blank or malformed input falls back to the current
	// month), together with period totals and the running balance
	List(ctx context.Context, ownerID uint64, monthFilter string) (*LedgerView, error)

	// Get retrieves a single transaction, scoped to the owner
	Get(ctx context.Context, ownerID, id uint64) (*entity.Transaction, error)

	// Create validates the input and records a new transaction, returning its ID
	Create(ctx context.Context, ownerID uint64, input TransactionInput) (uint64, error)

	// Update validates the input and rewrites an existing transaction's fields;
	// ID and owner never change
	Update(ctx context.Context, ownerID, id uint64, input TransactionInput) error

	// Delete removes a transaction; absent or foreign IDs are a silent no-op
	Delete(ctx context.Context, ownerID, id uint64) error

	// RunningBalance returns the signed sum of the owner's entire history in
	// cents, independent of any month filter
	RunningBalance(ctx context.Context, ownerID uint64) (int64, error)
}
