package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-ledger/internal/domain/port/core"
)

// TransactionKind represents the direction of a transaction
type TransactionKind string

// Transaction kinds
const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

// DateLayout is the calendar date format used for transaction dates
const DateLayout = "2006-01-02"

// Transaction represents a single income or expense record in a user's ledger
type Transaction struct {
	ID            uint64          // Unique identifier, assigned on creation
	UserID        uint64          // Owner; every transaction belongs to exactly one user
	Description   string          // Non-empty free-text description
	Date          string          // Calendar date in YYYY-MM-DD form
	AmountInCents int64           // Non-negative amount; sign is carried by Kind
	Kind          TransactionKind // income or expense
	Category      *string         // Optional; nil when not provided
	CreatedAt     time.Time       // When the record was created
}

// NewTransaction validates the raw field values and builds a transaction.
// A blank date defaults to today; a blank category is stored as absent.
func NewTransaction(
	ownerID uint64,
	description string,
	date string,
	amount string,
	kind string,
	category string,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if ownerID == 0 {
		return nil, errs.ErrInvalidOwnerID
	}
	if strings.TrimSpace(description) == "" {
		return nil, errs.ErrEmptyDescription
	}

	cents, err := ParseAmount(amount)
	if err != nil {
		return nil, err
	}

	if !isValidKind(kind) {
		return nil, errs.ErrInvalidKind
	}

	date = strings.TrimSpace(date)
	if date == "" {
		date = timeProvider.Now().Format(DateLayout)
	} else if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, errs.ErrInvalidDate
	}

	return &Transaction{
		UserID:        ownerID,
		Description:   description,
		Date:          date,
		AmountInCents: cents,
		Kind:          TransactionKind(kind),
		Category:      NormalizeCategory(category),
		CreatedAt:     timeProvider.Now(),
	}, nil
}

// NormalizeCategory maps blank input to "absent" and keeps anything else
// verbatim
func NormalizeCategory(category string) *string {
	if strings.TrimSpace(category) == "" {
		return nil
	}
	return &category
}

// IsIncome returns true if this transaction increases the balance
func (t *Transaction) IsIncome() bool {
	return t.Kind == KindIncome
}

// IsExpense returns true if this transaction decreases the balance
func (t *Transaction) IsExpense() bool {
	return t.Kind == KindExpense
}

// SignedCents returns the amount with its balance sign applied: positive for
// income, negative for expense
func (t *Transaction) SignedCents() int64 {
	if t.IsExpense() {
		return -t.AmountInCents
	}
	return t.AmountInCents
}

// MonthKey returns the YYYY-MM prefix of the transaction date
func (t *Transaction) MonthKey() string {
	if len(t.Date) < 7 {
		return ""
	}
	return t.Date[:7]
}

// DecimalAmount returns the amount as a plain two-decimal string
func (t *Transaction) DecimalAmount() string {
	return CentsToDecimalString(t.AmountInCents)
}

// FormattedAmount returns the amount in display form ("1.234,50")
func (t *Transaction) FormattedAmount() string {
	return FormatCurrency(t.AmountInCents)
}

// isValidKind validates if the kind is allowed
func isValidKind(kind string) bool {
	return kind == string(KindIncome) || kind == string(KindExpense)
}
