package ledger

import (
	"context"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/finance-ledger/internal/domain/port/usecase"
)

// Service implements the ledger business logic on top of the transaction
// repository. Each operation is one repository call; the store's own
// transaction isolation is the only concurrency boundary needed.
type Service struct {
	transactionRepo persistence.TransactionRepository
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
}

// NewService creates a new ledger service instance
func NewService(
	transactionRepo persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.LedgerUseCase {
	return &Service{
		transactionRepo: transactionRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// List returns the owner's transactions for the filtered month, the month's
// income/expense totals, and the running balance over the entire history.
// The balance is deliberately filter-independent.
func (s *Service) List(ctx context.Context, ownerID uint64, monthFilter string) (*usecase.LedgerView, error) {
	if ownerID == 0 {
		return nil, errs.ErrInvalidOwnerID
	}

	monthKey := entity.NormalizeMonthFilter(monthFilter, s.timeProvider.Now())

	transactions, err := s.transactionRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("Failed to list transactions", map[string]any{
			"owner_id": ownerID,
			"error":    err.Error(),
		})
		return nil, err
	}

	view := &usecase.LedgerView{
		Transactions: make([]*entity.Transaction, 0, len(transactions)),
		MonthKey:     monthKey,
		DisplayMonth: entity.DisplayMonth(monthKey),
	}

	// Single pass: balance over everything, totals over the month subset
	for _, t := range transactions {
		view.BalanceInCents += t.SignedCents()
		if t.MonthKey() != monthKey {
			continue
		}
		view.Transactions = append(view.Transactions, t)
		if t.IsIncome() {
			view.IncomeTotalInCents += t.AmountInCents
		} else {
			view.ExpenseTotalInCents += t.AmountInCents
		}
	}

	s.logger.Debug("Ledger listed", map[string]any{
		"owner_id": ownerID,
		"month":    monthKey,
		"total":    len(transactions),
		"in_month": len(view.Transactions),
		"balance":  entity.CentsToDecimalString(view.BalanceInCents),
	})

	return view, nil
}

// Get retrieves a single transaction scoped to the owner
func (s *Service) Get(ctx context.Context, ownerID, id uint64) (*entity.Transaction, error) {
	if ownerID == 0 {
		return nil, errs.ErrInvalidOwnerID
	}
	return s.transactionRepo.GetByID(ctx, ownerID, id)
}

// Create validates the input and records a new transaction owned by ownerID
func (s *Service) Create(ctx context.Context, ownerID uint64, input usecase.TransactionInput) (uint64, error) {
	transaction, err := entity.NewTransaction(
		ownerID,
		input.Description,
		input.Date,
		input.Amount,
		input.Kind,
		input.Category,
		s.timeProvider,
	)
	if err != nil {
		s.logger.Warn("Rejected invalid transaction input", map[string]any{
			"owner_id": ownerID,
			"error":    err.Error(),
		})
		return 0, err
	}

	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		s.logger.Error("Failed to create transaction", map[string]any{
			"owner_id": ownerID,
			"error":    err.Error(),
		})
		return 0, errs.NewLedgerError("create", ownerID, 0, err)
	}

	s.logger.Info("Transaction created", map[string]any{
		"owner_id":       ownerID,
		"transaction_id": transaction.ID,
		"kind":           transaction.Kind,
		"amount":         transaction.DecimalAmount(),
		"date":           transaction.Date,
	})

	return transaction.ID, nil
}

// Update validates the input and rewrites the targeted transaction's fields.
// ID and owner are never changed; a transaction owned by someone else behaves
// exactly like a missing one.
func (s *Service) Update(ctx context.Context, ownerID, id uint64, input usecase.TransactionInput) error {
	transaction, err := entity.NewTransaction(
		ownerID,
		input.Description,
		input.Date,
		input.Amount,
		input.Kind,
		input.Category,
		s.timeProvider,
	)
	if err != nil {
		s.logger.Warn("Rejected invalid transaction input", map[string]any{
			"owner_id":       ownerID,
			"transaction_id": id,
			"error":          err.Error(),
		})
		return err
	}
	transaction.ID = id

	if err := s.transactionRepo.Update(ctx, transaction); err != nil {
		if err == errs.ErrTransactionNotFound {
			return err
		}
		s.logger.Error("Failed to update transaction", map[string]any{
			"owner_id":       ownerID,
			"transaction_id": id,
			"error":          err.Error(),
		})
		return errs.NewLedgerError("update", ownerID, id, err)
	}

	s.logger.Info("Transaction updated", map[string]any{
		"owner_id":       ownerID,
		"transaction_id": id,
	})

	return nil
}

// Delete removes the transaction when it exists and belongs to the owner.
// Absent or foreign IDs succeed silently so existence never leaks.
func (s *Service) Delete(ctx context.Context, ownerID, id uint64) error {
	if ownerID == 0 {
		return errs.ErrInvalidOwnerID
	}

	if err := s.transactionRepo.Delete(ctx, ownerID, id); err != nil {
		s.logger.Error("Failed to delete transaction", map[string]any{
			"owner_id":       ownerID,
			"transaction_id": id,
			"error":          err.Error(),
		})
		return errs.NewLedgerError("delete", ownerID, id, err)
	}

	s.logger.Info("Transaction deleted", map[string]any{
		"owner_id":       ownerID,
		"transaction_id": id,
	})

	return nil
}

// RunningBalance returns the signed sum of the owner's entire history in
// cents. A user with no transactions has a balance of zero.
func (s *Service) RunningBalance(ctx context.Context, ownerID uint64) (int64, error) {
	if ownerID == 0 {
		return 0, errs.ErrInvalidOwnerID
	}

	transactions, err := s.transactionRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("Failed to compute running balance", map[string]any{
			"owner_id": ownerID,
			"error":    err.Error(),
		})
		return 0, err
	}

	var balance int64
	for _, t := range transactions {
		balance += t.SignedCents()
	}

	return balance, nil
}
