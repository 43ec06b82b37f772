package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRepository implements persistence.TransactionRepository using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	return model.Transaction{
		ID:            transaction.ID,
		UserID:        transaction.UserID,
		Description:   transaction.Description,
		Date:          transaction.Date,
		AmountInCents: transaction.AmountInCents,
		Kind:          string(transaction.Kind),
		Category:      transaction.Category,
		CreatedAt:     transaction.CreatedAt,
	}
}

// modelToEntity converts a database model to a transaction entity
func (r *TransactionRepository) modelToEntity(transactionModel *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:            transactionModel.ID,
		UserID:        transactionModel.UserID,
		Description:   transactionModel.Description,
		Date:          transactionModel.Date,
		AmountInCents: transactionModel.AmountInCents,
		Kind:          entity.TransactionKind(transactionModel.Kind),
		Category:      transactionModel.Category,
		CreatedAt:     transactionModel.CreatedAt,
	}
}

// Create saves a new transaction and assigns its generated ID
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.logger.Debug("Creating transaction", map[string]any{
		"user_id": transaction.UserID,
		"kind":    transaction.Kind,
	})

	transactionModel := r.entityToModel(transaction)
	result := r.db.WithContext(ctx).Create(&transactionModel)
	if result.Error != nil {
		r.logger.Error("Failed to create transaction", map[string]any{
			"user_id":    transaction.UserID,
			"error":      result.Error.Error(),
			"error_type": r.errorClassifier.Classify(result.Error),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transaction.ID = transactionModel.ID
	r.logger.Info("Transaction created successfully", map[string]any{
		"transaction_id": transaction.ID,
		"user_id":        transaction.UserID,
	})
	return nil
}

// ListByOwner retrieves all transactions for a user ordered by date then ID
func (r *TransactionRepository) ListByOwner(ctx context.Context, ownerID uint64) ([]*entity.Transaction, error) {
	var transactionModels []model.Transaction
	result := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("date ASC, id ASC").
		Find(&transactionModels)
	if result.Error != nil {
		r.logger.Error("Failed to list transactions", map[string]any{
			"user_id": ownerID,
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transactions := make([]*entity.Transaction, 0, len(transactionModels))
	for i := range transactionModels {
		transactions = append(transactions, r.modelToEntity(&transactionModels[i]))
	}
	return transactions, nil
}

// GetByID retrieves a single transaction scoped to its owner
func (r *TransactionRepository) GetByID(ctx context.Context, ownerID, id uint64) (*entity.Transaction, error) {
	var transactionModel model.Transaction
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		r.logger.Error("Failed to get transaction", map[string]any{
			"transaction_id": id,
			"user_id":        ownerID,
			"error":          result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return r.modelToEntity(&transactionModel), nil
}

// Update replaces the mutable fields of a transaction scoped to its owner
func (r *TransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	r.logger.Debug("Updating transaction", map[string]any{
		"transaction_id": transaction.ID,
		"user_id":        transaction.UserID,
	})

	transactionModel := r.entityToModel(transaction)
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ? AND user_id = ?", transaction.ID, transaction.UserID).
		Updates(map[string]interface{}{
			"description":     transactionModel.Description,
			"date":            transactionModel.Date,
			"amount_in_cents": transactionModel.AmountInCents,
			"kind":            transactionModel.Kind,
			"category":        transactionModel.Category,
		})

	if result.Error != nil {
		r.logger.Error("Failed to update transaction", map[string]any{
			"transaction_id": transaction.ID,
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}

	r.logger.Info("Transaction updated successfully", map[string]any{
		"transaction_id": transaction.ID,
		"user_id":        transaction.UserID,
	})
	return nil
}

// Delete removes a transaction scoped to its owner, succeeding even when
// no row matches
func (r *TransactionRepository) Delete(ctx context.Context, ownerID, id uint64) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.Transaction{})
	if result.Error != nil {
		r.logger.Error("Failed to delete transaction", map[string]any{
			"transaction_id": id,
			"user_id":        ownerID,
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	r.logger.Info("Transaction delete completed", map[string]any{
		"transaction_id": id,
		"user_id":        ownerID,
		"rows_affected":  result.RowsAffected,
	})
	return nil
}
