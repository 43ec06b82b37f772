package handler

import (
	"errors"
	"net/http"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// statusFromError maps domain errors onto HTTP status codes
func statusFromError(err error) int {
	switch {
	case domainerr.IsValidationError(err) || errors.Is(err, domainerr.ErrInvalidRequest):
		return http.StatusBadRequest
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case domainerr.IsDuplicateUserError(err) || errors.Is(err, domainerr.ErrDuplicateUser):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrInvalidCredentials) || errors.Is(err, domainerr.ErrInvalidSession):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the standardized error body for a domain error
func respondError(c *gin.Context, err error) {
	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		// Internal details stay in the logs
		message = "Internal server error"
	}
	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// transactionToDTO converts a transaction entity to its API representation
func transactionToDTO(transaction *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:              transaction.ID,
		Description:     transaction.Description,
		Date:            transaction.Date,
		Amount:          transaction.DecimalAmount(),
		AmountFormatted: transaction.FormattedAmount(),
		Kind:            string(transaction.Kind),
		Category:        transaction.Category,
	}
}
