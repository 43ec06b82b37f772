package handler

import (
	"net/http"
	"strconv"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// LedgerHandler handles transaction-related HTTP requests
type LedgerHandler struct {
	ledgerService usecase.LedgerUseCase
	logger        coreport.Logger
}

// NewLedgerHandler creates a new ledger handler instance
func NewLedgerHandler(ledgerService usecase.LedgerUseCase, logger coreport.Logger) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
		logger:        logger,
	}
}

// List handles GET /transactions?month=MM/YYYY
func (h *LedgerHandler) List(c *gin.Context) {
	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, domainerr.ErrInvalidSession)
		return
	}

	view, err := h.ledgerService.List(c.Request.Context(), ownerID, c.Query("month"))
	if err != nil {
		h.logger.Error("Failed to list transactions", map[string]any{
			"user_id": ownerID,
			"error":   err.Error(),
		})
		respondError(c, err)
		return
	}

	transactions := make([]dto.TransactionResponse, 0, len(view.Transactions))
	for _, transaction := range view.Transactions {
		transactions = append(transactions, transactionToDTO(transaction))
	}

	c.JSON(http.StatusOK, dto.LedgerResponse{
		Month:                 view.MonthKey,
		DisplayMonth:          view.DisplayMonth,
		Transactions:          transactions,
		IncomeTotal:           entity.CentsToDecimalString(view.IncomeTotalInCents),
		IncomeTotalFormatted:  entity.FormatCurrency(view.IncomeTotalInCents),
		ExpenseTotal:          entity.CentsToDecimalString(view.ExpenseTotalInCents),
		ExpenseTotalFormatted: entity.FormatCurrency(view.ExpenseTotalInCents),
		Balance:               entity.CentsToDecimalString(view.BalanceInCents),
		BalanceFormatted:      entity.FormatCurrency(view.BalanceInCents),
	})
}

// Get handles GET /transactions/:id
func (h *LedgerHandler) Get(c *gin.Context) {
	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, domainerr.ErrInvalidSession)
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	transaction, err := h.ledgerService.Get(c.Request.Context(), ownerID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, transactionToDTO(transaction))
}

// Create handles POST /transactions
func (h *LedgerHandler) Create(c *gin.Context) {
	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, domainerr.ErrInvalidSession)
		return
	}

	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("Invalid transaction request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	id, err := h.ledgerService.Create(c.Request.Context(), ownerID, requestToInput(req))
	if err != nil {
		respondError(c, err)
		return
	}

	transaction, err := h.ledgerService.Get(c.Request.Context(), ownerID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, transactionToDTO(transaction))
}

// Update handles PUT /transactions/:id
func (h *LedgerHandler) Update(c *gin.Context) {
	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, domainerr.ErrInvalidSession)
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	if err := h.ledgerService.Update(c.Request.Context(), ownerID, id, requestToInput(req)); err != nil {
		respondError(c, err)
		return
	}

	transaction, err := h.ledgerService.Get(c.Request.Context(), ownerID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, transactionToDTO(transaction))
}

// Delete handles DELETE /transactions/:id
func (h *LedgerHandler) Delete(c *gin.Context) {
	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, domainerr.ErrInvalidSession)
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.ledgerService.Delete(c.Request.Context(), ownerID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Balance handles GET /balance
func (h *LedgerHandler) Balance(c *gin.Context) {
	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, domainerr.ErrInvalidSession)
		return
	}

	balance, err := h.ledgerService.RunningBalance(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		UserID:           ownerID,
		Balance:          entity.CentsToDecimalString(balance),
		BalanceFormatted: entity.FormatCurrency(balance),
	})
}

func requestToInput(req dto.TransactionRequest) usecase.TransactionInput {
	return usecase.TransactionInput{
		Description: req.Description,
		Date:        req.Date,
		Amount:      req.Amount,
		Kind:        req.Kind,
		Category:    req.Category,
	}
}

func parseIDParam(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, domainerr.ErrInvalidRequest
	}
	return id, nil
}
