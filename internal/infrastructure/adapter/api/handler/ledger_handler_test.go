package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/finance-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLedger is a canned-response implementation of the ledger use case
type fakeLedger struct {
	view *usecase.LedgerView
	got  *entity.Transaction
	err  error
}

func (f *fakeLedger) List(ctx context.Context, ownerID uint64, monthFilter string) (*usecase.LedgerView, error) {
	return f.view, f.err
}

func (f *fakeLedger) Get(ctx context.Context, ownerID, id uint64) (*entity.Transaction, error) {
	return f.got, f.err
}

func (f *fakeLedger) Create(ctx context.Context, ownerID uint64, input usecase.TransactionInput) (uint64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.got.ID, nil
}

func (f *fakeLedger) Update(ctx context.Context, ownerID, id uint64, input usecase.TransactionInput) error {
	return f.err
}

func (f *fakeLedger) Delete(ctx context.Context, ownerID, id uint64) error {
	return f.err
}

func (f *fakeLedger) RunningBalance(ctx context.Context, ownerID uint64) (int64, error) {
	if f.view == nil {
		return 0, f.err
	}
	return f.view.BalanceInCents, f.err
}

func newTestRouter(service usecase.LedgerUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	// Inject an authenticated user directly; session plumbing is covered elsewhere
	router.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, uint64(1))
	})

	ledgerHandler := NewLedgerHandler(service, logger.NewNoopLogger())
	router.GET("/transactions", ledgerHandler.List)
	router.GET("/transactions/:id", ledgerHandler.Get)
	router.POST("/transactions", ledgerHandler.Create)
	router.DELETE("/transactions/:id", ledgerHandler.Delete)
	router.GET("/balance", ledgerHandler.Balance)
	return router
}

func TestListEndpoint(t *testing.T) {
	salary := &entity.Transaction{
		ID: 1, UserID: 1, Description: "Salário", Date: "2024-03-01",
		AmountInCents: 300000, Kind: entity.KindIncome,
	}
	router := newTestRouter(&fakeLedger{view: &usecase.LedgerView{
		Transactions:        []*entity.Transaction{salary},
		BalanceInCents:      180000,
		IncomeTotalInCents:  300000,
		ExpenseTotalInCents: 120000,
		MonthKey:            "2024-03",
		DisplayMonth:        "03/2024",
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/transactions?month=03/2024", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "2024-03", body["month"])
	assert.Equal(t, "03/2024", body["displayMonth"])
	assert.Equal(t, "3000.00", body["incomeTotal"])
	assert.Equal(t, "1200.00", body["expenseTotal"])
	assert.Equal(t, "1800.00", body["balance"])
	assert.Equal(t, "1.800,00", body["balanceFormatted"])
}

func TestGetEndpoint(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		router := newTestRouter(&fakeLedger{got: &entity.Transaction{
			ID: 7, UserID: 1, Description: "Aluguel", Date: "2024-03-05",
			AmountInCents: 120000, Kind: entity.KindExpense,
		}})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/transactions/7", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Aluguel", body["description"])
		assert.Equal(t, "1200.00", body["amount"])
		assert.Equal(t, "1.200,00", body["amountFormatted"])
	})

	t.Run("Missing transaction maps to 404", func(t *testing.T) {
		router := newTestRouter(&fakeLedger{err: errs.ErrTransactionNotFound})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/transactions/99", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Malformed ID maps to 400", func(t *testing.T) {
		router := newTestRouter(&fakeLedger{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/transactions/abc", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCreateEndpoint(t *testing.T) {
	t.Run("Validation error maps to 400", func(t *testing.T) {
		router := newTestRouter(&fakeLedger{err: errs.ErrInvalidKind})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/transactions",
			strings.NewReader(`{"description":"x","amount":"1.00","kind":"transfer"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, float64(errs.CodeInvalidKind), body["code"])
	})

	t.Run("Created transaction is echoed back", func(t *testing.T) {
		router := newTestRouter(&fakeLedger{got: &entity.Transaction{
			ID: 42, UserID: 1, Description: "Salário", Date: "2024-03-01",
			AmountInCents: 300000, Kind: entity.KindIncome,
		}})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/transactions",
			strings.NewReader(`{"description":"Salário","date":"2024-03-01","amount":"3000.00","kind":"income"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, float64(42), body["id"])
	})
}

func TestDeleteEndpoint(t *testing.T) {
	router := newTestRouter(&fakeLedger{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/transactions/5", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestBalanceEndpoint(t *testing.T) {
	router := newTestRouter(&fakeLedger{view: &usecase.LedgerView{BalanceInCents: -5000}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/balance", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "-50.00", body["balance"])
	assert.Equal(t, "-50,00", body["balanceFormatted"])
}
