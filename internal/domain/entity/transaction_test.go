package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/finance-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	newTimeProvider := func(t *testing.T) *coremocks.MockTimeProvider {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		return mockTime
	}

	t.Run("Successful creation", func(t *testing.T) {
		transaction, err := NewTransaction(1, "Salário", "2024-03-05", "3000.00", "income", "salary", newTimeProvider(t))

		require.NoError(t, err)
		assert.Equal(t, uint64(1), transaction.UserID)
		assert.Equal(t, "Salário", transaction.Description)
		assert.Equal(t, "2024-03-05", transaction.Date)
		assert.Equal(t, int64(300000), transaction.AmountInCents)
		assert.Equal(t, KindIncome, transaction.Kind)
		require.NotNil(t, transaction.Category)
		assert.Equal(t, "salary", *transaction.Category)
		assert.Equal(t, fixedTime, transaction.CreatedAt)
	})

	t.Run("Blank date defaults to today", func(t *testing.T) {
		transaction, err := NewTransaction(1, "Aluguel", "", "1200.00", "expense", "", newTimeProvider(t))

		require.NoError(t, err)
		assert.Equal(t, "2024-03-15", transaction.Date)
	})

	t.Run("Blank category is stored as absent", func(t *testing.T) {
		transaction, err := NewTransaction(1, "Mercado", "2024-03-10", "85.50", "expense", "   ", newTimeProvider(t))

		require.NoError(t, err)
		assert.Nil(t, transaction.Category)
	})

	t.Run("Validation failures", func(t *testing.T) {
		testCases := []struct {
			description string
			ownerID     uint64
			desc        string
			date        string
			amount      string
			kind        string
			errorType   error
		}{
			{"Zero owner", 0, "x", "", "1.00", "income", errs.ErrInvalidOwnerID},
			{"Empty description", 1, "", "", "1.00", "income", errs.ErrEmptyDescription},
			{"Whitespace description", 1, "   ", "", "1.00", "income", errs.ErrEmptyDescription},
			{"Invalid amount", 1, "x", "", "abc", "income", errs.ErrInvalidAmount},
			{"Negative amount", 1, "x", "", "-5.00", "income", errs.ErrNegativeAmount},
			{"Invalid kind", 1, "x", "", "1.00", "transfer", errs.ErrInvalidKind},
			{"Empty kind", 1, "x", "", "1.00", "", errs.ErrInvalidKind},
			{"Malformed date", 1, "x", "15/03/2024", "1.00", "income", errs.ErrInvalidDate},
			{"Impossible date", 1, "x", "2024-13-45", "1.00", "income", errs.ErrInvalidDate},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := NewTransaction(tc.ownerID, tc.desc, tc.date, tc.amount, tc.kind, "", newTimeProvider(t))
				assert.ErrorIs(t, err, tc.errorType)
			})
		}
	})
}

func TestTransactionSignedCents(t *testing.T) {
	income := &Transaction{AmountInCents: 300000, Kind: KindIncome}
	expense := &Transaction{AmountInCents: 120000, Kind: KindExpense}

	assert.Equal(t, int64(300000), income.SignedCents())
	assert.Equal(t, int64(-120000), expense.SignedCents())
	assert.True(t, income.IsIncome())
	assert.True(t, expense.IsExpense())
}

func TestTransactionMonthKey(t *testing.T) {
	transaction := &Transaction{Date: "2024-03-05"}
	assert.Equal(t, "2024-03", transaction.MonthKey())

	broken := &Transaction{Date: "2024"}
	assert.Equal(t, "", broken.MonthKey())
}

func TestTransactionAmountRendering(t *testing.T) {
	transaction := &Transaction{AmountInCents: 123450}
	assert.Equal(t, "1234.50", transaction.DecimalAmount())
	assert.Equal(t, "1.234,50", transaction.FormattedAmount())
}
