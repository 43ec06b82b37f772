package dto

// TransactionRequest represents the API request for creating or updating
// a ledger transaction. Validation happens in the domain layer so that
// every caller gets the same error codes.
type TransactionRequest struct {
	Description string `json:"description"`
	Date        string `json:"date"`
	Amount      string `json:"amount"`
	Kind        string `json:"kind"`
	Category    string `json:"category"`
}

// TransactionResponse represents a single ledger transaction in API responses
type TransactionResponse struct {
	ID              uint64  `json:"id"`
	Description     string  `json:"description"`
	Date            string  `json:"date"`
	Amount          string  `json:"amount"`
	AmountFormatted string  `json:"amountFormatted"`
	Kind            string  `json:"kind"`
	Category        *string `json:"category"`
}

// LedgerResponse represents the month view of a user's ledger
type LedgerResponse struct {
	Month                 string                `json:"month"`
	DisplayMonth          string                `json:"displayMonth"`
	Transactions          []TransactionResponse `json:"transactions"`
	IncomeTotal           string                `json:"incomeTotal"`
	IncomeTotalFormatted  string                `json:"incomeTotalFormatted"`
	ExpenseTotal          string                `json:"expenseTotal"`
	ExpenseTotalFormatted string                `json:"expenseTotalFormatted"`
	Balance               string                `json:"balance"`
	BalanceFormatted      string                `json:"balanceFormatted"`
}

// BalanceResponse represents the running balance across all transactions
type BalanceResponse struct {
	UserID           uint64 `json:"userId"`
	Balance          string `json:"balance"`
	BalanceFormatted string `json:"balanceFormatted"`
}
