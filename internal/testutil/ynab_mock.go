package testutil

import (
	"context"
	"time"

	"github.com/ndewijer/ynab-compass/internal/model"
	"github.com/ndewijer/ynab-compass/internal/ynab"
)

// MockYNABClient is a mock implementation of ynab.Client for testing.
// It returns predefined test data instead of calling the remote service.
type MockYNABClient struct {
	// Budgets, Accounts, CategoryGroups, Payees and Transactions are the
	// canned responses the query methods return.
	Budgets        []model.Budget
	Accounts       []model.Account
	CategoryGroups []model.CategoryGroup
	Payees         []model.Payee
	Transactions   []model.Transaction

	// TransactionsSince, when set, overrides Transactions and lets a test
	// vary the result by lookback start date (range-widening tests).
	TransactionsSince func(since time.Time) []model.Transaction

	// MockError is returned by every method when non-nil.
	MockError error

	// Call counters.
	GetTransactionsCalls int

	// Write captures.
	CreatedTransactions []ynab.SaveTransaction
	UpdatedTransactions map[string]ynab.SaveTransaction
}

// NewMockYNABClient creates a mock client with empty canned data.
func NewMockYNABClient() *MockYNABClient {
	return &MockYNABClient{
		UpdatedTransactions: make(map[string]ynab.SaveTransaction),
	}
}

// WithError configures the mock to return the specified error.
func (m *MockYNABClient) WithError(err error) *MockYNABClient {
	m.MockError = err
	return m
}

// WithTransactions configures the canned transaction list.
func (m *MockYNABClient) WithTransactions(transactions []model.Transaction) *MockYNABClient {
	m.Transactions = transactions
	return m
}

// GetBudgets returns the canned budget list.
func (m *MockYNABClient) GetBudgets(_ context.Context) ([]model.Budget, error) {
	if m.MockError != nil {
		return nil, m.MockError
	}
	return m.Budgets, nil
}

// GetAccounts returns the canned account list.
func (m *MockYNABClient) GetAccounts(_ context.Context, _ string) ([]model.Account, error) {
	if m.MockError != nil {
		return nil, m.MockError
	}
	return m.Accounts, nil
}

// GetCategoryGroups returns the canned category groups.
func (m *MockYNABClient) GetCategoryGroups(_ context.Context, _ string) ([]model.CategoryGroup, error) {
	if m.MockError != nil {
		return nil, m.MockError
	}
	return m.CategoryGroups, nil
}

// GetPayees returns the canned payee list.
func (m *MockYNABClient) GetPayees(_ context.Context, _ string) ([]model.Payee, error) {
	if m.MockError != nil {
		return nil, m.MockError
	}
	return m.Payees, nil
}

// GetTransactions returns the canned transactions, or the result of
// TransactionsSince when configured.
func (m *MockYNABClient) GetTransactions(_ context.Context, _ string, since time.Time) ([]model.Transaction, error) {
	m.GetTransactionsCalls++
	if m.MockError != nil {
		return nil, m.MockError
	}
	if m.TransactionsSince != nil {
		return m.TransactionsSince(since), nil
	}
	return m.Transactions, nil
}

// CreateTransaction records the write and returns the stored shape.
func (m *MockYNABClient) CreateTransaction(_ context.Context, _ string, tx ynab.SaveTransaction) (model.Transaction, error) {
	if m.MockError != nil {
		return model.Transaction{}, m.MockError
	}
	m.CreatedTransactions = append(m.CreatedTransactions, tx)
	return m.toModel(MakeID(), tx)
}

// UpdateTransaction records the write keyed by transaction ID and returns
// the stored shape.
func (m *MockYNABClient) UpdateTransaction(_ context.Context, _, transactionID string, tx ynab.SaveTransaction) (model.Transaction, error) {
	if m.MockError != nil {
		return model.Transaction{}, m.MockError
	}
	m.UpdatedTransactions[transactionID] = tx
	return m.toModel(transactionID, tx)
}

func (m *MockYNABClient) toModel(id string, tx ynab.SaveTransaction) (model.Transaction, error) {
	date, err := time.Parse(ynab.DateFormat, tx.Date)
	if err != nil {
		return model.Transaction{}, err
	}

	t := model.Transaction{
		ID:        id,
		Date:      date,
		Amount:    tx.Amount,
		Cleared:   tx.Cleared,
		Approved:  tx.Approved,
		AccountID: tx.AccountID,
	}
	if tx.PayeeName != nil {
		t.PayeeName = *tx.PayeeName
	}
	if tx.CategoryID != nil {
		t.CategoryID = *tx.CategoryID
	}
	if tx.Memo != nil {
		t.Memo = *tx.Memo
	}
	if tx.FlagColor != nil {
		t.FlagColor = *tx.FlagColor
	}
	return t, nil
}
