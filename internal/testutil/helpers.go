package testutil

import (
	"testing"

	"github.com/ndewijer/ynab-compass/internal/service"
	"github.com/ndewijer/ynab-compass/internal/viewstate"
	"github.com/ndewijer/ynab-compass/internal/ynab"
)

// NewTestTransactionService creates a TransactionService whose sessions
// default to a month of lookback, backed by the given client.
func NewTestTransactionService(t *testing.T, client ynab.Client) *service.TransactionService {
	t.Helper()
	return service.NewTransactionService(client, viewstate.PeriodMonth)
}

// NewTestBudgetService creates a BudgetService backed by the given client.
func NewTestBudgetService(t *testing.T, client ynab.Client) *service.BudgetService {
	t.Helper()
	return service.NewBudgetService(client)
}
