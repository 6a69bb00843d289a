package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ndewijer/ynab-compass/internal/model"
)

// MakeID returns a fresh UUID string for test entities.
func MakeID() string {
	return uuid.New().String()
}

// TransactionBuilder provides a fluent interface for creating test
// transactions.
//
// Example usage:
//
//	// Simple creation with defaults
//	tx := testutil.NewTransaction().Build(t)
//
//	// Customized transaction
//	tx := testutil.NewTransaction().
//	    WithAmount(-4500).
//	    WithPayee("Blue Bottle Coffee").
//	    WithDate("2024-03-01").
//	    Build(t)
type TransactionBuilder struct {
	ID           string
	Date         string
	Amount       int64
	PayeeName    string
	CategoryName string
	AccountName  string
	FlagColor    string
	Cleared      string
	Approved     bool
}

// NewTransaction creates a TransactionBuilder with sensible defaults.
func NewTransaction() *TransactionBuilder {
	return &TransactionBuilder{
		ID:           MakeID(),
		Date:         "2024-01-15",
		Amount:       -4500,
		PayeeName:    "Test Payee",
		CategoryName: "Groceries",
		AccountName:  "Checking",
		Cleared:      "cleared",
		Approved:     true,
	}
}

// WithID sets a custom ID.
func (b *TransactionBuilder) WithID(id string) *TransactionBuilder {
	b.ID = id
	return b
}

// WithDate sets the transaction date (YYYY-MM-DD).
func (b *TransactionBuilder) WithDate(date string) *TransactionBuilder {
	b.Date = date
	return b
}

// WithAmount sets the amount in milliunits.
func (b *TransactionBuilder) WithAmount(amount int64) *TransactionBuilder {
	b.Amount = amount
	return b
}

// WithPayee sets the payee name.
func (b *TransactionBuilder) WithPayee(name string) *TransactionBuilder {
	b.PayeeName = name
	return b
}

// WithCategory sets the category name.
func (b *TransactionBuilder) WithCategory(name string) *TransactionBuilder {
	b.CategoryName = name
	return b
}

// WithAccount sets the account name.
func (b *TransactionBuilder) WithAccount(name string) *TransactionBuilder {
	b.AccountName = name
	return b
}

// WithFlagColor sets the flag color.
func (b *TransactionBuilder) WithFlagColor(color string) *TransactionBuilder {
	b.FlagColor = color
	return b
}

// Uncleared marks the transaction as uncleared.
func (b *TransactionBuilder) Uncleared() *TransactionBuilder {
	b.Cleared = "uncleared"
	return b
}

// Build assembles the transaction record.
func (b *TransactionBuilder) Build(t *testing.T) model.Transaction {
	t.Helper()

	date, err := time.Parse("2006-01-02", b.Date)
	if err != nil {
		t.Fatalf("invalid test transaction date %q: %v", b.Date, err)
	}

	return model.Transaction{
		ID:           b.ID,
		Date:         date,
		Amount:       b.Amount,
		Cleared:      b.Cleared,
		Approved:     b.Approved,
		FlagColor:    b.FlagColor,
		AccountID:    MakeID(),
		AccountName:  b.AccountName,
		PayeeID:      MakeID(),
		PayeeName:    b.PayeeName,
		CategoryID:   MakeID(),
		CategoryName: b.CategoryName,
	}
}
