package ynab

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ndewijer/ynab-compass/internal/apperrors"
)

// newTestClient starts a stub remote service and returns a client pointed
// at it. The handler receives every request the client makes.
func newTestClient(t *testing.T, handler http.HandlerFunc) *APIClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewAPIClient(server.URL, "test-token")
}

func TestAPIClient_GetBudgets(t *testing.T) {
	t.Run("decodes the budget list and sends the bearer token", func(t *testing.T) {
		var gotAuth, gotPath string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotPath = r.URL.Path
			//nolint:errcheck // Stub response
			w.Write([]byte(`{"data": {"budgets": [
				{"id": "budget-1", "name": "Household", "last_modified_on": "2024-01-15T10:00:00Z"},
				{"id": "budget-2", "name": "Side Business"}
			]}}`))
		})

		budgets, err := client.GetBudgets(context.Background())
		if err != nil {
			t.Fatalf("GetBudgets failed: %v", err)
		}

		if gotAuth != "Bearer test-token" {
			t.Errorf("Expected bearer auth, got %q", gotAuth)
		}
		if gotPath != "/budgets" {
			t.Errorf("Expected /budgets, got %q", gotPath)
		}
		if len(budgets) != 2 {
			t.Fatalf("Expected 2 budgets, got %d", len(budgets))
		}
		if budgets[0].LastModifiedOn != "2024-01-15T10:00:00Z" {
			t.Errorf("Optional field not flattened: %+v", budgets[0])
		}
		if budgets[1].LastModifiedOn != "" {
			t.Errorf("Expected empty LastModifiedOn, got %q", budgets[1].LastModifiedOn)
		}
	})
}

func TestAPIClient_GetAccounts(t *testing.T) {
	t.Run("drops deleted accounts", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			//nolint:errcheck // Stub response
			w.Write([]byte(`{"data": {"accounts": [
				{"id": "acc-1", "name": "TD Checking", "type": "checking", "balance": 125000, "on_budget": true},
				{"id": "acc-2", "name": "Old Card", "type": "creditCard", "deleted": true}
			]}}`))
		})

		accounts, err := client.GetAccounts(context.Background(), "budget-1")
		if err != nil {
			t.Fatalf("GetAccounts failed: %v", err)
		}
		if len(accounts) != 1 || accounts[0].Name != "TD Checking" {
			t.Errorf("Unexpected accounts: %+v", accounts)
		}
		if accounts[0].Balance != 125000 {
			t.Errorf("Expected balance 125000, got %d", accounts[0].Balance)
		}
	})
}

func TestAPIClient_GetCategoryGroups(t *testing.T) {
	t.Run("drops deleted groups and categories", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			//nolint:errcheck // Stub response
			w.Write([]byte(`{"data": {"category_groups": [
				{"id": "grp-1", "name": "Everyday Expenses", "categories": [
					{"id": "cat-1", "name": "Groceries", "budgeted": 400000},
					{"id": "cat-2", "name": "Retired", "deleted": true}
				]},
				{"id": "grp-2", "name": "Gone", "deleted": true}
			]}}`))
		})

		groups, err := client.GetCategoryGroups(context.Background(), "budget-1")
		if err != nil {
			t.Fatalf("GetCategoryGroups failed: %v", err)
		}
		if len(groups) != 1 {
			t.Fatalf("Expected 1 group, got %d", len(groups))
		}
		if len(groups[0].Categories) != 1 || groups[0].Categories[0].Name != "Groceries" {
			t.Errorf("Unexpected categories: %+v", groups[0].Categories)
		}
	})
}

func TestAPIClient_GetTransactions(t *testing.T) {
	t.Run("sends the since date and reverses to newest-first", func(t *testing.T) {
		var gotSince string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotSince = r.URL.Query().Get("since_date")
			//nolint:errcheck // Stub response
			w.Write([]byte(`{"data": {"transactions": [
				{"id": "a", "date": "2024-01-01", "amount": -450, "cleared": "cleared", "approved": true,
				 "account_id": "acc-1", "account_name": "TD Checking", "payee_name": "Blue Bottle Coffee"},
				{"id": "b", "date": "2024-01-03", "amount": -1200, "cleared": "cleared", "approved": true,
				 "account_id": "acc-1", "account_name": "TD Checking", "payee_name": "Coffee Bean Roasters"},
				{"id": "gone", "date": "2024-01-04", "amount": -10, "cleared": "cleared", "approved": true,
				 "account_id": "acc-1", "account_name": "TD Checking", "deleted": true}
			]}}`))
		})

		since := time.Date(2023, 12, 6, 0, 0, 0, 0, time.UTC)
		transactions, err := client.GetTransactions(context.Background(), "budget-1", since)
		if err != nil {
			t.Fatalf("GetTransactions failed: %v", err)
		}

		if gotSince != "2023-12-06" {
			t.Errorf("Expected since_date 2023-12-06, got %q", gotSince)
		}
		if len(transactions) != 2 {
			t.Fatalf("Expected 2 transactions, got %d", len(transactions))
		}
		if transactions[0].ID != "b" || transactions[1].ID != "a" {
			t.Errorf("Expected newest-first [b a], got [%s %s]", transactions[0].ID, transactions[1].ID)
		}
		if transactions[1].PayeeName != "Blue Bottle Coffee" {
			t.Errorf("Optional payee not flattened: %+v", transactions[1])
		}
	})

	t.Run("rejects a malformed transaction date", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			//nolint:errcheck // Stub response
			w.Write([]byte(`{"data": {"transactions": [
				{"id": "x", "date": "January 1st", "amount": 0, "account_id": "acc-1"}
			]}}`))
		})

		_, err := client.GetTransactions(context.Background(), "budget-1", time.Now())
		if err == nil {
			t.Error("Expected an error for a malformed date")
		}
	})
}

func TestAPIClient_CreateTransaction(t *testing.T) {
	t.Run("posts the wrapped payload and decodes the stored record", func(t *testing.T) {
		var gotBody saveTransactionRequest
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("Expected POST, got %s", r.Method)
			}
			//nolint:errcheck // Test assertion - decode failure surfaces in the body check
			json.NewDecoder(r.Body).Decode(&gotBody)

			w.WriteHeader(http.StatusCreated)
			//nolint:errcheck // Stub response
			w.Write([]byte(`{"data": {"transaction":
				{"id": "tx-new", "date": "2024-01-20", "amount": -5250, "cleared": "cleared",
				 "approved": true, "account_id": "acc-1", "account_name": "TD Checking",
				 "payee_name": "Blue Bottle Coffee"}
			}}`))
		})

		payee := "Blue Bottle Coffee"
		created, err := client.CreateTransaction(context.Background(), "budget-1", SaveTransaction{
			AccountID: "acc-1",
			Date:      "2024-01-20",
			Amount:    -5250,
			PayeeName: &payee,
			Cleared:   "cleared",
			Approved:  true,
		})
		if err != nil {
			t.Fatalf("CreateTransaction failed: %v", err)
		}

		if gotBody.Transaction.Amount != -5250 {
			t.Errorf("Unexpected wire payload: %+v", gotBody.Transaction)
		}
		if created.ID != "tx-new" || created.PayeeName != payee {
			t.Errorf("Unexpected created record: %+v", created)
		}
	})
}

func TestAPIClient_Errors(t *testing.T) {
	t.Run("maps a missing budget to the budget sentinel", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			//nolint:errcheck // Stub response
			w.Write([]byte(`{"error": {"id": "404.2", "name": "resource_not_found", "detail": "The requested budget was not found"}}`))
		})

		_, err := client.GetAccounts(context.Background(), "budget-404")
		if !errors.Is(err, apperrors.ErrBudgetNotFound) {
			t.Errorf("Expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("maps a missing transaction to the transaction sentinel", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			//nolint:errcheck // Stub response
			w.Write([]byte(`{"error": {"id": "404.1", "name": "not_found", "detail": "The transaction was not found"}}`))
		})

		_, err := client.UpdateTransaction(context.Background(), "budget-1", "tx-404", SaveTransaction{Date: "2024-01-01"})
		if !errors.Is(err, apperrors.ErrTransactionNotFound) {
			t.Errorf("Expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("surfaces other statuses with the remote detail", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			//nolint:errcheck // Stub response
			w.Write([]byte(`{"error": {"id": "401", "name": "unauthorized", "detail": "Unauthorized"}}`))
		})

		_, err := client.GetBudgets(context.Background())
		if err == nil {
			t.Fatal("Expected an error")
		}
		if errors.Is(err, apperrors.ErrBudgetNotFound) {
			t.Error("A 401 must not map to the not-found sentinel")
		}
	})

	t.Run("tolerates an unparseable error body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			//nolint:errcheck // Stub response
			w.Write([]byte("gateway exploded"))
		})

		_, err := client.GetBudgets(context.Background())
		if err == nil {
			t.Error("Expected an error")
		}
	})
}
