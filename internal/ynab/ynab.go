package ynab

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ndewijer/ynab-compass/internal/apperrors"
	"github.com/ndewijer/ynab-compass/internal/model"
)

// DateFormat is the calendar-date layout the remote service speaks.
const DateFormat = "2006-01-02"

// Client is the data-source contract the rest of the application depends
// on. GetTransactions returns records newest-first, already scoped to the
// given budget and lookback start date.
type Client interface {
	GetBudgets(ctx context.Context) ([]model.Budget, error)
	GetAccounts(ctx context.Context, budgetID string) ([]model.Account, error)
	GetCategoryGroups(ctx context.Context, budgetID string) ([]model.CategoryGroup, error)
	GetPayees(ctx context.Context, budgetID string) ([]model.Payee, error)
	GetTransactions(ctx context.Context, budgetID string, since time.Time) ([]model.Transaction, error)
	CreateTransaction(ctx context.Context, budgetID string, tx SaveTransaction) (model.Transaction, error)
	UpdateTransaction(ctx context.Context, budgetID, transactionID string, tx SaveTransaction) (model.Transaction, error)
}

// APIClient talks to a YNAB-compatible budgeting API over HTTP.
// It owns no data: every read reflects whatever the remote service holds
// at the time of the call.
type APIClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewAPIClient creates a client for the service at baseURL, authenticating
// every request with the given personal access token.
func NewAPIClient(baseURL, token string) *APIClient {
	return &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// GetBudgets fetches the budgets the token grants access to.
func (c *APIClient) GetBudgets(ctx context.Context) ([]model.Budget, error) {
	var parsed budgetsResponse
	if err := c.get(ctx, "/budgets", &parsed); err != nil {
		return nil, err
	}

	budgets := make([]model.Budget, 0, len(parsed.Data.Budgets))
	for _, b := range parsed.Data.Budgets {
		budget := model.Budget{ID: b.ID, Name: b.Name}
		if b.LastModifiedOn != nil {
			budget.LastModifiedOn = *b.LastModifiedOn
		}
		budgets = append(budgets, budget)
	}
	return budgets, nil
}

// GetAccounts fetches all open and closed accounts for a budget.
// Deleted accounts are dropped.
func (c *APIClient) GetAccounts(ctx context.Context, budgetID string) ([]model.Account, error) {
	var parsed accountsResponse
	if err := c.get(ctx, fmt.Sprintf("/budgets/%s/accounts", budgetID), &parsed); err != nil {
		return nil, err
	}

	accounts := make([]model.Account, 0, len(parsed.Data.Accounts))
	for _, a := range parsed.Data.Accounts {
		if a.Deleted {
			continue
		}
		accounts = append(accounts, model.Account{
			ID:       a.ID,
			Name:     a.Name,
			Type:     a.Type,
			Balance:  a.Balance,
			OnBudget: a.OnBudget,
			Closed:   a.Closed,
		})
	}
	return accounts, nil
}

// GetCategoryGroups fetches the budget's category groups with their
// categories, dropping deleted entries.
func (c *APIClient) GetCategoryGroups(ctx context.Context, budgetID string) ([]model.CategoryGroup, error) {
	var parsed categoriesResponse
	if err := c.get(ctx, fmt.Sprintf("/budgets/%s/categories", budgetID), &parsed); err != nil {
		return nil, err
	}

	groups := make([]model.CategoryGroup, 0, len(parsed.Data.CategoryGroups))
	for _, g := range parsed.Data.CategoryGroups {
		if g.Deleted {
			continue
		}
		group := model.CategoryGroup{ID: g.ID, Name: g.Name, Hidden: g.Hidden}
		for _, cat := range g.Categories {
			if cat.Deleted {
				continue
			}
			group.Categories = append(group.Categories, model.Category{
				ID:       cat.ID,
				Name:     cat.Name,
				Hidden:   cat.Hidden,
				Budgeted: cat.Budgeted,
				Activity: cat.Activity,
				Balance:  cat.Balance,
			})
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// GetPayees fetches the budget's payees, dropping deleted entries.
func (c *APIClient) GetPayees(ctx context.Context, budgetID string) ([]model.Payee, error) {
	var parsed payeesResponse
	if err := c.get(ctx, fmt.Sprintf("/budgets/%s/payees", budgetID), &parsed); err != nil {
		return nil, err
	}

	payees := make([]model.Payee, 0, len(parsed.Data.Payees))
	for _, p := range parsed.Data.Payees {
		if p.Deleted {
			continue
		}
		payees = append(payees, model.Payee{ID: p.ID, Name: p.Name})
	}
	return payees, nil
}

// GetTransactions fetches all transactions for a budget dated on or after
// since. The remote service returns them oldest-first; the result is
// reversed so callers receive newest-first.
func (c *APIClient) GetTransactions(ctx context.Context, budgetID string, since time.Time) ([]model.Transaction, error) {
	path := fmt.Sprintf("/budgets/%s/transactions?since_date=%s", budgetID, since.Format(DateFormat))

	var parsed transactionsResponse
	if err := c.get(ctx, path, &parsed); err != nil {
		return nil, err
	}

	transactions := make([]model.Transaction, 0, len(parsed.Data.Transactions))
	for i := len(parsed.Data.Transactions) - 1; i >= 0; i-- {
		t, err := toTransaction(parsed.Data.Transactions[i])
		if err != nil {
			return nil, err
		}
		if t.Deleted {
			continue
		}
		transactions = append(transactions, t)
	}
	return transactions, nil
}

// CreateTransaction creates a new transaction on the remote service and
// returns the stored record.
func (c *APIClient) CreateTransaction(ctx context.Context, budgetID string, tx SaveTransaction) (model.Transaction, error) {
	path := fmt.Sprintf("/budgets/%s/transactions", budgetID)

	var parsed transactionResponse
	if err := c.send(ctx, http.MethodPost, path, saveTransactionRequest{Transaction: tx}, &parsed); err != nil {
		return model.Transaction{}, err
	}
	return toTransaction(parsed.Data.Transaction)
}

// UpdateTransaction replaces the fields of an existing transaction on the
// remote service and returns the stored record.
func (c *APIClient) UpdateTransaction(ctx context.Context, budgetID, transactionID string, tx SaveTransaction) (model.Transaction, error) {
	path := fmt.Sprintf("/budgets/%s/transactions/%s", budgetID, transactionID)

	var parsed transactionResponse
	if err := c.send(ctx, http.MethodPut, path, saveTransactionRequest{Transaction: tx}, &parsed); err != nil {
		return model.Transaction{}, err
	}
	return toTransaction(parsed.Data.Transaction)
}

// get executes a GET request against the remote API and decodes the
// response into out.
func (c *APIClient) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// send executes a request with a JSON body against the remote API and
// decodes the response into out.
func (c *APIClient) send(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}
	return c.do(ctx, method, path, payload, out)
}

func (c *APIClient) do(ctx context.Context, method, path string, body []byte, out interface{}) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		return c.apiError(resp.StatusCode, data)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// apiError maps a remote error envelope onto the application's sentinel
// errors where the status is meaningful, wrapping the remote detail.
func (c *APIClient) apiError(status int, data []byte) error {
	detail := ""
	var parsed errorResponse
	if err := json.Unmarshal(data, &parsed); err == nil && parsed.Error != nil {
		detail = parsed.Error.Detail
		if detail == "" {
			detail = parsed.Error.Name
		}
	}

	if status == http.StatusNotFound {
		if strings.Contains(detail, "transaction") {
			return fmt.Errorf("%w: %s", apperrors.ErrTransactionNotFound, detail)
		}
		return fmt.Errorf("%w: %s", apperrors.ErrBudgetNotFound, detail)
	}

	if detail == "" {
		return fmt.Errorf("remote service error: status %d", status)
	}
	return fmt.Errorf("remote service error: status %d: %s", status, detail)
}

// toTransaction converts a wire record into the internal model, parsing the
// calendar date and flattening optional fields.
func toTransaction(w transactionWire) (model.Transaction, error) {
	date, err := time.Parse(DateFormat, w.Date)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("invalid transaction date %q: %w", w.Date, err)
	}

	t := model.Transaction{
		ID:          w.ID,
		Date:        date,
		Amount:      w.Amount,
		Cleared:     w.Cleared,
		Approved:    w.Approved,
		AccountID:   w.AccountID,
		AccountName: w.AccountName,
		Deleted:     w.Deleted,
	}
	if w.Memo != nil {
		t.Memo = *w.Memo
	}
	if w.FlagColor != nil {
		t.FlagColor = *w.FlagColor
	}
	if w.PayeeID != nil {
		t.PayeeID = *w.PayeeID
	}
	if w.PayeeName != nil {
		t.PayeeName = *w.PayeeName
	}
	if w.CategoryID != nil {
		t.CategoryID = *w.CategoryID
	}
	if w.CategoryName != nil {
		t.CategoryName = *w.CategoryName
	}
	return t, nil
}
