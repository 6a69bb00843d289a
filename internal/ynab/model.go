package ynab

// Wire types mirroring the remote budgeting service's JSON. Every payload
// is wrapped in a "data" envelope; errors come back in an "error" envelope
// with an HTTP-status-style id. Amounts are milliunits, dates are
// YYYY-MM-DD strings. Conversion to the application's internal model types
// happens in the client, so nothing outside this package sees snake_case.

// APIError is the error envelope the remote service returns on failures.
type APIError struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Detail string `json:"detail"`
}

type errorResponse struct {
	Error *APIError `json:"error"`
}

type budgetSummary struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	LastModifiedOn *string `json:"last_modified_on"`
}

type budgetsResponse struct {
	Data struct {
		Budgets []budgetSummary `json:"budgets"`
	} `json:"data"`
}

type accountWire struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Balance  int64  `json:"balance"`
	OnBudget bool   `json:"on_budget"`
	Closed   bool   `json:"closed"`
	Deleted  bool   `json:"deleted"`
}

type accountsResponse struct {
	Data struct {
		Accounts []accountWire `json:"accounts"`
	} `json:"data"`
}

type categoryWire struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Hidden   bool   `json:"hidden"`
	Budgeted int64  `json:"budgeted"`
	Activity int64  `json:"activity"`
	Balance  int64  `json:"balance"`
	Deleted  bool   `json:"deleted"`
}

type categoryGroupWire struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Hidden     bool           `json:"hidden"`
	Deleted    bool           `json:"deleted"`
	Categories []categoryWire `json:"categories"`
}

type categoriesResponse struct {
	Data struct {
		CategoryGroups []categoryGroupWire `json:"category_groups"`
	} `json:"data"`
}

type payeeWire struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Deleted bool   `json:"deleted"`
}

type payeesResponse struct {
	Data struct {
		Payees []payeeWire `json:"payees"`
	} `json:"data"`
}

type transactionWire struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"`
	Amount       int64   `json:"amount"`
	Memo         *string `json:"memo"`
	Cleared      string  `json:"cleared"`
	Approved     bool    `json:"approved"`
	FlagColor    *string `json:"flag_color"`
	AccountID    string  `json:"account_id"`
	AccountName  string  `json:"account_name"`
	PayeeID      *string `json:"payee_id"`
	PayeeName    *string `json:"payee_name"`
	CategoryID   *string `json:"category_id"`
	CategoryName *string `json:"category_name"`
	Deleted      bool    `json:"deleted"`
}

type transactionsResponse struct {
	Data struct {
		Transactions []transactionWire `json:"transactions"`
	} `json:"data"`
}

type transactionResponse struct {
	Data struct {
		Transaction transactionWire `json:"transaction"`
	} `json:"data"`
}

// SaveTransaction is the write payload for creating or updating a
// transaction on the remote service.
type SaveTransaction struct {
	AccountID  string  `json:"account_id"`
	Date       string  `json:"date"`
	Amount     int64   `json:"amount"`
	PayeeID    *string `json:"payee_id,omitempty"`
	PayeeName  *string `json:"payee_name,omitempty"`
	CategoryID *string `json:"category_id,omitempty"`
	Memo       *string `json:"memo,omitempty"`
	Cleared    string  `json:"cleared,omitempty"`
	Approved   bool    `json:"approved"`
	FlagColor  *string `json:"flag_color,omitempty"`
}

type saveTransactionRequest struct {
	Transaction SaveTransaction `json:"transaction"`
}
