package model

// Budget summarizes one budget owned by the remote service.
type Budget struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	LastModifiedOn string `json:"lastModifiedOn,omitempty"`
}

// Account represents a budget account (checking, savings, credit card, ...).
// Balance is in milliunits.
type Account struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Balance  int64  `json:"balance"`
	OnBudget bool   `json:"onBudget"`
	Closed   bool   `json:"closed"`
}

// Category represents a single spending category within a category group.
// Budgeted, Activity and Balance are in milliunits.
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Hidden   bool   `json:"hidden"`
	Budgeted int64  `json:"budgeted"`
	Activity int64  `json:"activity"`
	Balance  int64  `json:"balance"`
}

// CategoryGroup is a named group of categories as organized by the user.
type CategoryGroup struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Hidden     bool       `json:"hidden"`
	Categories []Category `json:"categories"`
}

// Payee represents a transaction counterparty known to the budget.
type Payee struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BudgetDetail bundles the reference data needed to browse one budget.
type BudgetDetail struct {
	Accounts       []Account       `json:"accounts"`
	CategoryGroups []CategoryGroup `json:"categoryGroups"`
	Payees         []Payee         `json:"payees"`
}
