package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrBudgetNotFound indicates that a budget with the given ID does not
	// exist on the remote budgeting service.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrTransactionNotFound indicates that a transaction with the given ID
	// does not exist on the remote budgeting service.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrAccountNotFound indicates that an account with the given ID does not exist.
	ErrAccountNotFound = errors.New("account not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrInvalidGroupField indicates a grouping request with a criterion
	// outside the category/payee/account set.
	ErrInvalidGroupField = errors.New("invalid group field")

	// ErrInvalidSortCriterion indicates a sort request with a criterion
	// outside the amount/date by asc/desc set.
	ErrInvalidSortCriterion = errors.New("invalid sort criterion")

	// ErrInvalidFilter indicates a filter request with an unknown key or,
	// for amount filters, a direction other than inflow/outflow.
	ErrInvalidFilter = errors.New("invalid filter criterion")

	// ErrInvalidPeriod indicates a timeline range outside the
	// day/week/month/quarter/year ladder.
	ErrInvalidPeriod = errors.New("invalid timeline period")

	// ErrMissingRequiredField indicates that a required field is missing or empty.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrInvalidAmount indicates that an amount string could not be parsed
	// as a decimal currency value.
	ErrInvalidAmount = errors.New("invalid amount")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data from the remote budgeting service.
var (
	// Budget operation errors
	ErrFailedToRetrieveBudgets      = errors.New("failed to retrieve budgets")
	ErrFailedToRetrieveBudgetDetail = errors.New("failed to retrieve budget detail")
	ErrFailedToRetrieveAccounts     = errors.New("failed to retrieve accounts")
	ErrFailedToRetrieveCategories   = errors.New("failed to retrieve categories")
	ErrFailedToRetrievePayees       = errors.New("failed to retrieve payees")

	// Transaction operation errors
	ErrFailedToRetrieveTransactions = errors.New("failed to retrieve transactions")
	ErrFailedToCreateTransaction    = errors.New("failed to create transaction")
	ErrFailedToUpdateTransaction    = errors.New("failed to update transaction")
)
