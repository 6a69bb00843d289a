package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/ynab-compass/internal/api/response"
	"github.com/ndewijer/ynab-compass/internal/apperrors"
	"github.com/ndewijer/ynab-compass/internal/service"
)

// BudgetHandler handles HTTP requests for budget reference data. It is the
// HTTP layer adapter: it parses requests and delegates to the BudgetService.
type BudgetHandler struct {
	budgetService *service.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler with the provided service dependency.
func NewBudgetHandler(budgetService *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
	}
}

// ListBudgets handles GET requests to list the budgets the configured
// token grants access to.
//
// Endpoint: GET /api/budget
// Response: 200 OK with array of Budget
// Error: 500 Internal Server Error if the remote service call fails
func (h *BudgetHandler) ListBudgets(w http.ResponseWriter, r *http.Request) {
	budgets, err := h.budgetService.ListBudgets(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveBudgets.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, budgets)
}

// BudgetDetail handles GET requests to retrieve a budget's accounts,
// category groups and payees in one response.
//
// Endpoint: GET /api/budget/{budgetID}
// Response: 200 OK with BudgetDetail
// Error: 400 Bad Request if budget ID is invalid (validated by middleware)
// Error: 404 Not Found if the budget does not exist
// Error: 500 Internal Server Error if a remote service call fails
func (h *BudgetHandler) BudgetDetail(w http.ResponseWriter, r *http.Request) {
	budgetID := chi.URLParam(r, "budgetID")

	detail, err := h.budgetService.GetBudgetDetail(r.Context(), budgetID)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveBudgetDetail)
		return
	}

	response.RespondJSON(w, http.StatusOK, detail)
}

// Accounts handles GET requests to list a budget's accounts.
//
// Endpoint: GET /api/budget/{budgetID}/accounts
// Response: 200 OK with array of Account
// Error: 404 Not Found if the budget does not exist
// Error: 500 Internal Server Error if the remote service call fails
func (h *BudgetHandler) Accounts(w http.ResponseWriter, r *http.Request) {
	budgetID := chi.URLParam(r, "budgetID")

	accounts, err := h.budgetService.ListAccounts(r.Context(), budgetID)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveAccounts)
		return
	}

	response.RespondJSON(w, http.StatusOK, accounts)
}

// Categories handles GET requests to list a budget's category groups.
//
// Endpoint: GET /api/budget/{budgetID}/categories
// Response: 200 OK with array of CategoryGroup
// Error: 404 Not Found if the budget does not exist
// Error: 500 Internal Server Error if the remote service call fails
func (h *BudgetHandler) Categories(w http.ResponseWriter, r *http.Request) {
	budgetID := chi.URLParam(r, "budgetID")

	groups, err := h.budgetService.ListCategoryGroups(r.Context(), budgetID)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveCategories)
		return
	}

	response.RespondJSON(w, http.StatusOK, groups)
}

// Payees handles GET requests to list a budget's payees.
//
// Endpoint: GET /api/budget/{budgetID}/payees
// Response: 200 OK with array of Payee
// Error: 404 Not Found if the budget does not exist
// Error: 500 Internal Server Error if the remote service call fails
func (h *BudgetHandler) Payees(w http.ResponseWriter, r *http.Request) {
	budgetID := chi.URLParam(r, "budgetID")

	payees, err := h.budgetService.ListPayees(r.Context(), budgetID)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrievePayees)
		return
	}

	response.RespondJSON(w, http.StatusOK, payees)
}
