package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/ynab-compass/internal/api/request"
	"github.com/ndewijer/ynab-compass/internal/api/response"
	"github.com/ndewijer/ynab-compass/internal/apperrors"
	"github.com/ndewijer/ynab-compass/internal/model"
	"github.com/ndewijer/ynab-compass/internal/service"
	"github.com/ndewijer/ynab-compass/internal/validation"
	"github.com/ndewijer/ynab-compass/internal/viewstate"
	"github.com/ndewijer/ynab-compass/internal/ynab"
)

// TransactionHandler handles HTTP requests for a budget's transaction view
// and for the light-write operations (create, update) that pass through to
// the remote service.
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler with the provided service dependency.
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// ViewResponse is the transaction view snapshot handed to the presentation
// layer: the active criteria plus the displayed collection, flat or grouped.
// EffectiveTimeline reports where the range-widening ladder landed; a zero
// Count at "year" means there is genuinely nothing to show.
type ViewResponse struct {
	BudgetID          string              `json:"budgetId"`
	Timeline          string              `json:"timeline"`
	EffectiveTimeline string              `json:"effectiveTimeline"`
	Filter            *viewstate.Filter   `json:"filter"`
	Group             string              `json:"group,omitempty"`
	Sort              string              `json:"sort"`
	Search            string              `json:"search,omitempty"`
	Grouped           bool                `json:"grouped"`
	Items             []model.Transaction `json:"items,omitempty"`
	Groups            []model.Group       `json:"groups,omitempty"`
	Count             int                 `json:"count"`
}

func toViewResponse(v service.View) ViewResponse {
	resp := ViewResponse{
		BudgetID:          v.BudgetID,
		Timeline:          string(v.Timeline),
		EffectiveTimeline: string(v.EffectiveTimeline),
		Filter:            v.State.Filter,
		Group:             string(v.State.Group),
		Sort:              string(v.State.Sort),
		Search:            v.State.Search,
		Grouped:           v.State.Collection.Grouped(),
		Count:             v.State.Collection.Len(),
	}
	if resp.Grouped {
		resp.Groups = v.State.Collection.Groups()
	} else {
		resp.Items = v.State.Collection.Items()
	}
	return resp
}

// View handles GET requests for the current transaction view snapshot.
// The first request for a budget fetches its transactions from the remote
// service, widening the lookback range until records appear.
//
// Endpoint: GET /api/budget/{budgetID}/transactions
// Response: 200 OK with ViewResponse
// Error: 400 Bad Request if budget ID is invalid (validated by middleware)
// Error: 404 Not Found if the budget does not exist
// Error: 500 Internal Server Error if the remote fetch fails
func (h *TransactionHandler) View(w http.ResponseWriter, r *http.Request) {
	budgetID := chi.URLParam(r, "budgetID")

	view, err := h.transactionService.View(r.Context(), budgetID)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveTransactions)
		return
	}

	response.RespondJSON(w, http.StatusOK, toViewResponse(view))
}

// CreateTransaction handles POST requests to create a new transaction on
// the remote service. The budget's view session is refreshed on the next
// read so the new record shows up.
//
// Endpoint: POST /api/budget/{budgetID}/transactions
// Request Body: CreateTransactionRequest (accountId, date, amount, payeeName, ...)
// Response: 201 Created with Transaction
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the budget does not exist
// Error: 500 Internal Server Error if creation fails
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	budgetID := chi.URLParam(r, "budgetID")

	req, err := parseJSON[request.CreateTransactionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateTransaction(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	created, err := h.transactionService.Create(r.Context(), budgetID, toSaveTransaction(
		req.AccountID, req.Date, req.Amount, req.PayeeName, req.CategoryID, req.Memo, req.FlagColor, req.Cleared,
	))
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToCreateTransaction)
		return
	}

	response.RespondJSON(w, http.StatusCreated, created)
}

// UpdateTransaction handles PUT requests to update an existing transaction
// on the remote service.
//
// Endpoint: PUT /api/budget/{budgetID}/transactions/{transactionID}
// Request Body: UpdateTransactionRequest
// Response: 200 OK with the updated Transaction
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the budget or transaction does not exist
// Error: 500 Internal Server Error if the update fails
func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	budgetID := chi.URLParam(r, "budgetID")
	transactionID := chi.URLParam(r, "transactionID")

	req, err := parseJSON[request.UpdateTransactionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateTransaction(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	updated, err := h.transactionService.Update(r.Context(), budgetID, transactionID, toSaveTransaction(
		req.AccountID, req.Date, req.Amount, req.PayeeName, req.CategoryID, req.Memo, req.FlagColor, req.Cleared,
	))
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToUpdateTransaction)
		return
	}

	response.RespondJSON(w, http.StatusOK, updated)
}

// toSaveTransaction builds the remote write payload from validated request
// fields. The amount has already been validated, so the parse cannot fail.
func toSaveTransaction(accountID, date, amount, payeeName, categoryID, memo, flagColor string, cleared bool) ynab.SaveTransaction {
	milliunits, _ := validation.ParseAmount(amount)

	tx := ynab.SaveTransaction{
		AccountID: accountID,
		Date:      date,
		Amount:    milliunits,
		PayeeName: &payeeName,
		Approved:  true,
		Cleared:   "uncleared",
	}
	if cleared {
		tx.Cleared = "cleared"
	}
	if categoryID != "" {
		tx.CategoryID = &categoryID
	}
	if memo != "" {
		tx.Memo = &memo
	}
	if flagColor != "" {
		tx.FlagColor = &flagColor
	}
	return tx
}
