package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/ynab-compass/internal/api/request"
	"github.com/ndewijer/ynab-compass/internal/api/response"
	"github.com/ndewijer/ynab-compass/internal/apperrors"
	"github.com/ndewijer/ynab-compass/internal/viewstate"
)

// The view dispatch endpoints below form the provider contract of the
// transaction view: each one decodes a single criterion, synchronously
// dispatches exactly one action into the budget's view-state engine, and
// returns the recomputed snapshot. No batching, no async.

// Group handles POST requests to toggle grouping.
//
// Endpoint: POST /api/budget/{budgetID}/transactions/view/group
// Request Body: GroupRequest {"criterion": "category" | "payee" | "account" | ""}
// Response: 200 OK with ViewResponse
// Error: 400 Bad Request if the criterion is outside the known set
func (h *TransactionHandler) Group(w http.ResponseWriter, r *http.Request) {
	budgetID := chi.URLParam(r, "budgetID")

	req, err := parseJSON[request.GroupRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	view, err := h.transactionService.Group(r.Context(), budgetID, viewstate.GroupField(req.Criterion))
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveTransactions)
		return
	}

	response.RespondJSON(w, http.StatusOK, toViewResponse(view))
}

// Sort handles POST requests to toggle the sort criterion.
//
// Endpoint: POST /api/budget/{budgetID}/transactions/view/sort
// Request Body: SortRequest {"criterion": "date_desc" | "date_asc" | "amount_desc" | "amount_asc" | ""}
// Response: 200 OK with ViewResponse
// Error: 400 Bad Request if the criterion is outside the known set
func (h *TransactionHandler) Sort(w http.ResponseWriter, r *http.Request) {
	budgetID := chi.URLParam(r, "budgetID")

	req, err := parseJSON[request.SortRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	view, err := h.transactionService.Sort(r.Context(), budgetID, viewstate.Sort(req.Criterion))
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveTransactions)
		return
	}

	response.RespondJSON(w, http.StatusOK, toViewResponse(view))
}

// Filter handles POST requests to toggle the filter criterion.
//
// Endpoint: POST /api/budget/{budgetID}/transactions/view/filter
// Request Body: FilterRequest {"filter": {"key": "...", "value": "..."} | null}
// Response: 200 OK with ViewResponse
// Error: 400 Bad Request if the filter key or amount direction is unknown
func (h *TransactionHandler) Filter(w http.ResponseWriter, r *http.Request) {
	budgetID := chi.URLParam(r, "budgetID")

	req, err := parseJSON[request.FilterRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	var filter *viewstate.Filter
	if req.Filter != nil {
		filter = &viewstate.Filter{
			Key:   viewstate.FilterKey(req.Filter.Key),
			Value: req.Filter.Value,
		}
	}

	view, err := h.transactionService.Filter(r.Context(), budgetID, filter)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveTransactions)
		return
	}

	response.RespondJSON(w, http.StatusOK, toViewResponse(view))
}

// Search handles POST requests to apply a free-text search query.
//
// Endpoint: POST /api/budget/{budgetID}/transactions/view/search
// Request Body: SearchRequest {"query": "coffee account:checking -type:outflow"}
// Response: 200 OK with ViewResponse
func (h *TransactionHandler) Search(w http.ResponseWriter, r *http.Request) {
	budgetID := chi.URLParam(r, "budgetID")

	req, err := parseJSON[request.SearchRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	view, err := h.transactionService.Search(r.Context(), budgetID, req.Query)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveTransactions)
		return
	}

	response.RespondJSON(w, http.StatusOK, toViewResponse(view))
}

// Timeline handles POST requests to change the lookback range. The data
// source is refetched for the new range and the view resets.
//
// Endpoint: POST /api/budget/{budgetID}/transactions/view/timeline
// Request Body: TimelineRequest {"timeline": "day" | "week" | "month" | "quarter" | "year"}
// Response: 200 OK with ViewResponse
// Error: 400 Bad Request if the period is outside the ladder
// Error: 500 Internal Server Error if the remote fetch fails
func (h *TransactionHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	budgetID := chi.URLParam(r, "budgetID")

	req, err := parseJSON[request.TimelineRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	view, err := h.transactionService.SetTimeline(r.Context(), budgetID, viewstate.Period(req.Timeline))
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveTransactions)
		return
	}

	response.RespondJSON(w, http.StatusOK, toViewResponse(view))
}

// Reset handles POST requests to clear every view criterion and refetch
// the budget's transactions for the current timeline.
//
// Endpoint: POST /api/budget/{budgetID}/transactions/view/reset
// Response: 200 OK with ViewResponse
// Error: 500 Internal Server Error if the remote fetch fails
func (h *TransactionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	budgetID := chi.URLParam(r, "budgetID")

	view, err := h.transactionService.Reset(r.Context(), budgetID)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveTransactions)
		return
	}

	response.RespondJSON(w, http.StatusOK, toViewResponse(view))
}
