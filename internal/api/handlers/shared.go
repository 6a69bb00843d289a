package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ndewijer/ynab-compass/internal/api/response"
	"github.com/ndewijer/ynab-compass/internal/apperrors"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Failed to encode JSON: %v", err)
		}
	}
}

// parseJSON decodes a request body into the given type.
func parseJSON[T any](r *http.Request) (T, error) {
	var v T
	err := json.NewDecoder(r.Body).Decode(&v)
	return v, err
}

// respondServiceError translates a service-layer error into an HTTP error
// response: missing entities map to 404, rejected criteria to 400, and
// everything else to 500 under the given fallback message.
func respondServiceError(w http.ResponseWriter, err error, fallback error) {
	switch {
	case errors.Is(err, apperrors.ErrBudgetNotFound):
		response.RespondError(w, http.StatusNotFound, apperrors.ErrBudgetNotFound.Error(), err.Error())
	case errors.Is(err, apperrors.ErrTransactionNotFound):
		response.RespondError(w, http.StatusNotFound, apperrors.ErrTransactionNotFound.Error(), err.Error())
	case errors.Is(err, apperrors.ErrInvalidGroupField),
		errors.Is(err, apperrors.ErrInvalidSortCriterion),
		errors.Is(err, apperrors.ErrInvalidFilter),
		errors.Is(err, apperrors.ErrInvalidPeriod):
		response.RespondError(w, http.StatusBadRequest, "invalid view criterion", err.Error())
	default:
		response.RespondError(w, http.StatusInternalServerError, fallback.Error(), err.Error())
	}
}
